package unittype

import (
	"time"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"gorm.io/gorm"
)

// UnitType is a catalog entry for a unit shape, e.g. "Studio" or "2BR".
type UnitType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectCategoryUnitType attaches a unit type to a (project, category) pair.
// The join row is what carries the rate overrides and the listing price; the
// catalog entry itself is just a name.
type ProjectCategoryUnitType struct {
	ID                uint `gorm:"primaryKey" json:"id"`
	ProjectCategoryID uint `gorm:"not null;uniqueIndex:idx_pc_unit" json:"projectCategoryId"`
	UnitTypeID        uint `gorm:"not null;uniqueIndex:idx_pc_unit" json:"unitTypeId"`

	ActualCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"actualCommissionRate"`
	BrokerCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"brokerCommissionRate"`
	CommunicatedCommission *float64 `gorm:"type:decimal(5,2)" json:"communicatedCommission"`

	Price     float64 `gorm:"type:decimal(14,2);not null;default:0" json:"price"`
	IsEnabled bool    `gorm:"not null;default:true" json:"isEnabled"`

	UnitType UnitType `gorm:"foreignKey:UnitTypeID" json:"unitType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Rates returns the override bundle this assignment carries.
func (a ProjectCategoryUnitType) Rates() rates.RateFields {
	return rates.RateFields{
		Actual:       a.ActualCommissionRate,
		Broker:       a.BrokerCommissionRate,
		Communicated: a.CommunicatedCommission,
	}
}

// Migrate creates both tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UnitType{}, &ProjectCategoryUnitType{})
}
