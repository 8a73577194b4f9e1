package category

import (
	"time"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/unittype"
	"gorm.io/gorm"
)

// Category is a catalog entry for a unit grouping, e.g. "Villas".
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectCategory scopes a category to one project. The join row carries the
// rate overrides and the selectable flag; its unit-type assignments hang off
// it.
type ProjectCategory struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProjectID  uint `gorm:"not null;uniqueIndex:idx_project_category" json:"projectId"`
	CategoryID uint `gorm:"not null;uniqueIndex:idx_project_category" json:"categoryId"`

	ActualCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"actualCommissionRate"`
	BrokerCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"brokerCommissionRate"`
	CommunicatedCommission *float64 `gorm:"type:decimal(5,2)" json:"communicatedCommission"`

	IsEnabled bool `gorm:"not null;default:true" json:"isEnabled"`

	Category  Category                           `gorm:"foreignKey:CategoryID" json:"category"`
	UnitTypes []unittype.ProjectCategoryUnitType `gorm:"foreignKey:ProjectCategoryID;constraint:OnDelete:CASCADE" json:"unitTypes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Rates returns the override bundle this project category carries.
func (pc ProjectCategory) Rates() rates.RateFields {
	return rates.RateFields{
		Actual:       pc.ActualCommissionRate,
		Broker:       pc.BrokerCommissionRate,
		Communicated: pc.CommunicatedCommission,
	}
}

// Migrate creates both tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Category{}, &ProjectCategory{})
}
