package project

import (
	"time"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/category"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"gorm.io/gorm"
)

// Project is a development belonging to exactly one developer. Any of the
// three rate fields may override the developer default; nil means inherit.
type Project struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	DeveloperID uint   `gorm:"not null;index" json:"developerId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Location    string `gorm:"size:255" json:"location"`
	Description string `gorm:"type:text" json:"description"`

	ActualCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"actualCommissionRate"`
	BrokerCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"brokerCommissionRate"`
	CommunicatedCommission *float64 `gorm:"type:decimal(5,2)" json:"communicatedCommission"`

	Categories []category.ProjectCategory `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"categories"`
}

// Rates returns the override bundle this project carries.
func (p Project) Rates() rates.RateFields {
	return rates.RateFields{
		Actual:       p.ActualCommissionRate,
		Broker:       p.BrokerCommissionRate,
		Communicated: p.CommunicatedCommission,
	}
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Project{})
}
