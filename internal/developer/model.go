package developer

import (
	"time"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/project"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"gorm.io/gorm"
)

// Developer is the top of the override hierarchy. Its rate fields are the
// defaults every level below inherits from; they too may be nil, in which
// case the effective rate for an unconfigured subtree is zero.
type Developer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Name         string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	ContactEmail string `gorm:"size:255" json:"contactEmail"`
	Phone        string `gorm:"size:50" json:"phone"`

	ActualCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"actualCommissionRate"`
	BrokerCommissionRate   *float64 `gorm:"type:decimal(5,2)" json:"brokerCommissionRate"`
	CommunicatedCommission *float64 `gorm:"type:decimal(5,2)" json:"communicatedCommission"`

	Projects []project.Project `gorm:"foreignKey:DeveloperID" json:"projects"`
}

// Rates returns the default bundle this developer carries.
func (d Developer) Rates() rates.RateFields {
	return rates.RateFields{
		Actual:       d.ActualCommissionRate,
		Broker:       d.BrokerCommissionRate,
		Communicated: d.CommunicatedCommission,
	}
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Developer{})
}
