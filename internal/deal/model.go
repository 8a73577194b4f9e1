package deal

import (
	"time"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/commission"
	"gorm.io/gorm"
)

// Deal statuses. COMPLETED and CANCELLED accept no further changes.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Deal is one sale transaction. The category and unit type references are
// optional: a deal may be closed against a bare project. The commission row
// is created in the same transaction and is 1:1 with the deal.
type Deal struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	BrokerID                  uint  `gorm:"not null;index" json:"brokerId"`
	DeveloperID               uint  `gorm:"not null;index" json:"developerId"`
	ProjectID                 uint  `gorm:"not null;index" json:"projectId"`
	ProjectCategoryID         *uint `gorm:"index" json:"projectCategoryId"`
	ProjectCategoryUnitTypeID *uint `gorm:"index" json:"projectCategoryUnitTypeId"`

	ClientName string  `gorm:"size:255;not null" json:"clientName"`
	UnitNumber string  `gorm:"size:100" json:"unitNumber"`
	SalePrice  float64 `gorm:"type:decimal(14,2);not null" json:"salePrice"`

	Status string `gorm:"size:20;not null;default:'PENDING';index" json:"status"`

	Commission *commission.Commission `gorm:"foreignKey:DealID" json:"commission,omitempty"`
}

// ValidStatus reports whether s is a known deal status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Deal{})
}
