package commission

import (
	"time"

	"gorm.io/gorm"
)

// Commission is the bookkeeping record created atomically with its deal. The
// resolved rates, the amounts and the sale price are frozen at creation time;
// upstream rate edits never touch existing rows. The only later changes are
// status transitions and explicit manager overrides.
type Commission struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	DealID   uint `gorm:"not null;uniqueIndex" json:"dealId"`
	BrokerID uint `gorm:"not null;index" json:"brokerId"`

	// Snapshot of the resolution pass at deal creation.
	SalePrice        float64 `gorm:"type:decimal(14,2);not null" json:"salePrice"`
	Rate             float64 `gorm:"type:decimal(5,2);not null;default:0" json:"rate"`
	Amount           float64 `gorm:"type:decimal(14,2);not null;default:0" json:"amount"`
	BrokerRate       float64 `gorm:"type:decimal(5,2);not null;default:0" json:"brokerRate"`
	BrokerAmount     float64 `gorm:"type:decimal(14,2);not null;default:0" json:"brokerAmount"`
	CommunicatedRate float64 `gorm:"type:decimal(5,2);not null;default:0" json:"communicatedRate"`

	Status          string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	PaidAt          *time.Time `json:"paidAt"`
	RejectionReason string     `gorm:"size:500" json:"rejectionReason,omitempty"`

	// Manager rate override bookkeeping, distinct from status transitions.
	OverriddenBy *uint      `json:"overriddenBy,omitempty"`
	OverriddenAt *time.Time `json:"overriddenAt,omitempty"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Commission{})
}
