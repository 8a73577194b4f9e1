package broker

import (
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/deal"
	"gorm.io/gorm"
)

// Broker is a platform account. Managers administer the hierarchy and review
// commissions; ordinary brokers book deals and see their own earnings.
type Broker struct {
	gorm.Model
	FirstName         string      `gorm:"size:100;not null" json:"firstName"`
	LastName          string      `gorm:"size:100;not null" json:"lastName"`
	Email             string      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone             string      `gorm:"size:50" json:"phone"`
	Photo             string      `gorm:"size:255" json:"photo"`
	Password          string      `gorm:"size:255;not null" json:"-"`
	MustResetPassword bool        `json:"-"`
	IsManager         bool        `gorm:"default:false" json:"isManager"`
	Deals             []deal.Deal `gorm:"foreignKey:BrokerID" json:"deals,omitempty"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Broker{})
}
