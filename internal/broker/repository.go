package broker

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInUse is returned when a delete would orphan referencing rows.
var ErrInUse = errors.New("broker has deals and cannot be deleted")

type Repository interface {
	FindByEmail(db *gorm.DB, email string) (*Broker, error)
	Save(db *gorm.DB, b *Broker) error
	FindByID(db *gorm.DB, id uint) (*Broker, error)
	ListAll(db *gorm.DB) ([]Broker, error)
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*Broker, error) {
	var b Broker
	if err := db.Where("email = ?", email).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repositoryImpl) Save(db *gorm.DB, b *Broker) error {
	return db.Save(b).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Broker, error) {
	var b Broker
	if err := db.Preload("Deals").Preload("Deals.Commission").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Broker, error) {
	var list []Broker
	err := db.Find(&list).Error
	return list, err
}

// Delete is rejected while deals reference the broker.
func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	var n int64
	if err := db.Table("deals").
		Where("broker_id = ? AND deleted_at IS NULL", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return db.Delete(&Broker{}, id).Error
}
