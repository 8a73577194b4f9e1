package deal

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, d *Deal) error
	FindByID(db *gorm.DB, id uint) (*Deal, error)
	ListAll(db *gorm.DB) ([]Deal, error)
	ListByBroker(db *gorm.DB, brokerID uint) ([]Deal, error)
	ListByProject(db *gorm.DB, projectID uint) ([]Deal, error)
	UpdateStatus(db *gorm.DB, id uint, status string) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, d *Deal) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Deal, error) {
	var d Deal
	if err := db.Preload("Commission").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Deal, error) {
	var list []Deal
	err := db.Preload("Commission").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListByBroker(db *gorm.DB, brokerID uint) ([]Deal, error) {
	var list []Deal
	err := db.
		Where("broker_id = ?", brokerID).
		Preload("Commission").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListByProject(db *gorm.DB, projectID uint) ([]Deal, error) {
	var list []Deal
	err := db.
		Where("project_id = ?", projectID).
		Preload("Commission").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) UpdateStatus(db *gorm.DB, id uint, status string) error {
	res := db.Model(&Deal{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Deal{}, id).Error
}
