package developer

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInUse is returned when a delete would orphan referencing rows.
var ErrInUse = errors.New("developer has projects and cannot be deleted")

type Repository interface {
	Create(db *gorm.DB, d *Developer) error
	FindByID(db *gorm.DB, id uint) (*Developer, error)
	ListAll(db *gorm.DB) ([]Developer, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, d *Developer) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Developer, error) {
	var d Developer
	err := db.
		Preload("Projects").
		Preload("Projects.Categories").
		Preload("Projects.Categories.Category").
		First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Developer, error) {
	var list []Developer
	err := db.Preload("Projects").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := db.Model(&Developer{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is rejected while projects reference the developer.
func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	var n int64
	if err := db.Table("projects").
		Where("developer_id = ? AND deleted_at IS NULL", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return db.Delete(&Developer{}, id).Error
}
