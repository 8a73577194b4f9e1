package project

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInUse is returned when a delete would orphan referencing rows.
var ErrInUse = errors.New("project is referenced and cannot be deleted")

type Repository interface {
	Create(db *gorm.DB, p *Project) error
	FindByID(db *gorm.DB, id uint) (*Project, error)
	ListAll(db *gorm.DB) ([]Project, error)
	ListByDeveloper(db *gorm.DB, developerID uint) ([]Project, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, p *Project) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Project, error) {
	var p Project
	err := db.
		Preload("Categories").
		Preload("Categories.Category").
		Preload("Categories.UnitTypes").
		Preload("Categories.UnitTypes.UnitType").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Project, error) {
	var list []Project
	err := db.Preload("Categories").Preload("Categories.Category").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListByDeveloper(db *gorm.DB, developerID uint) ([]Project, error) {
	var list []Project
	err := db.
		Where("developer_id = ?", developerID).
		Preload("Categories").
		Preload("Categories.Category").
		Find(&list).Error
	return list, err
}

// Update applies only the provided columns so an edit never resets an
// override that was not part of the request.
func (r *repositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := db.Model(&Project{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is rejected while categories or deals reference the project.
func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	var n int64
	if err := db.Table("project_categories").
		Where("project_id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	if err := db.Table("deals").
		Where("project_id = ? AND deleted_at IS NULL", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return db.Delete(&Project{}, id).Error
}
