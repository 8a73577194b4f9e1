package category

import (
	"errors"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/unittype"
	"gorm.io/gorm"
)

// ErrInUse is returned when a delete would orphan referencing rows.
var ErrInUse = errors.New("category is referenced and cannot be deleted")

// Repository wraps data access for categories and project categories.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ============================ Catalog entries ============================ */

func (r *Repository) CreateCategory(c *Category) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListCategories() ([]Category, error) {
	var list []Category
	err := r.DB.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindCategoryByID(id uint) (*Category, error) {
	var c Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) UpdateCategory(c *Category) error {
	return r.DB.Save(c).Error
}

func (r *Repository) DeleteCategory(id uint) error {
	var n int64
	if err := r.DB.Model(&ProjectCategory{}).
		Where("category_id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return r.DB.Delete(&Category{}, id).Error
}

/* ============================ Project categories ========================== */

func (r *Repository) CreateProjectCategory(pc *ProjectCategory) error {
	return r.DB.Create(pc).Error
}

func (r *Repository) FindProjectCategoryByID(id uint) (*ProjectCategory, error) {
	var pc ProjectCategory
	err := r.DB.
		Preload("Category").
		Preload("UnitTypes").
		Preload("UnitTypes.UnitType").
		First(&pc, id).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

// ListByProject returns the categories under one project. When enabledOnly is
// set, disabled categories are filtered out.
func (r *Repository) ListByProject(projectID uint, enabledOnly bool) ([]ProjectCategory, error) {
	q := r.DB.
		Preload("Category").
		Preload("UnitTypes").
		Preload("UnitTypes.UnitType").
		Where("project_id = ?", projectID)
	if enabledOnly {
		q = q.Where("is_enabled = ?", true)
	}
	var list []ProjectCategory
	err := q.Find(&list).Error
	return list, err
}

// UpdateProjectCategory applies only the provided fields.
func (r *Repository) UpdateProjectCategory(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.DB.Model(&ProjectCategory{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetEnabled flips the selectable flag. Disabling a category cascades the
// flag to all its unit-type assignments in the same transaction; overrides
// and historical commissions are left alone. Re-enabling does not cascade;
// unit types disabled individually stay disabled.
func (r *Repository) SetEnabled(id uint, enabled bool) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&ProjectCategory{}).
		Where("id = ?", id).
		Update("is_enabled", enabled).Error; err != nil {
		_ = tx.Rollback()
		return err
	}

	if !enabled {
		if err := tx.Model(&unittype.ProjectCategoryUnitType{}).
			Where("project_category_id = ?", id).
			Update("is_enabled", false).Error; err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// DeleteProjectCategory is rejected while unit-type assignments or deals
// reference the row.
func (r *Repository) DeleteProjectCategory(id uint) error {
	var n int64
	if err := r.DB.Model(&unittype.ProjectCategoryUnitType{}).
		Where("project_category_id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	if err := r.DB.Table("deals").
		Where("project_category_id = ? AND deleted_at IS NULL", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return r.DB.Delete(&ProjectCategory{}, id).Error
}
