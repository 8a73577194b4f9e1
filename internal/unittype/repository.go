package unittype

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInUse is returned when a delete would orphan referencing rows.
var ErrInUse = errors.New("unit type is referenced and cannot be deleted")

// Repository wraps data access for unit types and their project assignments.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ============================ Catalog entries ============================ */

func (r *Repository) CreateType(u *UnitType) error {
	return r.DB.Create(u).Error
}

func (r *Repository) ListTypes() ([]UnitType, error) {
	var list []UnitType
	err := r.DB.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindTypeByID(id uint) (*UnitType, error) {
	var u UnitType
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) UpdateType(u *UnitType) error {
	return r.DB.Save(u).Error
}

// DeleteType removes a catalog entry; rejected while any project assignment
// references it.
func (r *Repository) DeleteType(id uint) error {
	var n int64
	if err := r.DB.Model(&ProjectCategoryUnitType{}).
		Where("unit_type_id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return r.DB.Delete(&UnitType{}, id).Error
}

/* =========================== Project assignments ========================== */

func (r *Repository) CreateAssignment(a *ProjectCategoryUnitType) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindAssignmentByID(id uint) (*ProjectCategoryUnitType, error) {
	var a ProjectCategoryUnitType
	if err := r.DB.Preload("UnitType").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByProjectCategory returns the assignments under one project category.
// When enabledOnly is set, disabled assignments are filtered out (used by
// deal creation so disabled options are not selectable).
func (r *Repository) ListByProjectCategory(pcID uint, enabledOnly bool) ([]ProjectCategoryUnitType, error) {
	q := r.DB.Preload("UnitType").Where("project_category_id = ?", pcID)
	if enabledOnly {
		q = q.Where("is_enabled = ?", true)
	}
	var list []ProjectCategoryUnitType
	err := q.Find(&list).Error
	return list, err
}

// UpdateAssignment applies only the provided fields; nil rate pointers in the
// updates map are left untouched so an edit never silently resets an
// override.
func (r *Repository) UpdateAssignment(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.DB.Model(&ProjectCategoryUnitType{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetEnabled flips the selectable flag. Overrides are kept; existing deals
// and commissions are untouched.
func (r *Repository) SetEnabled(id uint, enabled bool) error {
	return r.DB.Model(&ProjectCategoryUnitType{}).
		Where("id = ?", id).
		Update("is_enabled", enabled).Error
}

// DeleteAssignment is rejected while deals reference the assignment.
func (r *Repository) DeleteAssignment(id uint) error {
	var n int64
	if err := r.DB.Table("deals").
		Where("project_category_unit_type_id = ? AND deleted_at IS NULL", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return r.DB.Delete(&ProjectCategoryUnitType{}, id).Error
}
