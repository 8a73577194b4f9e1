package override

import (
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/category"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/developer"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/project"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/unittype"
	"gorm.io/gorm"
)

// Repository performs bulk rate overrides across the hierarchy tables.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Apply writes the present fields on the scope node and, per cascade flags,
// overwrites the same fields on every descendant. The whole operation runs
// in one transaction; any failure rolls back every write. Returns the number
// of rows touched (1 + descendants).
func (r *Repository) Apply(req ApplyDTO) (int64, error) {
	updates := columnUpdates(req.Rates)
	if len(updates) == 0 {
		return 0, ErrNoFields
	}
	if err := checkCascade(req.Scope.Level, req.Cascade); err != nil {
		return 0, err
	}

	tx := r.DB.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	var total int64
	fail := func(err error) (int64, error) {
		_ = tx.Rollback()
		return 0, err
	}
	count := func(res *gorm.DB) error {
		if res.Error != nil {
			return res.Error
		}
		total += res.RowsAffected
		return nil
	}

	switch req.Scope.Level {
	case LevelDeveloper:
		res := tx.Model(&developer.Developer{}).Where("id = ?", req.Scope.ID).Updates(updates)
		if res.Error != nil {
			return fail(res.Error)
		}
		if res.RowsAffected == 0 {
			return fail(gorm.ErrRecordNotFound)
		}
		total += res.RowsAffected

		projectIDs := tx.Model(&project.Project{}).Select("id").Where("developer_id = ?", req.Scope.ID)
		categoryIDs := tx.Model(&category.ProjectCategory{}).Select("id").Where("project_id IN (?)", projectIDs)

		if req.Cascade.ToProjects {
			if err := count(tx.Model(&project.Project{}).
				Where("developer_id = ?", req.Scope.ID).
				Updates(updates)); err != nil {
				return fail(err)
			}
		}
		if req.Cascade.ToCategories {
			if err := count(tx.Model(&category.ProjectCategory{}).
				Where("project_id IN (?)", projectIDs).
				Updates(updates)); err != nil {
				return fail(err)
			}
		}
		if req.Cascade.ToUnitTypes {
			if err := count(tx.Model(&unittype.ProjectCategoryUnitType{}).
				Where("project_category_id IN (?)", categoryIDs).
				Updates(updates)); err != nil {
				return fail(err)
			}
		}

	case LevelProject:
		res := tx.Model(&project.Project{}).Where("id = ?", req.Scope.ID).Updates(updates)
		if res.Error != nil {
			return fail(res.Error)
		}
		if res.RowsAffected == 0 {
			return fail(gorm.ErrRecordNotFound)
		}
		total += res.RowsAffected

		categoryIDs := tx.Model(&category.ProjectCategory{}).Select("id").Where("project_id = ?", req.Scope.ID)

		if req.Cascade.ToCategories {
			if err := count(tx.Model(&category.ProjectCategory{}).
				Where("project_id = ?", req.Scope.ID).
				Updates(updates)); err != nil {
				return fail(err)
			}
		}
		if req.Cascade.ToUnitTypes {
			if err := count(tx.Model(&unittype.ProjectCategoryUnitType{}).
				Where("project_category_id IN (?)", categoryIDs).
				Updates(updates)); err != nil {
				return fail(err)
			}
		}

	case LevelCategory:
		res := tx.Model(&category.ProjectCategory{}).Where("id = ?", req.Scope.ID).Updates(updates)
		if res.Error != nil {
			return fail(res.Error)
		}
		if res.RowsAffected == 0 {
			return fail(gorm.ErrRecordNotFound)
		}
		total += res.RowsAffected

		if req.Cascade.ToUnitTypes {
			if err := count(tx.Model(&unittype.ProjectCategoryUnitType{}).
				Where("project_category_id = ?", req.Scope.ID).
				Updates(updates)); err != nil {
				return fail(err)
			}
		}

	case LevelUnitType:
		res := tx.Model(&unittype.ProjectCategoryUnitType{}).Where("id = ?", req.Scope.ID).Updates(updates)
		if res.Error != nil {
			return fail(res.Error)
		}
		if res.RowsAffected == 0 {
			return fail(gorm.ErrRecordNotFound)
		}
		total += res.RowsAffected
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	return total, nil
}
