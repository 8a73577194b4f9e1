package commission

import (
	"errors"
	"fmt"
	"time"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"gorm.io/gorm"
)

// Repository encapsulates commission persistence.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create inserts a commission inside the caller's transaction. Deal creation
// owns the transaction so deal and commission commit or roll back together.
func (r *Repository) Create(tx *gorm.DB, c *Commission) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Commission, error) {
	var c Commission
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByDealID(dealID uint) (*Commission, error) {
	var c Commission
	if err := r.DB.Where("deal_id = ?", dealID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns commissions filtered by any combination of status and broker.
func (r *Repository) List(status string, brokerID uint) ([]Commission, error) {
	q := r.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if brokerID != 0 {
		q = q.Where("broker_id = ?", brokerID)
	}
	var list []Commission
	err := q.Find(&list).Error
	return list, err
}

func (r *Repository) ListByBroker(brokerID uint) ([]Commission, error) {
	return r.List("", brokerID)
}

// TransitionStatus applies a lifecycle transition with a compare-and-set on
// the status the row had when it was read. If a concurrent request moved the
// row first, zero rows match and the caller gets ErrConcurrentModification
// instead of a silent double-apply.
func (r *Repository) TransitionStatus(id uint, to, reason string) (*Commission, error) {
	return transitionStatus(r.DB, id, to, reason)
}

// TransitionStatusTx runs the same compare-and-set transition inside a
// caller-owned transaction, so a deal cancellation and its commission
// cancellation commit or roll back together.
func (r *Repository) TransitionStatusTx(tx *gorm.DB, id uint, to, reason string) (*Commission, error) {
	if tx == nil {
		tx = r.DB
	}
	return transitionStatus(tx, id, to, reason)
}

func transitionStatus(db *gorm.DB, id uint, to, reason string) (*Commission, error) {
	var current Commission
	if err := db.First(&current, id).Error; err != nil {
		return nil, err
	}

	from := current.Status
	next := current
	if err := Transition(&next, to, reason, time.Now()); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": next.Status}
	switch next.Status {
	case StatusApproved:
		updates["approved_at"] = next.ApprovedAt
	case StatusPaid:
		updates["paid_at"] = next.PaidAt
	case StatusCancelled:
		updates["rejection_reason"] = next.RejectionReason
	}

	res := db.Model(&Commission{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: status changed while processing", ErrConcurrentModification)
	}

	var reloaded Commission
	if err := db.First(&reloaded, id).Error; err != nil {
		return nil, err
	}
	return &reloaded, nil
}

// OverrideRates is the explicit manager edit of the frozen rate snapshot,
// tracked separately from status transitions. Amounts are recomputed from
// the stored sale price through the shared engine. Terminal commissions are
// immutable.
func (r *Repository) OverrideRates(id uint, actualRate, brokerRate *float64, editorID uint) (*Commission, error) {
	c, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(c.Status) {
		return nil, fmt.Errorf("%w: cannot edit a %s commission", ErrInvalidTransition, c.Status)
	}
	if actualRate == nil && brokerRate == nil {
		return nil, fmt.Errorf("%w: no rate provided", ErrValidation)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"overridden_by": editorID,
		"overridden_at": now,
	}
	if actualRate != nil {
		amount, err := rates.CalculateCommission(c.SalePrice, *actualRate)
		if err != nil {
			return nil, err
		}
		updates["rate"] = *actualRate
		updates["amount"] = amount
	}
	if brokerRate != nil {
		amount, err := rates.CalculateCommission(c.SalePrice, *brokerRate)
		if err != nil {
			return nil, err
		}
		updates["broker_rate"] = *brokerRate
		updates["broker_amount"] = amount
	}

	res := r.DB.Model(&Commission{}).
		Where("id = ? AND status = ?", id, c.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: status changed while processing", ErrConcurrentModification)
	}

	return r.FindByID(id)
}

// SumByBrokerAndStatus totals broker amounts for one broker across statuses.
func (r *Repository) SumByBrokerAndStatus(brokerID uint, statuses ...string) (float64, error) {
	if len(statuses) == 0 {
		return 0, errors.New("at least one status required")
	}
	var total float64
	err := r.DB.Model(&Commission{}).
		Where("broker_id = ? AND status IN (?)", brokerID, statuses).
		Select("COALESCE(SUM(broker_amount), 0)").
		Scan(&total).Error
	return total, err
}
