package broker

import (
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/commission"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/deal"
)

// SummaryDTO is the broker dashboard card: deal counts plus earned and
// outstanding commission, all derived from persisted snapshot rows.
type SummaryDTO struct {
	ID                uint    `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Photo             string  `json:"photo"`
	DealsClosed       int     `json:"dealsClosed"`
	DealsActive       int     `json:"dealsActive"`
	CommissionEarned  float64 `json:"commissionEarned"`
	CommissionPending float64 `json:"commissionPending"`
}

// BuildSummary aggregates a broker's deals and commissions. Earned is the
// broker amount of PAID commissions; pending covers PENDING and APPROVED.
// Cancelled commissions count toward neither.
func BuildSummary(b Broker, deals []deal.Deal, commissions []commission.Commission) SummaryDTO {
	closed, active := 0, 0
	for _, d := range deals {
		switch d.Status {
		case deal.StatusCompleted:
			closed++
		case deal.StatusPending, deal.StatusConfirmed:
			active++
		}
	}

	var earned, pending float64
	for _, c := range commissions {
		switch c.Status {
		case commission.StatusPaid:
			earned += c.BrokerAmount
		case commission.StatusPending, commission.StatusApproved:
			pending += c.BrokerAmount
		}
	}

	return SummaryDTO{
		ID:                b.ID,
		FirstName:         b.FirstName,
		LastName:          b.LastName,
		Email:             b.Email,
		Phone:             b.Phone,
		Photo:             b.Photo,
		DealsClosed:       closed,
		DealsActive:       active,
		CommissionEarned:  earned,
		CommissionPending: pending,
	}
}
