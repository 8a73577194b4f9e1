package broker

import (
	"testing"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/commission"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/deal"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	b := Broker{
		FirstName: "Sara",
		LastName:  "Nabil",
		Email:     "sara@byit.example",
	}
	b.ID = 7

	deals := []deal.Deal{
		{Status: deal.StatusCompleted},
		{Status: deal.StatusCompleted},
		{Status: deal.StatusPending},
		{Status: deal.StatusConfirmed},
		{Status: deal.StatusCancelled},
	}
	commissions := []commission.Commission{
		{Status: commission.StatusPaid, BrokerAmount: 30_000},
		{Status: commission.StatusPaid, BrokerAmount: 12_500},
		{Status: commission.StatusApproved, BrokerAmount: 8_000},
		{Status: commission.StatusPending, BrokerAmount: 4_000},
		{Status: commission.StatusCancelled, BrokerAmount: 99_999},
	}

	s := BuildSummary(b, deals, commissions)

	assert.Equal(t, uint(7), s.ID)
	assert.Equal(t, "Sara", s.FirstName)
	assert.Equal(t, 2, s.DealsClosed)
	assert.Equal(t, 2, s.DealsActive)
	assert.Equal(t, 42_500.0, s.CommissionEarned)
	assert.Equal(t, 12_000.0, s.CommissionPending)
}

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary(Broker{}, nil, nil)
	assert.Zero(t, s.DealsClosed)
	assert.Zero(t, s.DealsActive)
	assert.Zero(t, s.CommissionEarned)
	assert.Zero(t, s.CommissionPending)
}
