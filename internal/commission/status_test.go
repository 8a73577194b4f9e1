package commission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPaid, false},
		{StatusApproved, StatusPaid, true},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusPending, false},
		{StatusPaid, StatusCancelled, false},
		{StatusPaid, StatusApproved, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusPaid, false},
		{StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusApproved))
	assert.True(t, IsTerminal(StatusPaid))
	assert.True(t, IsTerminal(StatusCancelled))
}

func TestTransitionApprove(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := Commission{Status: StatusPending}

	require.NoError(t, Transition(&c, StatusApproved, "", now))
	assert.Equal(t, StatusApproved, c.Status)
	require.NotNil(t, c.ApprovedAt)
	assert.Equal(t, now, *c.ApprovedAt)
	assert.Nil(t, c.PaidAt)
}

func TestTransitionPay(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	c := Commission{Status: StatusApproved}

	require.NoError(t, Transition(&c, StatusPaid, "", now))
	assert.Equal(t, StatusPaid, c.Status)
	require.NotNil(t, c.PaidAt)
	assert.Equal(t, now, *c.PaidAt)
}

func TestTransitionCancelRequiresReason(t *testing.T) {
	c := Commission{Status: StatusPending}

	err := Transition(&c, StatusCancelled, "   ", time.Now())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StatusPending, c.Status)

	require.NoError(t, Transition(&c, StatusCancelled, "  duplicate booking ", time.Now()))
	assert.Equal(t, StatusCancelled, c.Status)
	assert.Equal(t, "duplicate booking", c.RejectionReason)
}

func TestTransitionRejectsIllegalEdges(t *testing.T) {
	for _, from := range []string{StatusPaid, StatusCancelled} {
		c := Commission{Status: from}
		err := Transition(&c, StatusApproved, "", time.Now())
		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, from, c.Status)
	}

	c := Commission{Status: StatusPending}
	require.ErrorIs(t, Transition(&c, StatusPaid, "", time.Now()), ErrInvalidTransition)
	require.ErrorIs(t, Transition(&c, StatusPending, "", time.Now()), ErrInvalidTransition)
	require.ErrorIs(t, Transition(&c, "SHIPPED", "", time.Now()), ErrInvalidTransition)
}
