package commission

import (
	"fmt"
	"strings"
	"time"
)

// Commission status lifecycle: PENDING → APPROVED → PAID, with cancellation
// legal from PENDING and APPROVED. PAID and CANCELLED are terminal.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// ValidStatus reports whether s is a known commission status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func IsTerminal(s string) bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransition reports whether the from→to edge exists in the lifecycle.
// Same-state requests are not transitions.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusCancelled
	case StatusApproved:
		return to == StatusPaid || to == StatusCancelled
	}
	return false
}

// Transition validates the requested change against the lifecycle and applies
// it to c along with its side effects (approval/payment timestamps, rejection
// reason). It touches no storage; the repository persists the result with a
// compare-and-set on the previous status.
func Transition(c *Commission, to, reason string, now time.Time) error {
	if !ValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if c.Status == to {
		return fmt.Errorf("%w: commission is already %s", ErrInvalidTransition, to)
	}
	if !CanTransition(c.Status, to) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, c.Status, to)
	}

	switch to {
	case StatusApproved:
		c.ApprovedAt = &now
	case StatusPaid:
		c.PaidAt = &now
	case StatusCancelled:
		if strings.TrimSpace(reason) == "" {
			return fmt.Errorf("%w: a rejection reason is required", ErrValidation)
		}
		c.RejectionReason = strings.TrimSpace(reason)
	}
	c.Status = to
	return nil
}
