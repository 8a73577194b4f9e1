package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestResolveEffective(t *testing.T) {
	tests := []struct {
		name string
		o    RateOverrides
		want float64
	}{
		{"all nil resolves to zero", RateOverrides{}, 0},
		{"developer default only", RateOverrides{Developer: f(2.5)}, 2.5},
		{"project overrides developer", RateOverrides{Developer: f(2.5), Project: f(3)}, 3},
		{"category overrides project", RateOverrides{Developer: f(2.5), Project: f(3), Category: f(4)}, 4},
		{"unit type wins over everything", RateOverrides{Developer: f(2.5), Project: f(3), Category: f(4), UnitType: f(1.75)}, 1.75},
		{"gap in the middle falls through", RateOverrides{Developer: f(2.5), UnitType: f(5)}, 5},
		{"category zero is an override, not absence", RateOverrides{Developer: f(2.5), Category: f(0)}, 0},
		{"unit type zero beats positive developer default", RateOverrides{Developer: f(3), UnitType: f(0)}, 0},
		{"project zero with nil levels above it", RateOverrides{Developer: f(2.5), Project: f(0)}, 0},
		{"nil unit type falls back to category", RateOverrides{Category: f(1.5)}, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveEffective(tt.o))
		})
	}
}

func TestResolveBundleKindsAreIndependent(t *testing.T) {
	dev := RateFields{Actual: f(5), Broker: f(4), Communicated: f(3)}
	proj := RateFields{Broker: f(2)}
	cat := RateFields{Actual: f(6)}
	ut := RateFields{Communicated: f(0)}

	b := ResolveBundle(dev, proj, cat, ut)
	assert.Equal(t, 6.0, b.Actual, "category override of actual rate")
	assert.Equal(t, 2.0, b.Broker, "project override of broker rate")
	assert.Equal(t, 0.0, b.Communicated, "unit type zero override of communicated rate")
}

func TestResolveBundleAllEmpty(t *testing.T) {
	b := ResolveBundle(RateFields{}, RateFields{}, RateFields{}, RateFields{})
	assert.Equal(t, Bundle{}, b)
}

func TestValidateFields(t *testing.T) {
	assert.NoError(t, ValidateFields(RateFields{}))
	assert.NoError(t, ValidateFields(RateFields{Actual: f(0), Broker: f(100), Communicated: f(2.5)}))
	assert.ErrorIs(t, ValidateFields(RateFields{Actual: f(-1)}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateFields(RateFields{Broker: f(100.01)}), ErrInvalidInput)
}
