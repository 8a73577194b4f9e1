package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestColumnUpdates(t *testing.T) {
	u := columnUpdates(Rates{
		ActualCommissionRate:   f(3.5),
		CommunicatedCommission: f(0),
	})
	assert.Equal(t, map[string]interface{}{
		"actual_commission_rate":  3.5,
		"communicated_commission": 0.0,
	}, u)
}

func TestColumnUpdatesEmpty(t *testing.T) {
	assert.Empty(t, columnUpdates(Rates{}))
}

func TestCheckCascade(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		cascade Cascade
		wantErr bool
	}{
		{"developer to everything", LevelDeveloper, Cascade{ToProjects: true, ToCategories: true, ToUnitTypes: true}, false},
		{"developer no cascade", LevelDeveloper, Cascade{}, false},
		{"project to categories and unit types", LevelProject, Cascade{ToCategories: true, ToUnitTypes: true}, false},
		{"project to projects", LevelProject, Cascade{ToProjects: true}, true},
		{"category to unit types", LevelCategory, Cascade{ToUnitTypes: true}, false},
		{"category to categories", LevelCategory, Cascade{ToCategories: true}, true},
		{"unit type no cascade", LevelUnitType, Cascade{}, false},
		{"unit type to unit types", LevelUnitType, Cascade{ToUnitTypes: true}, true},
		{"unknown level", "portfolio", Cascade{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCascade(tt.level, tt.cascade)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCascade)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
