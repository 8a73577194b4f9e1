package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCommission(t *testing.T) {
	tests := []struct {
		name      string
		salePrice float64
		rate      float64
		want      float64
	}{
		{"round figures", 2_000_000, 2.5, 50_000},
		{"fractional result rounds to cents", 1_333_333, 1.0, 13_333.33},
		{"half cent rounds up", 5, 0.1, 0.01},
		{"zero rate yields zero amount", 750_000, 0, 0},
		{"full rate", 1000, 100, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateCommission(tt.salePrice, tt.rate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateCommissionInvalidInput(t *testing.T) {
	_, err := CalculateCommission(0, 2.5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateCommission(-100, 2.5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateCommission(100, -0.5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateCommission(100, 100.5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateBundle(t *testing.T) {
	actual, broker, err := CalculateBundle(400_000, Bundle{Actual: 5, Broker: 2.5, Communicated: 4})
	require.NoError(t, err)
	assert.Equal(t, 20_000.0, actual)
	assert.Equal(t, 10_000.0, broker)

	_, _, err = CalculateBundle(-1, Bundle{Actual: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
