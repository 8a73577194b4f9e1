package deal

import (
	"testing"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestBuildSnapshot(t *testing.T) {
	developer := rates.RateFields{Actual: f(5), Broker: f(2), Communicated: f(4)}
	project := rates.RateFields{Actual: f(2.5)}
	category := rates.RateFields{Broker: f(1.5)}
	unitType := rates.RateFields{}

	s, err := BuildSnapshot(2_000_000, developer, project, category, unitType)
	require.NoError(t, err)

	// Each rate kind resolves independently: actual from the project,
	// broker from the category, communicated from the developer.
	assert.Equal(t, 2.5, s.Rates.Actual)
	assert.Equal(t, 1.5, s.Rates.Broker)
	assert.Equal(t, 4.0, s.Rates.Communicated)
	assert.Equal(t, 50_000.0, s.Amount)
	assert.Equal(t, 30_000.0, s.BrokerAmount)
}

func TestBuildSnapshotAllInherited(t *testing.T) {
	none := rates.RateFields{}
	s, err := BuildSnapshot(1_000_000, none, none, none, none)
	require.NoError(t, err)
	assert.Zero(t, s.Rates.Actual)
	assert.Zero(t, s.Amount)
	assert.Zero(t, s.BrokerAmount)
}

func TestBuildSnapshotRejectsInvalidSalePrice(t *testing.T) {
	developer := rates.RateFields{Actual: f(5)}
	none := rates.RateFields{}

	_, err := BuildSnapshot(0, developer, none, none, none)
	require.ErrorIs(t, err, rates.ErrInvalidInput)

	_, err = BuildSnapshot(-100, developer, none, none, none)
	require.ErrorIs(t, err, rates.ErrInvalidInput)
}

func TestBuildSnapshotRounding(t *testing.T) {
	developer := rates.RateFields{Actual: f(1), Broker: f(1)}
	none := rates.RateFields{}

	s, err := BuildSnapshot(1_333_333, developer, none, none, none)
	require.NoError(t, err)
	assert.Equal(t, 13_333.33, s.Amount)
	assert.Equal(t, 13_333.33, s.BrokerAmount)
}
