package override

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFields is returned when the request names no rate field at all.
	ErrNoFields = errors.New("no rate fields provided")

	// ErrInvalidCascade is returned when a cascade flag points at a level
	// that is not below the scope (e.g. cascading a category to projects).
	ErrInvalidCascade = errors.New("cascade flag not applicable to scope")
)

// columnUpdates maps the present fields onto their columns. All four
// hierarchy tables share these column names, so one map serves the target
// and every cascaded level.
func columnUpdates(r Rates) map[string]interface{} {
	u := map[string]interface{}{}
	if r.ActualCommissionRate != nil {
		u["actual_commission_rate"] = *r.ActualCommissionRate
	}
	if r.BrokerCommissionRate != nil {
		u["broker_commission_rate"] = *r.BrokerCommissionRate
	}
	if r.CommunicatedCommission != nil {
		u["communicated_commission"] = *r.CommunicatedCommission
	}
	return u
}

// checkCascade rejects flags pointing at levels that are not descendants of
// the scope.
func checkCascade(level string, c Cascade) error {
	switch level {
	case LevelDeveloper:
		return nil
	case LevelProject:
		if c.ToProjects {
			return fmt.Errorf("%w: a project cannot cascade to projects", ErrInvalidCascade)
		}
		return nil
	case LevelCategory:
		if c.ToProjects || c.ToCategories {
			return fmt.Errorf("%w: a category can only cascade to unit types", ErrInvalidCascade)
		}
		return nil
	case LevelUnitType:
		if c.ToProjects || c.ToCategories || c.ToUnitTypes {
			return fmt.Errorf("%w: a unit type has no descendants", ErrInvalidCascade)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown level %q", ErrInvalidCascade, level)
}
