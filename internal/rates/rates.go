// Package rates is the single home of the commission-rate resolution and
// amount math. Every call site (deal creation, bulk overrides, seeding,
// broker summaries) delegates here instead of re-implementing the
// fallthrough chain inline.
package rates

// RateOverrides carries one rate kind across the four hierarchy levels,
// ordered from least to most specific. A nil entry means "inherit from the
// level above"; a zero value is a real override and does not fall through.
type RateOverrides struct {
	Developer *float64
	Project   *float64
	Category  *float64
	UnitType  *float64
}

// ResolveEffective returns the first non-nil value scanning from the most
// specific level down to the developer default. If no level carries a value
// the effective rate is 0. Absent configuration is valid, not an error.
func ResolveEffective(o RateOverrides) float64 {
	if o.UnitType != nil {
		return *o.UnitType
	}
	if o.Category != nil {
		return *o.Category
	}
	if o.Project != nil {
		return *o.Project
	}
	if o.Developer != nil {
		return *o.Developer
	}
	return 0
}

// RateFields is the override bundle one hierarchy row carries: the rate the
// developer actually pays, the rate forwarded to the broker, and the rate
// communicated publicly. Any of them may be nil.
type RateFields struct {
	Actual       *float64 `json:"actualCommissionRate"`
	Broker       *float64 `json:"brokerCommissionRate"`
	Communicated *float64 `json:"communicatedCommission"`
}

// Bundle holds all three rate kinds after resolution.
type Bundle struct {
	Actual       float64 `json:"actualCommissionRate"`
	Broker       float64 `json:"brokerCommissionRate"`
	Communicated float64 `json:"communicatedCommission"`
}

// ResolveBundle resolves the three rate kinds in one pass over the hierarchy
// rows. The same fallthrough rule applies independently per kind: a project
// may override the broker rate while inheriting the actual rate.
func ResolveBundle(developer, project, category, unitType RateFields) Bundle {
	return Bundle{
		Actual: ResolveEffective(RateOverrides{
			Developer: developer.Actual,
			Project:   project.Actual,
			Category:  category.Actual,
			UnitType:  unitType.Actual,
		}),
		Broker: ResolveEffective(RateOverrides{
			Developer: developer.Broker,
			Project:   project.Broker,
			Category:  category.Broker,
			UnitType:  unitType.Broker,
		}),
		Communicated: ResolveEffective(RateOverrides{
			Developer: developer.Communicated,
			Project:   project.Communicated,
			Category:  category.Communicated,
			UnitType:  unitType.Communicated,
		}),
	}
}

// ValidRate reports whether a rate value is a percentage within [0, 100].
func ValidRate(rate float64) bool {
	return rate >= 0 && rate <= 100
}

// ValidateFields checks every non-nil field of a RateFields bundle.
func ValidateFields(f RateFields) error {
	for _, v := range []*float64{f.Actual, f.Broker, f.Communicated} {
		if v != nil && !ValidRate(*v) {
			return ErrInvalidInput
		}
	}
	return nil
}
