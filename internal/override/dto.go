package override

// Hierarchy levels addressable by a bulk override.
const (
	LevelDeveloper = "developer"
	LevelProject   = "project"
	LevelCategory  = "category"
	LevelUnitType  = "unitType"
)

// Scope identifies the node whose override fields are written.
type Scope struct {
	Level string `json:"level" validate:"required,oneof=developer project category unitType"`
	ID    uint   `json:"id" validate:"required"`
}

// Rates is the partial set of fields to write. Absent fields are left
// untouched on the target and every cascaded descendant.
type Rates struct {
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
}

// Cascade selects which descendant levels get the same fields overwritten.
// This is a literal bulk write, not inheritance: after cascading, descendant
// overrides hold equal values until edited again.
type Cascade struct {
	ToProjects   bool `json:"toProjects"`
	ToCategories bool `json:"toCategories"`
	ToUnitTypes  bool `json:"toUnitTypes"`
}

// ApplyDTO is the request body for POST /rates/override.
type ApplyDTO struct {
	Scope   Scope   `json:"scope" validate:"required"`
	Rates   Rates   `json:"rates"`
	Cascade Cascade `json:"cascade"`
}
