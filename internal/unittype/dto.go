package unittype

// CreateTypeDTO creates a catalog entry.
type CreateTypeDTO struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateAssignmentDTO attaches a unit type to a project category.
type CreateAssignmentDTO struct {
	UnitTypeID             uint     `json:"unitTypeId" validate:"required"`
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
	Price                  float64  `json:"price" validate:"gte=0"`
}

// UpdateAssignmentDTO carries a partial edit; absent fields stay untouched.
type UpdateAssignmentDTO struct {
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
	Price                  *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (d UpdateAssignmentDTO) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if d.ActualCommissionRate != nil {
		u["actual_commission_rate"] = *d.ActualCommissionRate
	}
	if d.BrokerCommissionRate != nil {
		u["broker_commission_rate"] = *d.BrokerCommissionRate
	}
	if d.CommunicatedCommission != nil {
		u["communicated_commission"] = *d.CommunicatedCommission
	}
	if d.Price != nil {
		u["price"] = *d.Price
	}
	return u
}
