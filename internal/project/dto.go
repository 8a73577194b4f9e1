package project

// CreateProjectDTO creates a project under a developer.
type CreateProjectDTO struct {
	DeveloperID            uint     `json:"developerId" validate:"required"`
	Name                   string   `json:"name" validate:"required,min=1,max=255"`
	Location               string   `json:"location" validate:"max=255"`
	Description            string   `json:"description"`
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
}

// UpdateProjectDTO carries a partial edit; absent fields stay untouched.
type UpdateProjectDTO struct {
	Name                   *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Location               *string  `json:"location" validate:"omitempty,max=255"`
	Description            *string  `json:"description"`
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
}

func (d UpdateProjectDTO) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if d.Name != nil {
		u["name"] = *d.Name
	}
	if d.Location != nil {
		u["location"] = *d.Location
	}
	if d.Description != nil {
		u["description"] = *d.Description
	}
	if d.ActualCommissionRate != nil {
		u["actual_commission_rate"] = *d.ActualCommissionRate
	}
	if d.BrokerCommissionRate != nil {
		u["broker_commission_rate"] = *d.BrokerCommissionRate
	}
	if d.CommunicatedCommission != nil {
		u["communicated_commission"] = *d.CommunicatedCommission
	}
	return u
}
