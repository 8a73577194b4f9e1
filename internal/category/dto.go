package category

// CreateCategoryDTO creates a catalog entry.
type CreateCategoryDTO struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateProjectCategoryDTO attaches a category to a project.
type CreateProjectCategoryDTO struct {
	CategoryID             uint     `json:"categoryId" validate:"required"`
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
}

// UpdateProjectCategoryDTO carries a partial edit; absent fields stay
// untouched.
type UpdateProjectCategoryDTO struct {
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
}

func (d UpdateProjectCategoryDTO) updates() map[string]interface{} {
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
	return u
}
