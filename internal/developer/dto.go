package developer

// CreateDeveloperDTO registers a developer with optional default rates.
type CreateDeveloperDTO struct {
	Name                   string   `json:"name" validate:"required,min=1,max=255"`
	ContactEmail           string   `json:"contactEmail" validate:"omitempty,email"`
	Phone                  string   `json:"phone" validate:"max=50"`
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
}

// UpdateDeveloperDTO carries a partial edit; absent fields stay untouched.
type UpdateDeveloperDTO struct {
	Name                   *string  `json:"name" validate:"omitempty,min=1,max=255"`
	ContactEmail           *string  `json:"contactEmail" validate:"omitempty,email"`
	Phone                  *string  `json:"phone" validate:"omitempty,max=50"`
	ActualCommissionRate   *float64 `json:"actualCommissionRate" validate:"omitempty,gte=0,lte=100"`
	BrokerCommissionRate   *float64 `json:"brokerCommissionRate" validate:"omitempty,gte=0,lte=100"`
	CommunicatedCommission *float64 `json:"communicatedCommission" validate:"omitempty,gte=0,lte=100"`
}

func (d UpdateDeveloperDTO) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if d.Name != nil {
		u["name"] = *d.Name
	}
	if d.ContactEmail != nil {
		u["contact_email"] = *d.ContactEmail
	}
	if d.Phone != nil {
		u["phone"] = *d.Phone
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
