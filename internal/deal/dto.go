package deal

// CreateDealDTO registers a sale. BrokerID is honoured only for managers;
// ordinary brokers always create deals for themselves. A unit type may only
// be given together with its category.
type CreateDealDTO struct {
	BrokerID                  uint    `json:"brokerId"`
	ProjectID                 uint    `json:"projectId" validate:"required"`
	ProjectCategoryID         *uint   `json:"projectCategoryId"`
	ProjectCategoryUnitTypeID *uint   `json:"projectCategoryUnitTypeId"`
	ClientName                string  `json:"clientName" validate:"required,min=1,max=255"`
	UnitNumber                string  `json:"unitNumber" validate:"max=100"`
	SalePrice                 float64 `json:"salePrice" validate:"required,gt=0"`
}
