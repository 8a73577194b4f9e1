package deal

import "github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"

// Snapshot is the outcome of the single resolution pass a deal gets at
// creation time. It is written onto the commission row and never recomputed.
type Snapshot struct {
	Rates        rates.Bundle
	Amount       float64
	BrokerAmount float64
}

// BuildSnapshot resolves all three rate kinds across the hierarchy rows and
// computes the amounts for the sale price. Levels the deal does not reference
// are passed as empty RateFields and simply fall through.
func BuildSnapshot(salePrice float64, developer, project, category, unitType rates.RateFields) (Snapshot, error) {
	bundle := rates.ResolveBundle(developer, project, category, unitType)
	amount, brokerAmount, err := rates.CalculateBundle(salePrice, bundle)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Rates:        bundle,
		Amount:       amount,
		BrokerAmount: brokerAmount,
	}, nil
}
