package rates

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// CalculateCommission computes salePrice * rate / 100 rounded to 2 decimal
// places. decimal.Round is half-away-from-zero, which for the non-negative
// amounts produced here is exactly round-half-up.
//
// Returns ErrInvalidInput when salePrice <= 0 or rate is outside [0, 100].
func CalculateCommission(salePrice, rate float64) (float64, error) {
	if salePrice <= 0 {
		return 0, ErrInvalidInput
	}
	if !ValidRate(rate) {
		return 0, ErrInvalidInput
	}
	amount := decimal.NewFromFloat(salePrice).
		Mul(decimal.NewFromFloat(rate)).
		Div(oneHundred).
		Round(2)
	return amount.InexactFloat64(), nil
}

// CalculateBundle applies CalculateCommission to the actual and broker rates
// of a resolved bundle. The communicated rate is display-only and carries no
// amount.
func CalculateBundle(salePrice float64, b Bundle) (actualAmount, brokerAmount float64, err error) {
	actualAmount, err = CalculateCommission(salePrice, b.Actual)
	if err != nil {
		return 0, 0, err
	}
	brokerAmount, err = CalculateCommission(salePrice, b.Broker)
	if err != nil {
		return 0, 0, err
	}
	return actualAmount, brokerAmount, nil
}
