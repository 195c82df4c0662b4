package valuation

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Calculator input errors.
var (
	ErrNonPositiveGDP    = errors.New("gdp must be positive")
	ErrNegativeMarketCap = errors.New("market cap must not be negative")
)

// ComputeIndicator returns (marketCap / gdp) * 100 rounded to two
// decimals. Inputs share a currency unit; any unit works since the
// ratio is dimensionless.
func ComputeIndicator(marketCap, gdp decimal.Decimal) (decimal.Decimal, error) {
	if gdp.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveGDP
	}
	if marketCap.Sign() < 0 {
		return decimal.Zero, ErrNegativeMarketCap
	}
	return marketCap.Div(gdp).Mul(decimal.NewFromInt(100)).Round(2), nil
}
