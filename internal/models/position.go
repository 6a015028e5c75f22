package models

import (
	"github.com/shopspring/decimal"
)

// Position represents a current stock holding in the portfolio
type Position struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"qty"`
	AvgPrice decimal.Decimal `json:"avg_price"`
}

// Invested returns quantity times average price
func (p Position) Invested() decimal.Decimal {
	return p.Quantity.Mul(p.AvgPrice)
}
