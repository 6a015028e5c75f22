package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade sides
const (
	TradeSideBuy  = "BUY"
	TradeSideSell = "SELL"
)

// RawTrade is an executed broker trade recorded once per order for idempotent replay
type RawTrade struct {
	ID         int             `json:"id"`
	OrderID    string          `json:"order_id"`
	Source     string          `json:"source"`
	Symbol     string          `json:"symbol"`
	Side       string          `json:"side"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	ExecutedAt time.Time       `json:"executed_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SignedQuantity returns the quantity as a portfolio delta: negative for sells
func (t RawTrade) SignedQuantity() decimal.Decimal {
	if t.Side == TradeSideSell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}
