package models

import "time"

// Bar represents one trading day of OHLCV data for an instrument
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// IsBullish reports whether the bar closed above its open
func (b Bar) IsBullish() bool {
	return b.Close > b.Open
}

// IsBearish reports whether the bar closed below its open
func (b Bar) IsBearish() bool {
	return b.Close < b.Open
}

// IndicatorSet holds the derived indicators for a single bar.
// A nil field means the indicator is not yet defined at that bar.
type IndicatorSet struct {
	MA20   *float64 `json:"ma20,omitempty"`
	MA50   *float64 `json:"ma50,omitempty"`
	MA200  *float64 `json:"ma200,omitempty"`
	RSI14  *float64 `json:"rsi14,omitempty"`
	ATR14  *float64 `json:"atr14,omitempty"`
	ATRPct *float64 `json:"atr_pct,omitempty"`
}

// AnnotatedBar is a bar with its indicator set attached
type AnnotatedBar struct {
	Bar
	IndicatorSet
}
