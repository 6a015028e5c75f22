package models

import "time"

// Decision constants
const (
	DecisionBuy         = "BUY"
	DecisionWait        = "WAIT"
	DecisionAvoid       = "AVOID"
	DecisionSellWarning = "SELL WARNING"
)

// Framework constants
const (
	FrameworkInvest = "INVEST"
	FrameworkWait   = "WAIT"
	FrameworkAvoid  = "AVOID"
)

// Confidence constants
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
)

// Volatility bucket constants
const (
	VolatilityLow    = "Low"
	VolatilityNormal = "Normal"
	VolatilityHigh   = "High"
)

// Trend labels
const (
	TrendBullish   = "Bullish"
	TrendBearish   = "Bearish"
	TrendUptrend   = "Uptrend"
	TrendDowntrend = "Downtrend"
)

// Signal is the structured output of the decision engine
type Signal struct {
	Decision   string   `json:"decision"`
	Confidence string   `json:"confidence"`
	Entry      string   `json:"entry"`
	Stop       *float64 `json:"stop,omitempty"`
	Target     *float64 `json:"target,omitempty"`
	Framework  string   `json:"framework"`
	Score      int      `json:"score"`
	Short      string   `json:"short"`
	Medium     string   `json:"medium"`
	Long       string   `json:"long"`
	Volatility string   `json:"volatility"`
	ATR        *float64 `json:"atr,omitempty"`
	RSI        *float64 `json:"rsi,omitempty"`
}

// PatternMatch is a candlestick formation found on a given date
type PatternMatch struct {
	Date    time.Time `json:"date"`
	Pattern string    `json:"pattern"`
	Meaning string    `json:"meaning"`
	Learn   string    `json:"learn"`
}
