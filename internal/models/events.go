package models

import "time"

// Event type constants
const (
	EventSignalComputed = "SIGNAL_COMPUTED"
	EventTradeDetected  = "TRADE_DETECTED"
)

// SignalEvent represents a Kafka event for a freshly computed signal
type SignalEvent struct {
	EventType string    `json:"event_type"`
	Ticker    string    `json:"ticker"`
	Profile   string    `json:"profile"`
	Row       *ScoreRow `json:"row,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TradeEvent represents a trade detected by an upstream broker sync
type TradeEvent struct {
	EventType string    `json:"event_type"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Data      TradeData `json:"data"`
}

// TradeData holds the trade details of a TradeEvent
type TradeData struct {
	OrderID      string  `json:"order_id"`
	Symbol       string  `json:"symbol"`
	Side         string  `json:"side"`
	Quantity     string  `json:"quantity"`
	AveragePrice string  `json:"average_price"`
	ExecutedAt   *string `json:"executed_at,omitempty"`
}
