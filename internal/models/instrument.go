package models

// Market constants
const (
	MarketUSA   = "USA"
	MarketIndia = "INDIA"
)

// Instrument is a static reference entry of the watch universe
type Instrument struct {
	Ticker string            `json:"ticker"`
	Name   string            `json:"name"`
	Sector string            `json:"sector"`
	Market string            `json:"market"`
	Tags   []string          `json:"tags,omitempty"`
	Links  map[string]string `json:"links,omitempty"`
	Group  string            `json:"group"`
}
