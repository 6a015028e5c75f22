package models

import "time"

// Fundamentals is a flat key/value snapshot of company information
type Fundamentals map[string]interface{}

// FinancialYear holds annual income statement figures
type FinancialYear struct {
	EndDate   time.Time `json:"end_date"`
	Revenue   *float64  `json:"revenue,omitempty"`
	NetIncome *float64  `json:"net_income,omitempty"`
}

// InstitutionalHolder is a single entry of the institutional holder list
type InstitutionalHolder struct {
	Holder       string    `json:"holder"`
	Shares       int64     `json:"shares"`
	PctHeld      float64   `json:"pct_held"`
	Value        float64   `json:"value"`
	DateReported time.Time `json:"date_reported"`
}

// Holders combines the ownership breakdown and institutional holders
type Holders struct {
	Breakdown     map[string]float64    `json:"breakdown,omitempty"`
	Institutional []InstitutionalHolder `json:"institutional,omitempty"`
}
