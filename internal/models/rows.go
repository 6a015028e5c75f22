package models

// ScoreRow is one instrument's line in the universe table
type ScoreRow struct {
	Ticker    string   `json:"ticker"`
	Company   string   `json:"company"`
	Sector    string   `json:"sector"`
	Market    string   `json:"market"`
	Group     string   `json:"group"`
	Signal    Signal   `json:"signal"`
	LastClose float64  `json:"last_close"`
	Change    float64  `json:"change"`
	ChangePct float64  `json:"change_pct"`
	Volume    int64    `json:"volume"`
	DistMA20  *float64 `json:"dist_ma20,omitempty"`
}

// PortfolioRow is one owned position with live economics and signal
type PortfolioRow struct {
	Ticker       string  `json:"ticker"`
	Company      string  `json:"company"`
	Qty          float64 `json:"qty"`
	AvgPrice     float64 `json:"avg_price"`
	CurrentPrice float64 `json:"current_price"`
	Invested     float64 `json:"invested"`
	CurrentValue float64 `json:"current_value"`
	PnL          float64 `json:"pnl"`
	PnLPct       float64 `json:"pnl_pct"`
	Signal       Signal  `json:"signal"`
}

// PortfolioTotals aggregates the economics of all portfolio rows
type PortfolioTotals struct {
	Invested     float64 `json:"invested"`
	CurrentValue float64 `json:"current_value"`
	PnL          float64 `json:"pnl"`
	PnLPct       float64 `json:"pnl_pct"`
}

// SectorChange is the median day change of a sector
type SectorChange struct {
	Sector          string  `json:"sector"`
	MedianChangePct float64 `json:"median_change_pct"`
}

// MarketSummary is the banner computed over a scored universe
type MarketSummary struct {
	Instruments int            `json:"instruments"`
	UptrendPct  float64        `json:"uptrend_pct"`
	Investable  int            `json:"investable"`
	Advancing   int            `json:"advancing"`
	Declining   int            `json:"declining"`
	Sectors     []SectorChange `json:"sectors"`
	TopPicks    []ScoreRow     `json:"top_picks"`
}
