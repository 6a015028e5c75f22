package scoring

import (
	"sort"
	"strings"

	"github.com/trogers1052/supershares/internal/models"
)

// Sortable columns of the universe table
const (
	SortTicker     = "ticker"
	SortCompany    = "company"
	SortSector     = "sector"
	SortDecision   = "decision"
	SortFramework  = "framework"
	SortScore      = "score"
	SortLastClose  = "last_close"
	SortChange     = "change"
	SortChangePct  = "change_pct"
	SortVolume     = "volume"
	SortDistMA20   = "dist_ma20"
	SortRSI        = "rsi"
	SortVolatility = "volatility"
)

var rank = map[string]int{
	models.DecisionBuy:         3,
	models.FrameworkInvest:     3,
	models.DecisionWait:        2,
	models.DecisionAvoid:       1,
	models.DecisionSellWarning: 0,
}

var textColumns = map[string]bool{
	SortTicker:     true,
	SortCompany:    true,
	SortSector:     true,
	SortVolatility: true,
}

// IsTextColumn reports whether key sorts alphabetically
func IsTextColumn(key string) bool {
	return textColumns[strings.ToLower(key)]
}

// IsSortKey reports whether key names a sortable column
func IsSortKey(key string) bool {
	_, ok := numericKey(strings.ToLower(key))
	return ok || IsTextColumn(key)
}

func numericKey(key string) (func(r models.ScoreRow) float64, bool) {
	switch key {
	case SortDecision:
		return func(r models.ScoreRow) float64 { return float64(rank[r.Signal.Decision]) }, true
	case SortFramework:
		return func(r models.ScoreRow) float64 { return float64(rank[r.Signal.Framework]) }, true
	case SortScore:
		return func(r models.ScoreRow) float64 { return float64(r.Signal.Score) }, true
	case SortLastClose:
		return func(r models.ScoreRow) float64 { return r.LastClose }, true
	case SortChange:
		return func(r models.ScoreRow) float64 { return r.Change }, true
	case SortChangePct:
		return func(r models.ScoreRow) float64 { return r.ChangePct }, true
	case SortVolume:
		return func(r models.ScoreRow) float64 { return float64(r.Volume) }, true
	case SortDistMA20:
		return func(r models.ScoreRow) float64 { return orZero(r.DistMA20) }, true
	case SortRSI:
		return func(r models.ScoreRow) float64 { return orZero(r.Signal.RSI) }, true
	}
	return nil, false
}

func textKey(key string) func(r models.ScoreRow) string {
	switch key {
	case SortTicker:
		return func(r models.ScoreRow) string { return r.Ticker }
	case SortCompany:
		return func(r models.ScoreRow) string { return r.Company }
	case SortSector:
		return func(r models.ScoreRow) string { return r.Sector }
	case SortVolatility:
		return func(r models.ScoreRow) string { return r.Signal.Volatility }
	}
	return nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// SortRows returns a stably sorted copy of rows. Decision and framework sort
// by rank (BUY/INVEST highest, SELL WARNING lowest); undefined numbers sort as
// zero. An unknown key leaves the order unchanged.
func SortRows(rows []models.ScoreRow, key string, asc bool) []models.ScoreRow {
	out := append([]models.ScoreRow(nil), rows...)
	key = strings.ToLower(key)

	if num, ok := numericKey(key); ok {
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return num(out[i]) < num(out[j])
			}
			return num(out[i]) > num(out[j])
		})
		return out
	}
	if text := textKey(key); text != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return text(out[i]) < text(out[j])
			}
			return text(out[i]) > text(out[j])
		})
	}
	return out
}
