package scoring

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/trogers1052/supershares/internal/models"
)

const topPicks = 4

// Summarize computes the market regime banner of a scored universe
func Summarize(rows []models.ScoreRow) models.MarketSummary {
	summary := models.MarketSummary{Instruments: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	uptrends := 0
	bySector := make(map[string][]float64)
	var order []string
	for _, r := range rows {
		if r.Signal.Long == models.TrendUptrend {
			uptrends++
		}
		if r.Signal.Framework == models.FrameworkInvest {
			summary.Investable++
		}
		switch {
		case r.Change > 0:
			summary.Advancing++
		case r.Change < 0:
			summary.Declining++
		}
		if _, ok := bySector[r.Sector]; !ok {
			order = append(order, r.Sector)
		}
		bySector[r.Sector] = append(bySector[r.Sector], r.ChangePct)
	}
	summary.UptrendPct = float64(uptrends) / float64(len(rows)) * 100

	for _, sector := range order {
		summary.Sectors = append(summary.Sectors, models.SectorChange{
			Sector:          sector,
			MedianChangePct: median(bySector[sector]),
		})
	}
	sort.SliceStable(summary.Sectors, func(i, j int) bool {
		return summary.Sectors[i].MedianChangePct > summary.Sectors[j].MedianChangePct
	})

	ranked := SortRows(rows, SortScore, false)
	if len(ranked) > topPicks {
		ranked = ranked[:topPicks]
	}
	summary.TopPicks = ranked
	return summary
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// PortfolioTotals sums position economics across rows
func PortfolioTotals(rows []models.PortfolioRow) models.PortfolioTotals {
	invested, current := decimal.Zero, decimal.Zero
	for _, r := range rows {
		invested = invested.Add(decimal.NewFromFloat(r.Invested))
		current = current.Add(decimal.NewFromFloat(r.CurrentValue))
	}
	pnl := current.Sub(invested)
	pnlPct := decimal.Zero
	if invested.IsPositive() {
		pnlPct = pnl.Div(invested).Mul(decimal.NewFromInt(100))
	}
	return models.PortfolioTotals{
		Invested:     invested.InexactFloat64(),
		CurrentValue: current.InexactFloat64(),
		PnL:          pnl.InexactFloat64(),
		PnLPct:       pnlPct.InexactFloat64(),
	}
}
