package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trogers1052/supershares/internal/models"
)

func row(ticker, sector string, score int, decision, framework, long string, change, changePct float64) models.ScoreRow {
	return models.ScoreRow{
		Ticker:    ticker,
		Sector:    sector,
		Change:    change,
		ChangePct: changePct,
		Signal: models.Signal{
			Decision:  decision,
			Framework: framework,
			Score:     score,
			Long:      long,
		},
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, 0, s.Instruments)
		assert.Empty(t, s.TopPicks)
	})

	rows := []models.ScoreRow{
		row("A", "Tech", 45, models.DecisionWait, models.FrameworkInvest, models.TrendUptrend, 1, 1.0),
		row("B", "Tech", 55, models.DecisionBuy, models.FrameworkInvest, models.TrendUptrend, 2, 3.0),
		row("C", "Energy", 25, models.DecisionAvoid, models.FrameworkAvoid, models.TrendDowntrend, -1, -2.0),
		row("D", "Tech", 25, models.DecisionWait, models.FrameworkWait, models.TrendUptrend, 0, 0),
		row("E", "Energy", 25, models.DecisionAvoid, models.FrameworkAvoid, models.TrendDowntrend, -3, -4.0),
	}
	s := Summarize(rows)

	assert.Equal(t, 5, s.Instruments)
	assert.InDelta(t, 60.0, s.UptrendPct, 1e-9)
	assert.Equal(t, 2, s.Investable)
	assert.Equal(t, 2, s.Advancing)
	assert.Equal(t, 2, s.Declining)

	require.Len(t, s.Sectors, 2)
	assert.Equal(t, "Tech", s.Sectors[0].Sector)
	assert.Equal(t, 1.0, s.Sectors[0].MedianChangePct)
	assert.Equal(t, "Energy", s.Sectors[1].Sector)
	assert.Equal(t, -3.0, s.Sectors[1].MedianChangePct)

	require.Len(t, s.TopPicks, 4)
	assert.Equal(t, "B", s.TopPicks[0].Ticker)
	assert.Equal(t, "A", s.TopPicks[1].Ticker)
	assert.Equal(t, "C", s.TopPicks[2].Ticker, "ties keep input order")
}

func TestPortfolioTotals(t *testing.T) {
	t.Run("sums and percentage", func(t *testing.T) {
		totals := PortfolioTotals([]models.PortfolioRow{
			{Invested: 1000, CurrentValue: 1100},
			{Invested: 500, CurrentValue: 400},
		})
		assert.Equal(t, 1500.0, totals.Invested)
		assert.Equal(t, 1500.0, totals.CurrentValue)
		assert.Equal(t, 0.0, totals.PnL)
		assert.Equal(t, 0.0, totals.PnLPct)
	})

	t.Run("nothing invested", func(t *testing.T) {
		totals := PortfolioTotals([]models.PortfolioRow{{Invested: 0, CurrentValue: 50}})
		assert.Equal(t, 50.0, totals.PnL)
		assert.Equal(t, 0.0, totals.PnLPct)
	})
}

func TestSortRows(t *testing.T) {
	rows := []models.ScoreRow{
		row("MSFT", "Tech", 25, models.DecisionWait, models.FrameworkWait, "", 0, 0),
		row("AAPL", "Tech", 55, models.DecisionBuy, models.FrameworkInvest, "", 0, 0),
		row("XOM", "Energy", 10, models.DecisionSellWarning, models.FrameworkAvoid, "", 0, 0),
		row("CVX", "Energy", 25, models.DecisionAvoid, models.FrameworkAvoid, "", 0, 0),
	}
	tickers := func(rs []models.ScoreRow) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Ticker)
		}
		return out
	}

	t.Run("decision by rank descending", func(t *testing.T) {
		assert.Equal(t, []string{"AAPL", "MSFT", "CVX", "XOM"}, tickers(SortRows(rows, SortDecision, false)))
	})

	t.Run("decision by rank ascending", func(t *testing.T) {
		assert.Equal(t, []string{"XOM", "CVX", "MSFT", "AAPL"}, tickers(SortRows(rows, "Decision", true)))
	})

	t.Run("text column", func(t *testing.T) {
		assert.Equal(t, []string{"AAPL", "CVX", "MSFT", "XOM"}, tickers(SortRows(rows, SortTicker, true)))
	})

	t.Run("score is stable", func(t *testing.T) {
		assert.Equal(t, []string{"AAPL", "MSFT", "CVX", "XOM"}, tickers(SortRows(rows, SortScore, false)))
	})

	t.Run("unknown key keeps order and input is not mutated", func(t *testing.T) {
		assert.Equal(t, []string{"MSFT", "AAPL", "XOM", "CVX"}, tickers(SortRows(rows, "bogus", true)))
		SortRows(rows, SortTicker, true)
		assert.Equal(t, "MSFT", rows[0].Ticker)
	})

	t.Run("sort keys", func(t *testing.T) {
		assert.True(t, IsSortKey("score"))
		assert.True(t, IsSortKey("ticker"))
		assert.False(t, IsSortKey("bogus"))
		assert.True(t, IsTextColumn("Company"))
		assert.False(t, IsTextColumn("change_pct"))
	})
}
