package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trogers1052/supershares/internal/models"
)

func TestPrintScoreTable(t *testing.T) {
	rsi := 55.25
	rows := []models.ScoreRow{
		{
			Ticker: "AAPL", Company: "Apple", Sector: "Big Tech", Market: models.MarketUSA,
			Signal:    models.Signal{Decision: models.DecisionBuy, Framework: models.FrameworkInvest, Score: 4, RSI: &rsi, Volatility: models.VolatilityNormal},
			LastClose: 190.5, ChangePct: 1.234,
		},
		{
			Ticker: "TCS.NS", Company: "TCS", Sector: "IT", Market: models.MarketIndia,
			Signal:    models.Signal{Decision: models.DecisionWait, Framework: models.FrameworkWait, Score: 2},
			LastClose: 3900, ChangePct: -0.5,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printScoreTable(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TICKER"))
	assert.Contains(t, lines[1], "$190.50")
	assert.Contains(t, lines[1], "+1.23")
	assert.Contains(t, lines[1], "55.2")
	assert.Contains(t, lines[2], "₹3900.00")
	assert.Contains(t, lines[2], "-0.50")
	assert.Contains(t, lines[2], " - ")
}

func TestPrintPortfolio(t *testing.T) {
	rows := []models.PortfolioRow{{
		Ticker: "MSFT", Company: "Microsoft", Qty: 2.5, AvgPrice: 300, CurrentPrice: 400,
		Invested: 750, CurrentValue: 1000, PnL: 250, PnLPct: 33.333,
		Signal: models.Signal{Decision: models.DecisionSellWarning},
	}}
	totals := models.PortfolioTotals{Invested: 750, CurrentValue: 1000, PnL: 250, PnLPct: 33.333}

	var buf bytes.Buffer
	require.NoError(t, printPortfolio(&buf, rows, totals))

	out := buf.String()
	assert.Contains(t, out, "MSFT")
	assert.Contains(t, out, "2.5")
	assert.Contains(t, out, "+250.00")
	assert.Contains(t, out, "+33.33")
	assert.Contains(t, out, "SELL WARNING")
	assert.Contains(t, out, "TOTAL")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, models.MarketSummary{
		Instruments: 10, UptrendPct: 60, Investable: 3, Advancing: 6, Declining: 4,
		TopPicks: []models.ScoreRow{{Ticker: "NVDA", Signal: models.Signal{Decision: models.DecisionBuy, Score: 5}}},
	})

	assert.Contains(t, buf.String(), "10 instruments | 60% in uptrend")
	assert.Contains(t, buf.String(), "top pick: NVDA (BUY, score 5)")
}
