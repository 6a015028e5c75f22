package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/trogers1052/supershares/internal/models"
	"github.com/trogers1052/supershares/internal/universe"
)

func printSummary(w io.Writer, s models.MarketSummary) {
	fmt.Fprintf(w, "%d instruments | %.0f%% in uptrend | %d investable | %d up / %d down\n",
		s.Instruments, s.UptrendPct, s.Investable, s.Advancing, s.Declining)
	for _, r := range s.TopPicks {
		fmt.Fprintf(w, "  top pick: %s (%s, score %d)\n", r.Ticker, r.Signal.Decision, r.Signal.Score)
	}
}

func printScoreTable(w io.Writer, rows []models.ScoreRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tCOMPANY\tSECTOR\tDECISION\tFRAMEWORK\tSCORE\tCLOSE\tCHG%\tRSI\tVOL\tDIST MA20")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s%.2f\t%+.2f\t%s\t%s\t%s\n",
			r.Ticker, r.Company, r.Sector, r.Signal.Decision, r.Signal.Framework, r.Signal.Score,
			universe.CurrencyPrefix(r.Market), r.LastClose, r.ChangePct,
			optional(r.Signal.RSI, 1), r.Signal.Volatility, optional(r.DistMA20, 2))
	}
	return tw.Flush()
}

func printPortfolio(w io.Writer, rows []models.PortfolioRow, totals models.PortfolioTotals) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tCOMPANY\tQTY\tAVG\tPRICE\tVALUE\tP&L\tP&L%\tSIGNAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%+.2f\t%+.2f\t%s\n",
			r.Ticker, r.Company, strconv.FormatFloat(r.Qty, 'f', -1, 64), r.AvgPrice, r.CurrentPrice,
			r.CurrentValue, r.PnL, r.PnLPct, r.Signal.Decision)
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t\t\t%.2f\t%+.2f\t%+.2f\t\n", totals.CurrentValue, totals.PnL, totals.PnLPct)
	return tw.Flush()
}

func optional(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}
