package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "supershares",
	Short: "Stock dashboard analytics service",
	Long: `SuperShares scores a watch universe of US and Indian stocks with
trend, momentum and volatility indicators, detects candlestick patterns
and tracks a personal portfolio with live P&L.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCMD.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCMD.AddCommand(serveCMD, scoreCMD, portfolioCMD, archiveCMD, migrateCMD)
}
