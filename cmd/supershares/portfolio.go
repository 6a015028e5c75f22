package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trogers1052/supershares/internal/config"
	"github.com/trogers1052/supershares/internal/portfolio"
	"github.com/trogers1052/supershares/internal/scoring"
	"github.com/trogers1052/supershares/internal/signals"
)

var portfolioProfile string

var portfolioCMD = &cobra.Command{
	Use:   "portfolio",
	Short: "Print the portfolio with live P&L and signals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := config.Load()
		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		positions, err := a.portfolio.Positions(ctx)
		if err != nil {
			return err
		}
		profile := cfg.Scoring.Profile
		if portfolioProfile != "" {
			profile = portfolioProfile
		}
		rows := a.scorer.ScorePortfolio(ctx, positions, signals.ProfileFor(profile))
		return printPortfolio(cmd.OutOrStdout(), rows, scoring.PortfolioTotals(rows))
	},
}

var portfolioAddCMD = &cobra.Command{
	Use:   "add [ticker] [qty] [price]",
	Short: "Record a transaction; a negative quantity sells",
	Args:  cobra.ExactArgs(3),
	// quantities such as -5 must reach the command as arguments
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := portfolio.ParseTransaction(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return applyTransaction(cmd.OutOrStdout(), tx)
	},
}

var portfolioSellCMD = &cobra.Command{
	Use:   "sell [ticker] [qty] [price]",
	Short: "Sell qty shares of a held position",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := portfolio.ParseTransaction(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if !tx.Quantity.IsPositive() {
			return fmt.Errorf("%w: sell quantity must be positive", portfolio.ErrInvalidQuantity)
		}
		tx.Quantity = tx.Quantity.Neg()
		return applyTransaction(cmd.OutOrStdout(), tx)
	},
}

func applyTransaction(w io.Writer, tx portfolio.Transaction) error {
	ctx := context.Background()
	a, err := newApp(ctx, config.Load())
	if err != nil {
		return err
	}
	defer a.Close()

	pos, err := a.portfolio.Apply(ctx, tx)
	if err != nil {
		return err
	}
	if pos == nil {
		fmt.Fprintf(w, "Position in %s closed\n", tx.Ticker)
		return nil
	}
	fmt.Fprintf(w, "%s: %s @ %s\n", pos.Ticker, pos.Quantity, pos.AvgPrice.StringFixed(2))
	return nil
}

var portfolioRemoveCMD = &cobra.Command{
	Use:   "remove [ticker]",
	Short: "Remove a position regardless of quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := newApp(ctx, config.Load())
		if err != nil {
			return err
		}
		defer a.Close()

		return a.portfolio.Remove(ctx, args[0])
	},
}

func init() {
	portfolioCMD.Flags().StringVar(&portfolioProfile, "profile", "", "strategy profile: TRADER or SWING")
	portfolioCMD.AddCommand(portfolioAddCMD, portfolioSellCMD, portfolioRemoveCMD)
}
