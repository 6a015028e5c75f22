package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/trogers1052/supershares/internal/config"
	"github.com/trogers1052/supershares/internal/database"
)

var archiveCMD = &cobra.Command{
	Use:   "archive",
	Short: "Inspect and maintain the daily price archive",
}

var archiveLatestCMD = &cobra.Command{
	Use:   "latest [ticker]",
	Short: "Print the most recent archived bar of a ticker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(func(ctx context.Context, db *database.DB) error {
			bar, err := db.GetLatestPriceData(ctx, strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s O=%.2f H=%.2f L=%.2f C=%.2f V=%d\n",
				strings.ToUpper(args[0]), bar.Date.Format("2006-01-02"), bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
			return nil
		})
	},
}

var archivePurgeCMD = &cobra.Command{
	Use:   "purge [ticker]",
	Short: "Delete every archived bar of a ticker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(func(ctx context.Context, db *database.DB) error {
			return db.DeletePriceDataBySymbol(ctx, strings.ToUpper(args[0]))
		})
	},
}

var pruneDays int

var archivePruneCMD = &cobra.Command{
	Use:   "prune",
	Short: "Delete archived bars older than --days",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pruneDays <= 0 {
			return fmt.Errorf("--days must be positive")
		}
		return withArchive(func(ctx context.Context, db *database.DB) error {
			cutoff := time.Now().AddDate(0, 0, -pruneDays)
			n, err := db.DeletePriceDataOlderThan(ctx, cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d bars older than %s\n", n, cutoff.Format("2006-01-02"))
			return nil
		})
	},
}

func withArchive(fn func(ctx context.Context, db *database.DB) error) error {
	cfg := config.Load()
	db, err := database.New(cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	return fn(context.Background(), db)
}

func init() {
	archivePruneCMD.Flags().IntVar(&pruneDays, "days", 0, "age in days of the oldest bar to keep")
	archiveCMD.AddCommand(archiveLatestCMD, archivePurgeCMD, archivePruneCMD)
}
