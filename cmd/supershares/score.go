package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/trogers1052/supershares/internal/config"
	"github.com/trogers1052/supershares/internal/scoring"
	"github.com/trogers1052/supershares/internal/signals"
	"github.com/trogers1052/supershares/internal/universe"
)

var scoreFlags struct {
	market   string
	sector   string
	group    string
	profile  string
	lookback int
	sort     string
	asc      bool
}

var scoreCMD = &cobra.Command{
	Use:   "score",
	Short: "Score the universe and print the ranked table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := config.Load()
		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		profile := cfg.Scoring.Profile
		if scoreFlags.profile != "" {
			profile = scoreFlags.profile
		}
		lookback := cfg.Scoring.LookbackDays
		if scoreFlags.lookback > 0 {
			lookback = scoreFlags.lookback
		}

		instruments := universe.Select(universe.Filter{
			Market: scoreFlags.market,
			Sector: scoreFlags.sector,
			Group:  scoreFlags.group,
		})
		rows := a.scorer.ScoreUniverse(ctx, instruments, lookback, signals.ProfileFor(profile))

		printSummary(os.Stdout, scoring.Summarize(rows))
		return printScoreTable(os.Stdout, scoring.SortRows(rows, scoreFlags.sort, scoreFlags.asc))
	},
}

func init() {
	f := scoreCMD.Flags()
	f.StringVar(&scoreFlags.market, "market", "All", "market filter: All, USA or INDIA")
	f.StringVar(&scoreFlags.sector, "sector", "All", "sector filter")
	f.StringVar(&scoreFlags.group, "group", "All", "group filter")
	f.StringVar(&scoreFlags.profile, "profile", "", "strategy profile: TRADER or SWING")
	f.IntVar(&scoreFlags.lookback, "lookback", 0, "lookback window in days")
	f.StringVar(&scoreFlags.sort, "sort", scoring.SortScore, "sort column")
	f.BoolVar(&scoreFlags.asc, "asc", false, "sort ascending")
}
