package scoring

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/trogers1052/supershares/internal/indicators"
	"github.com/trogers1052/supershares/internal/models"
	"github.com/trogers1052/supershares/internal/signals"
	"github.com/trogers1052/supershares/internal/universe"
)

// Scoring windows
const (
	MinBars             = 60
	DefaultLookbackDays = 120
	DefaultWorkers      = 8
	warmupPadDays       = 260
	portfolioWindowDays = 365
)

// SeriesSource supplies daily bars. An empty result means no data.
type SeriesSource interface {
	Series(ctx context.Context, ticker string, start, end time.Time) []models.Bar
}

// Scorer runs the indicator and decision pipeline over many instruments concurrently
type Scorer struct {
	source  SeriesSource
	workers int
	now     func() time.Time
}

// NewScorer creates a scorer; workers bounds concurrent fetches
func NewScorer(source SeriesSource, workers int) *Scorer {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Scorer{source: source, workers: workers, now: time.Now}
}

func (s *Scorer) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ScoreUniverse scores each instrument over lookbackDays plus an indicator
// warm-up pad. Instruments with fewer than MinBars bars are left out; the
// remaining rows keep the input order.
func (s *Scorer) ScoreUniverse(ctx context.Context, instruments []models.Instrument, lookbackDays int, profile signals.Profile) []models.ScoreRow {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	end := s.today()
	start := end.AddDate(0, 0, -(lookbackDays + warmupPadDays))

	results := make([]*models.ScoreRow, len(instruments))
	s.run(ctx, len(instruments), func(i int) {
		inst := instruments[i]
		bars := s.source.Series(ctx, inst.Ticker, start, end)
		if len(bars) < MinBars {
			return
		}
		row := scoreInstrument(inst, bars, profile)
		results[i] = &row
	})

	rows := make([]models.ScoreRow, 0, len(instruments))
	for _, r := range results {
		if r != nil {
			rows = append(rows, *r)
		}
	}
	log.Printf("Scored %d of %d instruments (profile %s)", len(rows), len(instruments), profile.Name)
	return rows
}

// ScorePortfolio scores held positions over the last year with the ownership
// flag set and attaches position economics
func (s *Scorer) ScorePortfolio(ctx context.Context, positions []models.Position, profile signals.Profile) []models.PortfolioRow {
	end := s.today()
	start := end.AddDate(0, 0, -portfolioWindowDays)

	results := make([]*models.PortfolioRow, len(positions))
	s.run(ctx, len(positions), func(i int) {
		pos := positions[i]
		bars := s.source.Series(ctx, pos.Ticker, start, end)
		if len(bars) < MinBars {
			return
		}
		row := scorePosition(pos, bars, profile)
		results[i] = &row
	})

	rows := make([]models.PortfolioRow, 0, len(positions))
	for _, r := range results {
		if r != nil {
			rows = append(rows, *r)
		}
	}
	log.Printf("Scored %d of %d positions (profile %s)", len(rows), len(positions), profile.Name)
	return rows
}

// run calls fn for every index with at most s.workers in flight
func (s *Scorer) run(ctx context.Context, n int, fn func(i int)) {
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	g.Wait()
}

func scoreInstrument(inst models.Instrument, bars []models.Bar, profile signals.Profile) models.ScoreRow {
	series := indicators.Compute(bars)
	sig := signals.Decide(series, profile, false)
	last, prev := series[len(series)-1], series[len(series)-2]

	row := models.ScoreRow{
		Ticker:    inst.Ticker,
		Company:   inst.Name,
		Sector:    inst.Sector,
		Market:    inst.Market,
		Group:     inst.Group,
		Signal:    sig,
		LastClose: last.Close,
		Change:    last.Close - prev.Close,
		Volume:    last.Volume,
	}
	if row.Sector == "" {
		row.Sector = "Other"
	}
	if prev.Close != 0 {
		row.ChangePct = row.Change / prev.Close * 100
	}
	if last.MA20 != nil && *last.MA20 != 0 {
		d := (last.Close - *last.MA20) / *last.MA20 * 100
		row.DistMA20 = &d
	}
	return row
}

func scorePosition(pos models.Position, bars []models.Bar, profile signals.Profile) models.PortfolioRow {
	series := indicators.Compute(bars)
	sig := signals.Decide(series, profile, true)
	last := series[len(series)-1]

	company := pos.Ticker
	if inst, ok := universe.Lookup(pos.Ticker); ok {
		company = inst.Name
	}

	price := decimal.NewFromFloat(last.Close)
	invested := pos.Invested()
	current := pos.Quantity.Mul(price)
	pnl := current.Sub(invested)
	pnlPct := decimal.Zero
	if invested.IsPositive() {
		pnlPct = pnl.Div(invested).Mul(decimal.NewFromInt(100))
	}

	return models.PortfolioRow{
		Ticker:       pos.Ticker,
		Company:      company,
		Qty:          pos.Quantity.InexactFloat64(),
		AvgPrice:     pos.AvgPrice.InexactFloat64(),
		CurrentPrice: last.Close,
		Invested:     invested.InexactFloat64(),
		CurrentValue: current.InexactFloat64(),
		PnL:          pnl.InexactFloat64(),
		PnLPct:       pnlPct.InexactFloat64(),
		Signal:       sig,
	}
}
