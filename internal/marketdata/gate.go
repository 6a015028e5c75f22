package marketdata

import (
	"context"
	"log"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/trogers1052/supershares/internal/models"
)

// Default cache capacities
const (
	DefaultSeriesCacheSize       = 128
	DefaultFundamentalsCacheSize = 64
	DefaultTimeout               = 15 * time.Second
)

// GateConfig configures a Gate. Cache and Archive are optional.
type GateConfig struct {
	SeriesCacheSize       int
	FundamentalsCacheSize int
	Timeout               time.Duration
	Cache                 SeriesCache
	Archive               BarArchive
}

// Gate is the only way the analytics core reaches market data. It never
// returns an error: failures are logged and surface as empty results.
type Gate struct {
	provider     Provider
	timeout      time.Duration
	cache        SeriesCache
	archive      BarArchive
	series       *lru.Cache[string, []models.Bar]
	fundamentals *lru.Cache[string, models.Fundamentals]
	financials   *lru.Cache[string, []models.FinancialYear]
	holders      *lru.Cache[string, *models.Holders]
	inflight     singleflight.Group
}

// NewGate wraps provider with in-process LRU caches and the optional layers of cfg
func NewGate(provider Provider, cfg GateConfig) *Gate {
	if cfg.SeriesCacheSize <= 0 {
		cfg.SeriesCacheSize = DefaultSeriesCacheSize
	}
	if cfg.FundamentalsCacheSize <= 0 {
		cfg.FundamentalsCacheSize = DefaultFundamentalsCacheSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	// lru.New only fails for a non-positive size
	series, _ := lru.New[string, []models.Bar](cfg.SeriesCacheSize)
	fundamentals, _ := lru.New[string, models.Fundamentals](cfg.FundamentalsCacheSize)
	financials, _ := lru.New[string, []models.FinancialYear](cfg.FundamentalsCacheSize)
	holders, _ := lru.New[string, *models.Holders](cfg.FundamentalsCacheSize)

	return &Gate{
		provider:     provider,
		timeout:      cfg.Timeout,
		cache:        cfg.Cache,
		archive:      cfg.Archive,
		series:       series,
		fundamentals: fundamentals,
		financials:   financials,
		holders:      holders,
	}
}

// SeriesKey identifies a cached series
func SeriesKey(ticker string, start, end time.Time) string {
	return strings.ToUpper(ticker) + "|" + start.Format("2006-01-02") + "|" + end.Format("2006-01-02")
}

// Series returns the daily bars of ticker for [start, end], oldest first.
// The returned slice is shared with the cache and must not be modified.
func (g *Gate) Series(ctx context.Context, ticker string, start, end time.Time) []models.Bar {
	key := SeriesKey(ticker, start, end)
	if bars, ok := g.series.Get(key); ok {
		return bars
	}

	// waiters share the load, so one caller going away must not cancel it
	loadCtx := context.WithoutCancel(ctx)
	v, _, _ := g.inflight.Do(key, func() (interface{}, error) {
		return g.loadSeries(loadCtx, key, ticker, start, end), nil
	})
	return v.([]models.Bar)
}

func (g *Gate) loadSeries(ctx context.Context, key, ticker string, start, end time.Time) []models.Bar {
	if g.cache != nil {
		bars, ok, err := g.cache.GetSeries(ctx, key)
		if err != nil {
			log.Printf("Series cache read failed for %s: %v", key, err)
		}
		if ok && len(bars) > 0 {
			g.series.Add(key, bars)
			return bars
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	bars, err := g.provider.FetchSeries(fetchCtx, ticker, start, end)
	if err != nil {
		log.Printf("Failed to fetch series for %s: %v", ticker, err)
	}

	if len(bars) > 0 {
		g.series.Add(key, bars)
		if g.cache != nil {
			if err := g.cache.SetSeries(ctx, key, bars); err != nil {
				log.Printf("Series cache write failed for %s: %v", key, err)
			}
		}
		if g.archive != nil {
			if err := g.archive.CreatePriceDataBatch(ctx, ticker, bars); err != nil {
				log.Printf("Failed to archive bars for %s: %v", ticker, err)
			}
		}
		return bars
	}

	if g.archive != nil {
		archived, err := g.archive.GetPriceDataRange(ctx, ticker, start, end)
		if err != nil {
			log.Printf("Failed to read archived bars for %s: %v", ticker, err)
			return nil
		}
		if len(archived) > 0 {
			log.Printf("Serving %d archived bars for %s", len(archived), ticker)
		}
		return archived
	}
	return nil
}

// Fundamentals returns the company key/value snapshot, possibly empty
func (g *Gate) Fundamentals(ctx context.Context, ticker string) models.Fundamentals {
	key := strings.ToUpper(ticker)
	if info, ok := g.fundamentals.Get(key); ok {
		return info
	}

	fetchCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	info, err := g.provider.FetchFundamentals(fetchCtx, ticker)
	if err != nil {
		log.Printf("Failed to fetch fundamentals for %s: %v", ticker, err)
		return nil
	}
	if len(info) > 0 {
		g.fundamentals.Add(key, info)
	}
	return info
}

// Financials returns annual revenue and net income, possibly empty
func (g *Gate) Financials(ctx context.Context, ticker string) []models.FinancialYear {
	key := strings.ToUpper(ticker)
	if years, ok := g.financials.Get(key); ok {
		return years
	}

	fetchCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	years, err := g.provider.FetchFinancials(fetchCtx, ticker)
	if err != nil {
		log.Printf("Failed to fetch financials for %s: %v", ticker, err)
		return nil
	}
	if len(years) > 0 {
		g.financials.Add(key, years)
	}
	return years
}

// Holders returns ownership data, or nil when absent
func (g *Gate) Holders(ctx context.Context, ticker string) *models.Holders {
	key := strings.ToUpper(ticker)
	if h, ok := g.holders.Get(key); ok {
		return h
	}

	fetchCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	h, err := g.provider.FetchHolders(fetchCtx, ticker)
	if err != nil {
		log.Printf("Failed to fetch holders for %s: %v", ticker, err)
		return nil
	}
	if h != nil {
		g.holders.Add(key, h)
	}
	return h
}
