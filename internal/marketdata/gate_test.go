package marketdata

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/trogers1052/supershares/internal/models"
)

type fakeProvider struct {
	mu           sync.Mutex
	series       map[string][]models.Bar
	err          error
	block        bool
	started      chan struct{}
	release      chan struct{}
	seriesCalls  int32
	infoCalls    int32
	fundamentals models.Fundamentals
}

func (f *fakeProvider) FetchSeries(ctx context.Context, ticker string, _, _ time.Time) ([]models.Bar, error) {
	atomic.AddInt32(&f.seriesCalls, 1)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.release != nil {
		f.started <- struct{}{}
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.series[ticker], nil
}

func (f *fakeProvider) FetchFundamentals(context.Context, string) (models.Fundamentals, error) {
	atomic.AddInt32(&f.infoCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.fundamentals, nil
}

func (f *fakeProvider) FetchFinancials(context.Context, string) ([]models.FinancialYear, error) {
	return nil, f.err
}

func (f *fakeProvider) FetchHolders(context.Context, string) (*models.Holders, error) {
	return nil, f.err
}

type fakeArchive struct {
	stored  map[string][]models.Bar
	readErr error
}

func (a *fakeArchive) CreatePriceDataBatch(_ context.Context, symbol string, bars []models.Bar) error {
	if a.stored == nil {
		a.stored = make(map[string][]models.Bar)
	}
	a.stored[symbol] = bars
	return nil
}

func (a *fakeArchive) GetPriceDataRange(_ context.Context, symbol string, _, _ time.Time) ([]models.Bar, error) {
	return a.stored[symbol], a.readErr
}

func sampleBars(n int) []models.Bar {
	bars := make([]models.Bar, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = models.Bar{Date: start.AddDate(0, 0, i), Open: 10, High: 11, Low: 9, Close: 10, Volume: 100}
	}
	return bars
}

var (
	gateStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gateEnd   = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func TestGate_Series(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated requests hit the LRU", func(t *testing.T) {
		p := &fakeProvider{series: map[string][]models.Bar{"AAPL": sampleBars(3)}}
		g := NewGate(p, GateConfig{})

		assert.Len(t, g.Series(ctx, "AAPL", gateStart, gateEnd), 3)
		assert.Len(t, g.Series(ctx, "AAPL", gateStart, gateEnd), 3)
		assert.Equal(t, int32(1), p.seriesCalls)

		g.Series(ctx, "AAPL", gateStart, gateEnd.AddDate(0, 0, 1))
		assert.Equal(t, int32(2), p.seriesCalls, "different range is a different key")
	})

	t.Run("least recently used entry is evicted", func(t *testing.T) {
		p := &fakeProvider{series: map[string][]models.Bar{"A": sampleBars(1), "B": sampleBars(1), "C": sampleBars(1)}}
		g := NewGate(p, GateConfig{SeriesCacheSize: 2})

		g.Series(ctx, "A", gateStart, gateEnd)
		g.Series(ctx, "B", gateStart, gateEnd)
		g.Series(ctx, "A", gateStart, gateEnd)
		g.Series(ctx, "C", gateStart, gateEnd)
		assert.Equal(t, int32(3), p.seriesCalls)

		g.Series(ctx, "A", gateStart, gateEnd)
		assert.Equal(t, int32(3), p.seriesCalls, "A was recently used")
		g.Series(ctx, "B", gateStart, gateEnd)
		assert.Equal(t, int32(4), p.seriesCalls, "B was evicted")
	})

	t.Run("provider errors become empty and are not cached", func(t *testing.T) {
		p := &fakeProvider{err: errors.New("connection reset")}
		g := NewGate(p, GateConfig{})

		assert.Empty(t, g.Series(ctx, "AAPL", gateStart, gateEnd))
		assert.Empty(t, g.Series(ctx, "AAPL", gateStart, gateEnd))
		assert.Equal(t, int32(2), p.seriesCalls)
	})

	t.Run("timeout maps to empty", func(t *testing.T) {
		p := &fakeProvider{block: true}
		g := NewGate(p, GateConfig{Timeout: 20 * time.Millisecond})

		done := make(chan []models.Bar)
		go func() { done <- g.Series(ctx, "SLOW", gateStart, gateEnd) }()

		select {
		case bars := <-done:
			assert.Empty(t, bars)
		case <-time.After(2 * time.Second):
			t.Fatal("gate did not honour its timeout")
		}
	})

	t.Run("shared load outlives a cancelled caller", func(t *testing.T) {
		p := &fakeProvider{
			series:  map[string][]models.Bar{"AAPL": sampleBars(3)},
			started: make(chan struct{}, 1),
			release: make(chan struct{}),
		}
		g := NewGate(p, GateConfig{})

		callerCtx, cancel := context.WithCancel(ctx)
		first := make(chan []models.Bar, 1)
		go func() { first <- g.Series(callerCtx, "AAPL", gateStart, gateEnd) }()
		<-p.started

		second := make(chan []models.Bar, 1)
		go func() { second <- g.Series(ctx, "AAPL", gateStart, gateEnd) }()

		cancel()
		close(p.release)

		for _, ch := range []chan []models.Bar{first, second} {
			select {
			case bars := <-ch:
				assert.Len(t, bars, 3)
			case <-time.After(2 * time.Second):
				t.Fatal("series load did not finish")
			}
		}
		assert.Equal(t, int32(1), p.seriesCalls)
	})

	t.Run("successful fetches are archived", func(t *testing.T) {
		archive := &fakeArchive{}
		p := &fakeProvider{series: map[string][]models.Bar{"MSFT": sampleBars(5)}}
		g := NewGate(p, GateConfig{Archive: archive})

		g.Series(ctx, "MSFT", gateStart, gateEnd)
		assert.Len(t, archive.stored["MSFT"], 5)
	})

	t.Run("archive serves when provider has nothing", func(t *testing.T) {
		archive := &fakeArchive{stored: map[string][]models.Bar{"MSFT": sampleBars(4)}}
		p := &fakeProvider{err: errors.New("rate limited")}
		g := NewGate(p, GateConfig{Archive: archive})

		assert.Len(t, g.Series(ctx, "MSFT", gateStart, gateEnd), 4)
	})

	t.Run("archive read failure maps to empty", func(t *testing.T) {
		archive := &fakeArchive{readErr: errors.New("db down")}
		g := NewGate(&fakeProvider{}, GateConfig{Archive: archive})

		assert.Empty(t, g.Series(ctx, "MSFT", gateStart, gateEnd))
	})
}

func TestGate_RedisLayer(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewRedisCache(client, time.Hour)
	p := &fakeProvider{series: map[string][]models.Bar{"NVDA": sampleBars(2)}}

	first := NewGate(p, GateConfig{Cache: cache})
	first.Series(ctx, "NVDA", gateStart, gateEnd)
	assert.True(t, mr.Exists(seriesKeyPrefix+SeriesKey("NVDA", gateStart, gateEnd)))

	second := NewGate(p, GateConfig{Cache: cache})
	bars := second.Series(ctx, "NVDA", gateStart, gateEnd)
	assert.Len(t, bars, 2)
	assert.Equal(t, int32(1), p.seriesCalls, "second gate is served from redis")
}

func TestGate_Fundamentals(t *testing.T) {
	ctx := context.Background()

	t.Run("cached after first success", func(t *testing.T) {
		p := &fakeProvider{fundamentals: models.Fundamentals{"sector": "Technology"}}
		g := NewGate(p, GateConfig{})

		assert.Equal(t, "Technology", g.Fundamentals(ctx, "aapl")["sector"])
		assert.Equal(t, "Technology", g.Fundamentals(ctx, "AAPL")["sector"])
		assert.Equal(t, int32(1), p.infoCalls)
	})

	t.Run("failures are absent", func(t *testing.T) {
		g := NewGate(&fakeProvider{err: errors.New("boom")}, GateConfig{})

		assert.Empty(t, g.Fundamentals(ctx, "AAPL"))
		assert.Empty(t, g.Financials(ctx, "AAPL"))
		assert.Nil(t, g.Holders(ctx, "AAPL"))
	})
}
