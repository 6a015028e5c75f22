package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trogers1052/supershares/internal/models"
	"github.com/trogers1052/supershares/internal/portfolio"
)

type mockReader struct {
	messages chan kafka.Message
	closed   bool
	mu       sync.Mutex
}

func newMockReader() *mockReader {
	return &mockReader{messages: make(chan kafka.Message, 10)}
}

func (m *mockReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case msg := <-m.messages:
		return msg, nil
	}
}

func (m *mockReader) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockReader) Config() kafka.ReaderConfig {
	return kafka.ReaderConfig{Topic: "trading.orders"}
}

type mockRawTradeRepo struct {
	mu       sync.Mutex
	trades   []*models.RawTrade
	existErr error
}

func (m *mockRawTradeRepo) CreateRawTrade(ctx context.Context, t *models.RawTrade) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trades = append(m.trades, t)
	return nil
}

func (m *mockRawTradeRepo) RawTradeExistsByOrderID(ctx context.Context, orderID, source string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existErr != nil {
		return false, m.existErr
	}
	for _, t := range m.trades {
		if t.OrderID == orderID && t.Source == source {
			return true, nil
		}
	}
	return false, nil
}

type mockApplier struct {
	mu      sync.Mutex
	applied []portfolio.Transaction
	err     error
	done    chan struct{}
}

func (m *mockApplier) Apply(ctx context.Context, tx portfolio.Transaction) (*models.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done != nil {
		defer func() { m.done <- struct{}{} }()
	}
	if m.err != nil {
		return nil, m.err
	}
	m.applied = append(m.applied, tx)
	return &models.Position{Ticker: tx.Ticker, Quantity: tx.Quantity, AvgPrice: tx.Price}, nil
}

func tradeMessage(t *testing.T, orderID, symbol, side, qty, price, executedAt string) kafka.Message {
	t.Helper()
	event := models.TradeEvent{
		EventType: models.EventTradeDetected,
		Source:    "robinhood",
		Timestamp: time.Now(),
		Data: models.TradeData{
			OrderID:      orderID,
			Symbol:       symbol,
			Side:         side,
			Quantity:     qty,
			AveragePrice: price,
		},
	}
	if executedAt != "" {
		event.Data.ExecutedAt = &executedAt
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(symbol), Value: data}
}

func TestTradeConsumer_ProcessBuy(t *testing.T) {
	repo := &mockRawTradeRepo{}
	applier := &mockApplier{}
	c := &TradeConsumer{reader: newMockReader(), repo: repo, portfolio: applier}

	msg := tradeMessage(t, "ord-1", "aapl", "buy", "10", "150.25", "2024-03-01T15:30:00Z")
	require.NoError(t, c.processMessage(context.Background(), msg))

	require.Len(t, applier.applied, 1)
	tx := applier.applied[0]
	assert.Equal(t, "AAPL", tx.Ticker)
	assert.True(t, tx.Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, tx.Price.Equal(decimal.RequireFromString("150.25")))

	require.Len(t, repo.trades, 1)
	assert.Equal(t, "ord-1", repo.trades[0].OrderID)
	assert.Equal(t, "robinhood", repo.trades[0].Source)
	assert.Equal(t, models.TradeSideBuy, repo.trades[0].Side)
	assert.True(t, repo.trades[0].ExecutedAt.Equal(time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)))
}

func TestTradeConsumer_SellIsNegative(t *testing.T) {
	applier := &mockApplier{}
	c := &TradeConsumer{reader: newMockReader(), portfolio: applier}

	require.NoError(t, c.processMessage(context.Background(), tradeMessage(t, "ord-2", "MSFT", "SELL", "2.5", "400", "")))

	require.Len(t, applier.applied, 1)
	assert.True(t, applier.applied[0].Quantity.Equal(decimal.RequireFromString("-2.5")))
}

func TestTradeConsumer_SkipsDuplicates(t *testing.T) {
	repo := &mockRawTradeRepo{}
	applier := &mockApplier{}
	c := &TradeConsumer{reader: newMockReader(), repo: repo, portfolio: applier}

	msg := tradeMessage(t, "ord-3", "NVDA", "BUY", "1", "900", "")
	require.NoError(t, c.processMessage(context.Background(), msg))
	require.NoError(t, c.processMessage(context.Background(), msg))

	assert.Len(t, applier.applied, 1)
	assert.Len(t, repo.trades, 1)
}

func TestTradeConsumer_DuplicateCheckError(t *testing.T) {
	repo := &mockRawTradeRepo{existErr: errors.New("db down")}
	applier := &mockApplier{}
	c := &TradeConsumer{reader: newMockReader(), repo: repo, portfolio: applier}

	err := c.processMessage(context.Background(), tradeMessage(t, "ord-4", "NVDA", "BUY", "1", "900", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
	assert.Empty(t, applier.applied)
}

func TestTradeConsumer_ApplyErrorNotRecorded(t *testing.T) {
	repo := &mockRawTradeRepo{}
	applier := &mockApplier{err: portfolio.ErrInvalidQuantity}
	c := &TradeConsumer{reader: newMockReader(), repo: repo, portfolio: applier}

	err := c.processMessage(context.Background(), tradeMessage(t, "ord-5", "TSLA", "SELL", "1", "200", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, portfolio.ErrInvalidQuantity)
	assert.Empty(t, repo.trades)
}

func TestTradeConsumer_IgnoresOtherEvents(t *testing.T) {
	applier := &mockApplier{}
	c := &TradeConsumer{reader: newMockReader(), portfolio: applier}

	data, err := json.Marshal(models.SignalEvent{EventType: models.EventSignalComputed, Ticker: "AAPL"})
	require.NoError(t, err)

	require.NoError(t, c.processMessage(context.Background(), kafka.Message{Value: data}))
	assert.Empty(t, applier.applied)
}

func TestTradeConsumer_RejectsMalformed(t *testing.T) {
	c := &TradeConsumer{reader: newMockReader(), portfolio: &mockApplier{}}
	ctx := context.Background()

	tests := []struct {
		name string
		msg  kafka.Message
	}{
		{"invalid json", kafka.Message{Value: []byte("{not json")}},
		{"missing symbol", tradeMessage(t, "o", "", "BUY", "1", "1", "")},
		{"bad quantity", tradeMessage(t, "o", "AAPL", "BUY", "abc", "1", "")},
		{"zero quantity", tradeMessage(t, "o", "AAPL", "BUY", "0", "1", "")},
		{"bad price", tradeMessage(t, "o", "AAPL", "BUY", "1", "x", "")},
		{"bad side", tradeMessage(t, "o", "AAPL", "HOLD", "1", "1", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.processMessage(ctx, tt.msg))
		})
	}
}

func TestTradeConsumer_StartAndShutdown(t *testing.T) {
	reader := newMockReader()
	applier := &mockApplier{done: make(chan struct{}, 1)}
	c := &TradeConsumer{reader: reader, portfolio: applier}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Start(ctx) }()

	reader.messages <- tradeMessage(t, "ord-6", "AMZN", "BUY", "3", "180", "")

	select {
	case <-applier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("trade was not applied")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}

	reader.mu.Lock()
	defer reader.mu.Unlock()
	assert.True(t, reader.closed)
}

// A real sequence of broker fills replayed through the portfolio manager.
// Positions sold down to zero are removed; four remain open.
func TestTradeConsumer_ProductionTradeSequence(t *testing.T) {
	store := portfolio.NewFileStore(filepath.Join(t.TempDir(), "portfolio.json"))
	manager := portfolio.NewManager(store)
	c := &TradeConsumer{reader: newMockReader(), repo: &mockRawTradeRepo{}, portfolio: manager}
	ctx := context.Background()

	fills := []struct{ id, symbol, side, qty, price, at string }{
		{"1", "B", "BUY", "2.189621", "45.67", "2025-12-19T15:00:00Z"},
		{"2", "B", "BUY", "2.268345", "44.09", "2025-12-22T15:00:00Z"},
		{"3", "WPM", "BUY", "0.74003", "135.1295", "2025-12-23T15:00:00Z"},
		{"4", "LMT", "BUY", "0.182338", "548.44", "2025-12-23T15:10:00Z"},
		{"5", "LMT", "BUY", "0.182453", "548.10", "2025-12-24T15:00:00Z"},
		{"6", "B", "SELL", "4.457966", "46.50", "2026-01-05T15:00:00Z"},
		{"7", "LMT", "BUY", "0.182887", "546.79", "2026-01-05T15:10:00Z"},
		{"8", "AVAV", "BUY", "0.27529", "363.25", "2026-01-06T15:00:00Z"},
		{"9", "LMT", "BUY", "0.03727", "536.62", "2026-01-06T15:10:00Z"},
		{"10", "B", "BUY", "3", "48.10", "2026-01-07T15:00:00Z"},
		{"11", "AVAV", "SELL", "0.27529", "370.00", "2026-01-08T15:00:00Z"},
		{"12", "LMT", "BUY", "0.184223", "542.82", "2026-01-08T15:10:00Z"},
		{"13", "B", "SELL", "3", "47.20", "2026-01-09T15:00:00Z"},
		{"14", "AVAV", "BUY", "0.544959", "366.99", "2026-01-09T15:10:00Z"},
		{"15", "LMT", "SELL", "0.769171", "560.00", "2026-01-12T15:00:00Z"},
		{"16", "AVAV", "BUY", "0.887524", "338.02", "2026-01-12T15:10:00Z"},
		{"17", "WPM", "BUY", "0.740247", "135.09", "2026-01-13T15:00:00Z"},
		{"18", "B", "BUY", "2.061433", "49.81", "2026-01-14T15:00:00Z"},
		{"19", "AVAV", "SELL", "1.432483", "350.00", "2026-01-14T15:10:00Z"},
		{"20", "FCX", "BUY", "1.70532", "58.64", "2026-01-15T15:00:00Z"},
		{"21", "PPLT", "BUY", "0.62561", "210.04", "2026-01-15T15:10:00Z"},
	}

	for _, f := range fills {
		require.NoError(t, c.processMessage(ctx, tradeMessage(t, f.id, f.symbol, f.side, f.qty, f.price, f.at)), "fill %s", f.id)
	}

	positions, err := manager.Positions(ctx)
	require.NoError(t, err)

	bySymbol := make(map[string]models.Position)
	for _, p := range positions {
		bySymbol[p.Ticker] = p
	}
	require.Len(t, bySymbol, 4)
	assert.NotContains(t, bySymbol, "LMT")
	assert.NotContains(t, bySymbol, "AVAV")

	assert.Equal(t, "2.061433", bySymbol["B"].Quantity.String())
	assert.Equal(t, "49.81", bySymbol["B"].AvgPrice.StringFixed(2))
	assert.Equal(t, "1.480277", bySymbol["WPM"].Quantity.String())
	assert.Equal(t, "135.11", bySymbol["WPM"].AvgPrice.StringFixed(2))
	assert.Equal(t, "1.70532", bySymbol["FCX"].Quantity.String())
	assert.Equal(t, "0.62561", bySymbol["PPLT"].Quantity.String())
	assert.Equal(t, "210.04", bySymbol["PPLT"].AvgPrice.StringFixed(2))
}
