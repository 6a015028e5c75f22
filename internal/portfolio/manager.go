package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/trogers1052/supershares/internal/models"
)

// Validation errors returned before any mutation
var (
	ErrInvalidTicker   = errors.New("invalid ticker")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid price")
)

// Transaction is a validated buy (positive quantity) or sell (negative quantity)
type Transaction struct {
	Ticker   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// ParseTransaction validates raw user input into a Transaction
func ParseTransaction(ticker, qty, price string) (Transaction, error) {
	q, err := decimal.NewFromString(strings.TrimSpace(qty))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, qty)
	}
	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	tx := Transaction{Ticker: ticker, Quantity: q, Price: p}
	if err := tx.validate(); err != nil {
		return Transaction{}, err
	}
	tx.Ticker = normalize(ticker)
	return tx, nil
}

func (t Transaction) validate() error {
	if normalize(t.Ticker) == "" {
		return ErrInvalidTicker
	}
	if t.Quantity.IsZero() {
		return fmt.Errorf("%w: zero", ErrInvalidQuantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, t.Price)
	}
	return nil
}

func normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Manager applies transactions to a Store. Load-modify-save cycles are serialised.
type Manager struct {
	mu    sync.Mutex
	store Store
}

// NewManager creates a portfolio manager over store
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// AddTransaction parses and applies a transaction from raw input
func (m *Manager) AddTransaction(ctx context.Context, ticker, qty, price string) (*models.Position, error) {
	tx, err := ParseTransaction(ticker, qty, price)
	if err != nil {
		return nil, err
	}
	return m.Apply(ctx, tx)
}

// Apply merges tx into the portfolio using a weighted average price.
// The returned position is nil when the holding was closed.
func (m *Manager) Apply(ctx context.Context, tx Transaction) (*models.Position, error) {
	if err := tx.validate(); err != nil {
		return nil, err
	}
	ticker := normalize(tx.Ticker)

	m.mu.Lock()
	defer m.mu.Unlock()

	positions, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	idx := -1
	for i, p := range positions {
		if p.Ticker == ticker {
			idx = i
			break
		}
	}

	var result *models.Position
	switch {
	case idx >= 0:
		existing := positions[idx]
		total := existing.Quantity.Add(tx.Quantity)
		if total.IsPositive() {
			cost := existing.Invested().Add(tx.Quantity.Mul(tx.Price))
			positions[idx].Quantity = total
			positions[idx].AvgPrice = cost.Div(total)
			p := positions[idx]
			result = &p
		} else {
			positions = append(positions[:idx], positions[idx+1:]...)
		}
	case tx.Quantity.IsPositive():
		p := models.Position{Ticker: ticker, Quantity: tx.Quantity, AvgPrice: tx.Price}
		positions = append(positions, p)
		result = &p
	default:
		return nil, fmt.Errorf("%w: cannot sell %s, no position held", ErrInvalidQuantity, ticker)
	}

	if err := m.store.Save(ctx, positions); err != nil {
		return nil, fmt.Errorf("failed to save portfolio: %w", err)
	}
	return result, nil
}

// Remove drops a holding regardless of quantity
func (m *Manager) Remove(ctx context.Context, ticker string) error {
	ticker = normalize(ticker)

	m.mu.Lock()
	defer m.mu.Unlock()

	positions, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load portfolio: %w", err)
	}

	kept := positions[:0]
	for _, p := range positions {
		if p.Ticker != ticker {
			kept = append(kept, p)
		}
	}

	if err := m.store.Save(ctx, kept); err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}

// Positions returns the current holdings
func (m *Manager) Positions(ctx context.Context) ([]models.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	positions, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	return positions, nil
}

// Tickers returns the set of held tickers
func (m *Manager) Tickers(ctx context.Context) (map[string]bool, error) {
	positions, err := m.Positions(ctx)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(positions))
	for _, p := range positions {
		owned[p.Ticker] = true
	}
	return owned, nil
}
