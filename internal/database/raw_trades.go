package database

import (
	"context"
	"fmt"
	"time"

	"github.com/trogers1052/supershares/internal/models"
)

// CreateRawTrade records an applied broker trade
func (db *DB) CreateRawTrade(ctx context.Context, t *models.RawTrade) error {
	query := `
		INSERT INTO raw_trades (order_id, source, symbol, side, quantity, price, executed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	now := time.Now()

	err := db.conn.QueryRowContext(ctx, query,
		t.OrderID, t.Source, t.Symbol, t.Side, t.Quantity, t.Price, t.ExecutedAt, now,
	).Scan(&t.ID)

	if err != nil {
		return fmt.Errorf("failed to create raw trade: %w", err)
	}
	t.CreatedAt = now
	return nil
}

// RawTradeExistsByOrderID checks if a trade with the given order_id and source was already recorded
func (db *DB) RawTradeExistsByOrderID(ctx context.Context, orderID, source string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM raw_trades WHERE order_id = $1 AND source = $2)`
	var exists bool
	if err := db.conn.QueryRowContext(ctx, query, orderID, source).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check raw trade existence: %w", err)
	}
	return exists, nil
}

// GetRawTradesBySymbol retrieves the most recent trades for a symbol
func (db *DB) GetRawTradesBySymbol(ctx context.Context, symbol string, limit int) ([]*models.RawTrade, error) {
	query := `
		SELECT id, order_id, source, symbol, side, quantity, price, executed_at, created_at
		FROM raw_trades
		WHERE symbol = $1
		ORDER BY executed_at DESC
		LIMIT $2
	`
	rows, err := db.conn.QueryContext(ctx, query, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw trades: %w", err)
	}
	defer rows.Close()

	var trades []*models.RawTrade
	for rows.Next() {
		var t models.RawTrade
		err := rows.Scan(
			&t.ID, &t.OrderID, &t.Source, &t.Symbol, &t.Side, &t.Quantity, &t.Price, &t.ExecutedAt, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan raw trade: %w", err)
		}
		trades = append(trades, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate raw trades: %w", err)
	}

	return trades, nil
}
