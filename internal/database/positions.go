package database

import (
	"context"
	"fmt"
	"time"

	"github.com/trogers1052/supershares/internal/models"
)

// ReplaceAllPositions atomically replaces the stored portfolio with positions
func (db *DB) ReplaceAllPositions(ctx context.Context, positions []models.Position) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM positions`); err != nil {
		return fmt.Errorf("failed to delete existing positions: %w", err)
	}

	now := time.Now()
	for _, p := range positions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO positions (ticker, quantity, avg_price, updated_at)
			VALUES ($1, $2, $3, $4)
		`, p.Ticker, p.Quantity, p.AvgPrice, now)
		if err != nil {
			return fmt.Errorf("failed to insert position %s: %w", p.Ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAllPositions retrieves every stored position ordered by ticker
func (db *DB) GetAllPositions(ctx context.Context) ([]models.Position, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT ticker, quantity, avg_price
		FROM positions
		ORDER BY ticker ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	defer rows.Close()

	var positions []models.Position
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(&p.Ticker, &p.Quantity, &p.AvgPrice); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}

	return positions, nil
}
