package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/trogers1052/supershares/internal/models"
)

// CreatePriceDataBatch upserts daily bars for a symbol in one transaction
func (db *DB) CreatePriceDataBatch(ctx context.Context, symbol string, bars []models.Bar) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO price_data_daily (symbol, date, open, high, low, close, volume, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (symbol, date) DO UPDATE SET
			open = EXCLUDED.open,
			high = EXCLUDED.high,
			low = EXCLUDED.low,
			close = EXCLUDED.close,
			volume = EXCLUDED.volume
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, b := range bars {
		_, err := stmt.ExecContext(ctx, symbol, b.Date, b.Open, b.High, b.Low, b.Close, b.Volume, now)
		if err != nil {
			return fmt.Errorf("failed to insert price data for %s: %w", symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPriceDataRange retrieves bars for a symbol within an inclusive date range, oldest first
func (db *DB) GetPriceDataRange(ctx context.Context, symbol string, startDate, endDate time.Time) ([]models.Bar, error) {
	query := `
		SELECT date, open, high, low, close, volume
		FROM price_data_daily
		WHERE symbol = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	rows, err := db.conn.QueryContext(ctx, query, symbol, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get price data range: %w", err)
	}
	defer rows.Close()

	var bars []models.Bar
	for rows.Next() {
		var b models.Bar
		if err := rows.Scan(&b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan price data: %w", err)
		}
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate price data: %w", err)
	}

	return bars, nil
}

// GetLatestPriceData retrieves the most recent bar for a symbol
func (db *DB) GetLatestPriceData(ctx context.Context, symbol string) (*models.Bar, error) {
	query := `
		SELECT date, open, high, low, close, volume
		FROM price_data_daily
		WHERE symbol = $1
		ORDER BY date DESC
		LIMIT 1
	`
	var b models.Bar
	err := db.conn.QueryRowContext(ctx, query, symbol).Scan(&b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no price data found for %s", symbol)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price data: %w", err)
	}
	return &b, nil
}

// DeletePriceDataBySymbol removes all bars for a symbol
func (db *DB) DeletePriceDataBySymbol(ctx context.Context, symbol string) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM price_data_daily WHERE symbol = $1`, symbol)
	if err != nil {
		return fmt.Errorf("failed to delete price data for %s: %w", symbol, err)
	}
	return nil
}

// DeletePriceDataOlderThan removes bars dated before the given date
func (db *DB) DeletePriceDataOlderThan(ctx context.Context, date time.Time) (int64, error) {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM price_data_daily WHERE date < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old price data: %w", err)
	}
	return result.RowsAffected()
}
