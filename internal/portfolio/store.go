package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/trogers1052/supershares/internal/models"
)

// Store persists the full set of positions
type Store interface {
	Load(ctx context.Context) ([]models.Position, error)
	Save(ctx context.Context, positions []models.Position) error
}

// FileStore keeps positions in a JSON file of {ticker, qty, avg_price} records
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type fileRecord struct {
	Ticker   string      `json:"ticker"`
	Qty      json.Number `json:"qty"`
	AvgPrice json.Number `json:"avg_price"`
}

// Load reads the portfolio file. A missing or unreadable file yields an empty portfolio.
func (s *FileStore) Load(_ context.Context) ([]models.Position, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		log.Printf("Portfolio file %s unreadable, starting empty: %v", s.path, err)
		return nil, nil
	}

	var records []fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Portfolio file %s is corrupt, starting empty: %v", s.path, err)
		return nil, nil
	}

	positions := make([]models.Position, 0, len(records))
	for _, r := range records {
		qty, err := decimal.NewFromString(r.Qty.String())
		if err != nil {
			log.Printf("Skipping %s: invalid qty %q", r.Ticker, r.Qty)
			continue
		}
		avg, err := decimal.NewFromString(r.AvgPrice.String())
		if err != nil {
			log.Printf("Skipping %s: invalid avg_price %q", r.Ticker, r.AvgPrice)
			continue
		}
		positions = append(positions, models.Position{Ticker: r.Ticker, Quantity: qty, AvgPrice: avg})
	}
	return positions, nil
}

// Save writes the portfolio to a temp file and renames it into place
func (s *FileStore) Save(_ context.Context, positions []models.Position) error {
	records := make([]fileRecord, len(positions))
	for i, p := range positions {
		records[i] = fileRecord{
			Ticker:   p.Ticker,
			Qty:      json.Number(p.Quantity.String()),
			AvgPrice: json.Number(p.AvgPrice.String()),
		}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".portfolio-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write portfolio: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync portfolio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close portfolio temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace portfolio file: %w", err)
	}
	return nil
}

// PositionRepository defines the database operations backing PostgresStore
type PositionRepository interface {
	ReplaceAllPositions(ctx context.Context, positions []models.Position) error
	GetAllPositions(ctx context.Context) ([]models.Position, error)
}

// PostgresStore keeps positions in the positions table
type PostgresStore struct {
	repo PositionRepository
}

// NewPostgresStore creates a store over a position repository
func NewPostgresStore(repo PositionRepository) *PostgresStore {
	return &PostgresStore{repo: repo}
}

// Load returns all stored positions
func (s *PostgresStore) Load(ctx context.Context) ([]models.Position, error) {
	return s.repo.GetAllPositions(ctx)
}

// Save replaces the stored positions
func (s *PostgresStore) Save(ctx context.Context, positions []models.Position) error {
	return s.repo.ReplaceAllPositions(ctx, positions)
}
