package marketdata

import (
	"context"
	"time"

	"github.com/trogers1052/supershares/internal/models"
)

// Provider is an upstream source of market data. Implementations may fail;
// the Gate normalises every failure to an empty result.
type Provider interface {
	FetchSeries(ctx context.Context, ticker string, start, end time.Time) ([]models.Bar, error)
	FetchFundamentals(ctx context.Context, ticker string) (models.Fundamentals, error)
	FetchFinancials(ctx context.Context, ticker string) ([]models.FinancialYear, error)
	FetchHolders(ctx context.Context, ticker string) (*models.Holders, error)
}

// SeriesCache is a shared second-level cache of daily bar series
type SeriesCache interface {
	GetSeries(ctx context.Context, key string) ([]models.Bar, bool, error)
	SetSeries(ctx context.Context, key string, bars []models.Bar) error
}

// BarArchive stores fetched bars and serves them when the provider is unavailable
type BarArchive interface {
	CreatePriceDataBatch(ctx context.Context, symbol string, bars []models.Bar) error
	GetPriceDataRange(ctx context.Context, symbol string, startDate, endDate time.Time) ([]models.Bar, error)
}
