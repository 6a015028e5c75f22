package main

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/trogers1052/supershares/internal/config"
	"github.com/trogers1052/supershares/internal/database"
	"github.com/trogers1052/supershares/internal/marketdata"
	"github.com/trogers1052/supershares/internal/portfolio"
	"github.com/trogers1052/supershares/internal/scoring"
)

// app holds the wired components shared by the commands
type app struct {
	cfg       *config.Config
	db        *database.DB
	redis     *redis.Client
	gate      *marketdata.Gate
	portfolio *portfolio.Manager
	scorer    *scoring.Scorer
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	if cfg.Database.Enabled {
		db, err := database.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
		log.Println("Connected to PostgreSQL")
	}

	gateCfg := marketdata.GateConfig{
		SeriesCacheSize:       cfg.MarketData.SeriesCacheSize,
		FundamentalsCacheSize: cfg.MarketData.FundamentalsCacheSize,
		Timeout:               cfg.MarketData.Timeout,
	}
	if a.db != nil {
		gateCfg.Archive = a.db
	}

	if cfg.Redis.Enabled {
		client, err := marketdata.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("Warning: redis unavailable, continuing without shared cache: %v", err)
		} else {
			a.redis = client
			gateCfg.Cache = marketdata.NewRedisCache(client, cfg.Redis.TTL)
			log.Printf("Connected to Redis at %s", cfg.Redis.Addr)
		}
	}

	provider := marketdata.NewYahooProvider(cfg.MarketData.BaseURL, cfg.MarketData.Timeout)
	a.gate = marketdata.NewGate(provider, gateCfg)
	a.scorer = scoring.NewScorer(a.gate, cfg.Scoring.Workers)

	store, err := a.portfolioStore()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.portfolio = portfolio.NewManager(store)

	return a, nil
}

func (a *app) portfolioStore() (portfolio.Store, error) {
	switch a.cfg.Portfolio.Store {
	case "", "file":
		return portfolio.NewFileStore(a.cfg.Portfolio.Path), nil
	case "postgres":
		if a.db == nil {
			return nil, fmt.Errorf("portfolio store postgres requires DB_ENABLED=true")
		}
		return portfolio.NewPostgresStore(a.db), nil
	default:
		return nil, fmt.Errorf("unknown portfolio store: %s", a.cfg.Portfolio.Store)
	}
}

// Close releases the database and redis connections
func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("Error closing redis: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
}
