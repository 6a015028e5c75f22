package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trogers1052/supershares/internal/api"
	"github.com/trogers1052/supershares/internal/config"
	"github.com/trogers1052/supershares/internal/kafka"
	"github.com/trogers1052/supershares/internal/session"
	"github.com/trogers1052/supershares/internal/signals"
	"github.com/trogers1052/supershares/internal/universe"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API, the background universe refresh and, when Kafka is enabled, the trade consumer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := config.Load()
		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		var producer *kafka.Producer
		if cfg.Kafka.Enabled {
			producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.SignalTopic)
			defer producer.Close()

			var repo kafka.RawTradeRepository
			if a.db != nil {
				repo = a.db
			}
			consumer := kafka.NewTradeConsumer(cfg.Kafka.Brokers, cfg.Kafka.TradeTopic, cfg.Kafka.GroupID, repo, a.portfolio)
			go func() {
				if err := consumer.Start(ctx); err != nil {
					log.Printf("Trade consumer stopped: %v", err)
				}
			}()
		}

		go refreshLoop(ctx, a, producer)

		var archive api.Archive
		if a.db != nil {
			archive = a.db
		}
		handler := api.NewHandler(a.gate, a.scorer, a.portfolio, archive, session.NewStore(cfg.Server.SessionLimit), cfg.Scoring.LookbackDays)
		srv := &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           api.SetupRoutes(handler),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("Starting server on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// refreshLoop re-scores the whole universe on the configured interval. This
// keeps the series caches warm and, with a producer, publishes signal events.
func refreshLoop(ctx context.Context, a *app, producer *kafka.Producer) {
	interval := a.cfg.Scoring.RefreshInterval
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		refresh(ctx, a, producer)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func refresh(ctx context.Context, a *app, producer *kafka.Producer) {
	profile := signals.ProfileFor(a.cfg.Scoring.Profile)
	rows := a.scorer.ScoreUniverse(ctx, universe.All(), a.cfg.Scoring.LookbackDays, profile)
	if ctx.Err() != nil {
		return
	}
	log.Printf("Refreshed universe: %d instruments scored", len(rows))

	if a.db != nil && a.cfg.Database.RetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -a.cfg.Database.RetentionDays)
		if n, err := a.db.DeletePriceDataOlderThan(ctx, cutoff); err != nil {
			log.Printf("Error pruning price archive: %v", err)
		} else if n > 0 {
			log.Printf("Pruned %d archived bars older than %s", n, cutoff.Format("2006-01-02"))
		}
	}

	if producer == nil {
		return
	}
	if err := producer.PublishSignals(ctx, rows, profile.Name); err != nil {
		log.Printf("Error publishing signals: %v", err)
	}
}
