package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/trogers1052/supershares/internal/models"
	"github.com/trogers1052/supershares/internal/portfolio"
)

// RawTradeRepository records applied trades so redelivered events are skipped
type RawTradeRepository interface {
	CreateRawTrade(ctx context.Context, t *models.RawTrade) error
	RawTradeExistsByOrderID(ctx context.Context, orderID, source string) (bool, error)
}

// PortfolioApplier applies a validated transaction to the held positions
type PortfolioApplier interface {
	Apply(ctx context.Context, tx portfolio.Transaction) (*models.Position, error)
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
	Config() kafka.ReaderConfig
}

// TradeConsumer applies broker trade events to the portfolio.
// BUY adds to a position at a weighted average price, SELL reduces it.
type TradeConsumer struct {
	reader    messageReader
	repo      RawTradeRepository
	portfolio PortfolioApplier
}

// NewTradeConsumer creates a consumer for trade events. repo may be nil, in
// which case events are applied without duplicate detection.
func NewTradeConsumer(brokers []string, topic, groupID string, repo RawTradeRepository, p PortfolioApplier) *TradeConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: time.Second,
	})

	return &TradeConsumer{
		reader:    reader,
		repo:      repo,
		portfolio: p,
	}
}

// Start consumes messages until ctx is cancelled, then closes the reader
func (c *TradeConsumer) Start(ctx context.Context) error {
	log.Printf("Starting Kafka trade consumer for topic: %s", c.reader.Config().Topic)

	for {
		select {
		case <-ctx.Done():
			log.Println("Kafka trade consumer shutting down...")
			return c.reader.Close()
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return c.reader.Close()
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				log.Printf("Error processing message: %v", err)
			}
		}
	}
}

func (c *TradeConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var event models.TradeEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal trade event: %w", err)
	}

	if event.EventType != models.EventTradeDetected {
		log.Printf("Ignoring event type: %s", event.EventType)
		return nil
	}

	dedupe := c.repo != nil && event.Data.OrderID != ""
	if dedupe {
		exists, err := c.repo.RawTradeExistsByOrderID(ctx, event.Data.OrderID, event.Source)
		if err != nil {
			return fmt.Errorf("failed to check for duplicate trade: %w", err)
		}
		if exists {
			log.Printf("Trade %s from %s already applied, skipping", event.Data.OrderID, event.Source)
			return nil
		}
	}

	trade, err := convertEventToRawTrade(event)
	if err != nil {
		return fmt.Errorf("failed to convert trade event: %w", err)
	}

	pos, err := c.portfolio.Apply(ctx, portfolio.Transaction{
		Ticker:   trade.Symbol,
		Quantity: trade.SignedQuantity(),
		Price:    trade.Price,
	})
	if err != nil {
		return fmt.Errorf("failed to apply trade %s: %w", trade.OrderID, err)
	}

	if dedupe {
		if err := c.repo.CreateRawTrade(ctx, trade); err != nil {
			return fmt.Errorf("failed to record trade %s: %w", trade.OrderID, err)
		}
	}

	if pos == nil {
		log.Printf("Applied %s %s %s @ %s: position closed", trade.Side, trade.Quantity, trade.Symbol, trade.Price)
	} else {
		log.Printf("Applied %s %s %s @ %s: now %s @ %s",
			trade.Side, trade.Quantity, trade.Symbol, trade.Price, pos.Quantity, pos.AvgPrice.StringFixed(4))
	}
	return nil
}

func convertEventToRawTrade(event models.TradeEvent) (*models.RawTrade, error) {
	data := event.Data

	if strings.TrimSpace(data.Symbol) == "" {
		return nil, fmt.Errorf("missing symbol")
	}

	quantity, err := decimal.NewFromString(data.Quantity)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %s: %w", data.Quantity, err)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("invalid quantity %s: must be positive", data.Quantity)
	}

	price, err := decimal.NewFromString(data.AveragePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid price %s: %w", data.AveragePrice, err)
	}

	side := strings.ToUpper(data.Side)
	if side != models.TradeSideBuy && side != models.TradeSideSell {
		return nil, fmt.Errorf("invalid trade side: %s", data.Side)
	}

	executedAt := time.Now()
	if data.ExecutedAt != nil && *data.ExecutedAt != "" {
		if t, err := time.Parse(time.RFC3339, *data.ExecutedAt); err == nil {
			executedAt = t
		} else if t, err := time.Parse("2006-01-02T15:04:05", *data.ExecutedAt); err == nil {
			executedAt = t
		}
	}

	return &models.RawTrade{
		OrderID:    data.OrderID,
		Source:     event.Source,
		Symbol:     strings.ToUpper(strings.TrimSpace(data.Symbol)),
		Side:       side,
		Quantity:   quantity,
		Price:      price,
		ExecutedAt: executedAt,
	}, nil
}
