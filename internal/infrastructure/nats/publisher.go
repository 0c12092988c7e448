package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

type NatsPublisher struct {
	nc     *nats.Conn
	logger *logger.Logger
}

type OrderCreatedEvent struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	TotalAmount  int    `json:"total_amount"`
	CreatedAt    string `json:"created_at"`
}

func NewNatsPublisher(url string, logger *logger.Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("Pempek Domino Backend"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("Connected to NATS", "url", url)
	return &NatsPublisher{nc: nc, logger: logger}, nil
}

// PublishOrderCreated is best-effort like the chat relay: a single
// publish attempt with no redelivery tracking.
func (p *NatsPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	event := OrderCreatedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount,
		CreatedAt:    order.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := p.nc.Publish("order.created", data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	if err := p.nc.FlushTimeout(2 * time.Second); err != nil {
		return fmt.Errorf("failed to flush NATS connection: %w", err)
	}

	p.logger.Info("Published order.created event", "order_id", order.ID)
	return nil
}

func (p *NatsPublisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
		p.logger.Info("NATS connection closed")
	}
}
