package transfer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

const transferCompletedSubject = "sessions.transfer.completed"

// Publisher announces finished transfers so downstream services (notifications,
// scheduling) can react to moved inventory.
type Publisher interface {
	PublishTransferCompleted(ctx context.Context, outcome *Outcome) error
}

type natsPublisher struct {
	nc *nats.Conn
}

func NewNatsPublisher(nc *nats.Conn) Publisher {
	return &natsPublisher{nc: nc}
}

func (p *natsPublisher) PublishTransferCompleted(_ context.Context, outcome *Outcome) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal transfer event: %w", err)
	}

	subject := transferCompletedSubject + "." + outcome.TransferID
	if err := p.nc.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish transfer event: %w", err)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when NATS is disabled in config.
func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) PublishTransferCompleted(context.Context, *Outcome) error { return nil }
