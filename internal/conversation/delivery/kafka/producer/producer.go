package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"sayyes-srv/internal/conversation"
	kafkaDelivery "sayyes-srv/internal/conversation/delivery/kafka"
)

// Publish publishes one funnel event, keyed by conversation so events of a
// conversation stay ordered within a partition.
func (p *implProducer) Publish(ctx context.Context, event conversation.FunnelEvent) error {
	msg := kafkaDelivery.FunnelEventMessage{
		ConversationID: event.ConversationID,
		Event:          event.Event,
		Stage:          event.Stage,
		At:             event.At,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal funnel event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.ConversationID), body); err != nil {
		return fmt.Errorf("failed to publish funnel event: %w", err)
	}

	p.l.Debugf(ctx, "Published funnel event %s for conversation %s", event.Event, event.ConversationID)
	return nil
}
