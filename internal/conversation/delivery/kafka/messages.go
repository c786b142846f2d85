package kafka

import (
	"time"

	"sayyes-srv/internal/model"
)

// TopicFunnelEvents - destination topic for conversion funnel analytics
const TopicFunnelEvents = "sayyes.funnel.events"

// FunnelEventMessage - Kafka message for sayyes.funnel.events
type FunnelEventMessage struct {
	ConversationID string      `json:"conversation_id"`
	Event          string      `json:"event"`
	Stage          model.Stage `json:"stage"`
	At             time.Time   `json:"at"`
}
