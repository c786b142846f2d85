package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessTurn consumes one user message plus the caller-supplied state
	// and returns the response payload with the updated state. A nil input
	// state starts a fresh conversation.
	ProcessTurn(ctx context.Context, input TurnInput) (TurnOutput, error)
}

// FunnelPublisher pushes funnel events to the analytics pipeline.
// Publishing is best-effort and must never fail a turn.
type FunnelPublisher interface {
	Publish(ctx context.Context, event FunnelEvent) error
}
