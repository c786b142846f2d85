package usecase

import (
	"context"
	"time"

	"sayyes-srv/internal/conversation"
	"sayyes-srv/internal/model"
)

// publishFunnel pushes one funnel event. Best-effort: failures are logged
// and never affect the turn.
func (uc *implUseCase) publishFunnel(ctx context.Context, st *model.ConversationState, event string) {
	if uc.funnel == nil {
		return
	}

	err := uc.funnel.Publish(ctx, conversation.FunnelEvent{
		ConversationID: st.ID,
		Event:          event,
		Stage:          st.Stage,
		At:             time.Now().UTC(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.publishFunnel: publish %s failed: %v", event, err)
	}
}
