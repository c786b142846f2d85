package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sayyes-srv/internal/conversation"
	"sayyes-srv/internal/model"
)

// ProcessTurn runs one turn of the progression engine: extract a slot,
// consult the CTA policy, then let the current stage produce the response.
// Collaborator failures never escape; they degrade to a fixed apology with
// the caller's state preserved.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input conversation.TurnInput) (conversation.TurnOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return conversation.TurnOutput{}, conversation.ErrMissingMessage
	}

	st := input.State.Clone()
	if st == nil {
		st = newState()
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	if !st.Stage.Valid() {
		st.Stage = model.StageInitial
	}

	st.AppendTurn(model.RoleUser, input.Message)
	lowered := strings.ToLower(input.Message)

	// Slot capture and category requests commit even when a CTA suppresses
	// the stage response.
	if extract(st.Stage, input.Message, &st.Preferences) && st.Stage == model.StageCollectingInfo {
		st.InfoCollectedCount++
	}
	if st.Stage == model.StageExploring {
		if category, ok := requestedCategory(lowered); ok && category != model.CategoryCakes {
			st.SeenCategories = st.SeenCategories.Add(category)
		}
	}

	// CTA has priority over normal stage output.
	switch evaluateCTA(st.SeenCategories, st.CTAFlags) {
	case ctaSoft:
		st.CTAFlags.SoftCTAShown = true
		uc.publishFunnel(ctx, st, conversation.EventSoftCTAShown)
		st.AppendTurn(model.RoleAssistant, conversation.SoftCTAText)
		return conversation.TurnOutput{
			Text:    conversation.SoftCTAText,
			Buttons: append([]string(nil), conversation.SoftCTAButtons...),
			State:   st,
		}, nil
	case ctaFull:
		st.CTAFlags.CTAShown = true
		st.Stage = model.StageFinalCTA
		uc.publishFunnel(ctx, st, conversation.EventCTAShown)
		st.AppendTurn(model.RoleAssistant, conversation.FullCTAText)
		return conversation.TurnOutput{
			Text:    conversation.FullCTAText,
			Buttons: append([]string(nil), conversation.FullCTAButtons...),
			State:   st,
		}, nil
	}

	res, err := uc.handleStage(ctx, st, lowered)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.ProcessTurn: turn failed at stage %s: %v", st.Stage, err)
		return uc.apologyOutput(input.State, input.Message), nil
	}

	// Stage advances take effect at end of turn: the response the user just
	// got still belongs to the stage the message arrived in.
	st.Stage = res.next
	st.AppendTurn(model.RoleAssistant, res.text)

	return conversation.TurnOutput{
		Text:     res.text,
		Buttons:  res.buttons,
		Carousel: res.carousel,
		State:    st,
	}, nil
}

// stageResult is what one per-stage handler produces.
type stageResult struct {
	text     string
	buttons  []string
	carousel *model.Carousel
	next     model.Stage
}

func (uc *implUseCase) handleStage(ctx context.Context, st *model.ConversationState, lowered string) (stageResult, error) {
	switch st.Stage {
	case model.StageInitial:
		return uc.handleInitial(ctx, st)
	case model.StageCollectingInfo:
		return uc.handleCollecting(ctx, st)
	case model.StageSneakPeek:
		return uc.handleSneakPeek(ctx, st)
	case model.StageExploring:
		return uc.handleExploring(ctx, st, lowered)
	case model.StageFinalCTA:
		return uc.handleFinalCTA(ctx, st, lowered)
	}
	return stageResult{}, fmt.Errorf("handleStage: unknown stage %q", st.Stage)
}

// apologyOutput converts any turn failure into the fixed apology. The
// returned state is the incoming one with only the user message and the
// apology appended, so the conversation stays continuous without partial
// slot or flag mutations.
func (uc *implUseCase) apologyOutput(prior *model.ConversationState, message string) conversation.TurnOutput {
	st := prior.Clone()
	if st == nil {
		st = newState()
	}
	st.AppendTurn(model.RoleUser, message)
	st.AppendTurn(model.RoleAssistant, conversation.ApologyText)
	return conversation.TurnOutput{Text: conversation.ApologyText, State: st}
}

func newState() *model.ConversationState {
	return &model.ConversationState{
		ID:             uuid.New().String(),
		Stage:          model.StageInitial,
		SeenCategories: model.CategorySet{},
	}
}
