package usecase

import (
	"context"
	"strings"

	"sayyes-srv/internal/conversation"
	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/model"
	"sayyes-srv/pkg/util"
)

// handleInitial chats until a style preference lands, then moves to
// collecting info.
func (uc *implUseCase) handleInitial(ctx context.Context, st *model.ConversationState) (stageResult, error) {
	res := stageResult{next: model.StageInitial}
	if st.Preferences.Style != "" {
		res.next = model.StageCollectingInfo
	}

	text, err := uc.generateReply(ctx, st)
	if err != nil {
		return res, err
	}
	res.text = text
	return res, nil
}

// handleCollecting chats while slots accumulate. Two captured slots unlock
// the sneak peek on the following turn.
func (uc *implUseCase) handleCollecting(ctx context.Context, st *model.ConversationState) (stageResult, error) {
	res := stageResult{next: model.StageCollectingInfo}
	if st.InfoCollectedCount >= 2 {
		res.next = model.StageSneakPeek
	}

	text, err := uc.generateReply(ctx, st)
	if err != nil {
		return res, err
	}
	res.text = text
	return res, nil
}

// handleSneakPeek reveals exactly one not-yet-seen category per turn, in
// the fixed order venues, dresses, hairstyles. After the third reveal the
// conversation moves to exploring.
func (uc *implUseCase) handleSneakPeek(ctx context.Context, st *model.ConversationState) (stageResult, error) {
	res := stageResult{next: model.StageSneakPeek}

	var reveal model.Category
	found := false
	for _, c := range model.RevealOrder {
		if !st.SeenCategories.Has(c) {
			reveal = c
			found = true
			break
		}
	}
	if !found {
		res.next = model.StageExploring
		text, err := uc.generateReply(ctx, st)
		if err != nil {
			return res, err
		}
		res.text = text
		return res, nil
	}

	firstReveal := st.SeenCategories.Count() == 0

	out, err := uc.galleryUC.Curate(ctx, gallery.CurateInput{
		Category: reveal,
		Style:    st.Preferences.Style,
		Location: st.Preferences.Location,
	})
	if err != nil {
		return res, err
	}

	st.SeenCategories = st.SeenCategories.Add(reveal)
	if st.SeenCategories.Count() == len(model.RevealOrder) {
		res.next = model.StageExploring
	}

	res.text = out.IntroText
	if firstReveal {
		res.text = conversation.SneakPeekLeadIn + " " + out.IntroText
	}
	carousel := out.Carousel()
	res.carousel = &carousel
	return res, nil
}

// handleExploring serves on-demand carousels and watches for the jump into
// the final conversion ask.
func (uc *implUseCase) handleExploring(ctx context.Context, st *model.ConversationState, lowered string) (stageResult, error) {
	res := stageResult{next: model.StageExploring}

	if containsAny(lowered, []string{"continue planning", "dive into planning"}) {
		st.CTAFlags.SoftCTAShown = true
		if !st.CTAFlags.CTAShown {
			st.CTAFlags.CTAShown = true
			uc.publishFunnel(ctx, st, conversation.EventCTAShown)
		}
		res.next = model.StageFinalCTA
		res.text = conversation.FullCTAText
		res.buttons = append([]string(nil), conversation.FullCTAButtons...)
		return res, nil
	}

	// The seen-set update for a category request is already committed by
	// ProcessTurn before the CTA check; this handler only builds the carousel.
	if category, ok := requestedCategory(lowered); ok {
		out, err := uc.galleryUC.Curate(ctx, gallery.CurateInput{
			Category: category,
			Style:    st.Preferences.Style,
			Location: st.Preferences.Location,
		})
		if err != nil {
			return res, err
		}
		res.text = out.IntroText
		carousel := out.Carousel()
		res.carousel = &carousel
		return res, nil
	}

	text, err := uc.generateReply(ctx, st)
	if err != nil {
		return res, err
	}
	res.text = text
	return res, nil
}

// handleFinalCTA runs the waitlist funnel and lets the user loop back to
// exploring. This stage never terminates the conversation.
func (uc *implUseCase) handleFinalCTA(ctx context.Context, st *model.ConversationState, lowered string) (stageResult, error) {
	res := stageResult{next: model.StageFinalCTA}

	// Precedence: an explicit loop-back wins, then a concrete email, then the
	// generic join intent, so "join: jane@x.com" is treated as the email.
	switch {
	case containsAny(lowered, []string{"continue exploring", "show me more"}):
		res.next = model.StageExploring
		res.text = conversation.KeepExploringText

	case util.LooksLikeEmail(lowered):
		if !st.CTAFlags.EmailCollected {
			st.CTAFlags.EmailCollected = true
			uc.publishFunnel(ctx, st, conversation.EventEmailCollected)
		}
		res.text = conversation.EmailThanksText

	case containsAny(lowered, []string{"join", "waitlist"}):
		res.text = conversation.EmailPromptText

	default:
		text, err := uc.generateReply(ctx, st)
		if err != nil {
			return res, err
		}
		res.text = text
	}

	return res, nil
}

// requestedCategory does basic keyword matching on the user message.
func requestedCategory(lowered string) (model.Category, bool) {
	switch {
	case strings.Contains(lowered, "venue"):
		return model.CategoryVenues, true
	case strings.Contains(lowered, "dress"):
		return model.CategoryDresses, true
	case strings.Contains(lowered, "hairstyle"), strings.Contains(lowered, "hair"):
		return model.CategoryHairstyles, true
	case strings.Contains(lowered, "cake"):
		return model.CategoryCakes, true
	}
	return "", false
}
