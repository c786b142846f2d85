package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sayyes-srv/internal/conversation"
	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/model"
	"sayyes-srv/pkg/log"
)

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Generate(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeGallery struct {
	err    error
	inputs []gallery.CurateInput
}

func (f *fakeGallery) Curate(_ context.Context, input gallery.CurateInput) (gallery.CurateOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return gallery.CurateOutput{}, f.err
	}
	name := string(input.Category)
	title := strings.ToUpper(name[:1]) + name[1:] + " Collection"
	return gallery.CurateOutput{
		IntroText: "Here are some " + string(input.Category) + "!",
		Title:     title,
		Items: []model.MediaItem{{
			Image:       "https://example.com/item.jpg",
			Title:       "Sample",
			Description: "Sample item",
			Tags:        []string{"Elegant"},
			Buttons:     []string{"Love it", "Share", "Save"},
			ShareURL:    "https://sayyes.ai/share/sample",
		}},
	}, nil
}

type fakeFunnel struct {
	events []conversation.FunnelEvent
	err    error
}

func (f *fakeFunnel) Publish(_ context.Context, event conversation.FunnelEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func newTestUseCase(llm *fakeLLM, g *fakeGallery, funnel *fakeFunnel) conversation.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
	return New(l, llm, g, funnel)
}

func TestProcessTurnValidation(t *testing.T) {
	uc := newTestUseCase(&fakeLLM{reply: "hi"}, &fakeGallery{}, &fakeFunnel{})

	_, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "   "})
	if !errors.Is(err, conversation.ErrMissingMessage) {
		t.Fatalf("expected ErrMissingMessage, got %v", err)
	}
}

func TestProcessTurnInitial(t *testing.T) {
	t.Run("style capture advances to collecting info", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "Love that vibe!"}, &fakeGallery{}, &fakeFunnel{})

		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "I love modern weddings"})
		if err != nil {
			t.Fatal(err)
		}
		if out.State.Stage != model.StageCollectingInfo {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageCollectingInfo)
		}
		if out.State.Preferences.Style != "modern" {
			t.Errorf("Style mismatch: got %q, want %q", out.State.Preferences.Style, "modern")
		}
		if len(out.State.History) != 2 {
			t.Errorf("History length mismatch: got %d, want 2", len(out.State.History))
		}
		if out.State.ID == "" {
			t.Error("fresh state should get an ID")
		}
		if out.Carousel != nil || out.Buttons != nil {
			t.Error("initial stage should return plain text only")
		}
	})

	t.Run("no style keeps the stage", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "Tell me more!"}, &fakeGallery{}, &fakeFunnel{})

		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "hello there"})
		if err != nil {
			t.Fatal(err)
		}
		if out.State.Stage != model.StageInitial {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageInitial)
		}
	})
}

func TestProcessTurnCollecting(t *testing.T) {
	uc := newTestUseCase(&fakeLLM{reply: "Noted!"}, &fakeGallery{}, &fakeFunnel{})

	st := &model.ConversationState{
		Stage:              model.StageCollectingInfo,
		Preferences:        model.Preferences{Style: "modern", Location: "austin"},
		InfoCollectedCount: 1,
	}

	out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{
		Message: "we're expecting about 120 guests",
		State:   st,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.State.Preferences.GuestCount != 120 {
		t.Errorf("GuestCount mismatch: got %d, want 120", out.State.Preferences.GuestCount)
	}
	if out.State.InfoCollectedCount != 2 {
		t.Errorf("InfoCollectedCount mismatch: got %d, want 2", out.State.InfoCollectedCount)
	}
	// The advance lands in the returned state but the reveal waits for the
	// next turn.
	if out.State.Stage != model.StageSneakPeek {
		t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageSneakPeek)
	}
	if out.Carousel != nil {
		t.Error("no carousel expected on the advancing turn")
	}
}

func TestProcessTurnSneakPeek(t *testing.T) {
	t.Run("reveals venues first", func(t *testing.T) {
		g := &fakeGallery{}
		uc := newTestUseCase(&fakeLLM{reply: "x"}, g, &fakeFunnel{})

		st := &model.ConversationState{Stage: model.StageSneakPeek, Preferences: model.Preferences{Style: "modern"}}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "show me", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if !out.State.SeenCategories.Has(model.CategoryVenues) {
			t.Error("venues should be marked seen")
		}
		if out.Carousel == nil {
			t.Fatal("carousel expected")
		}
		if !strings.Contains(out.Carousel.Title, "Venues") {
			t.Errorf("carousel title %q should contain Venues", out.Carousel.Title)
		}
		if len(g.inputs) != 1 || g.inputs[0].Style != "modern" {
			t.Errorf("curator should receive the style preference, got %+v", g.inputs)
		}
		if out.State.Stage != model.StageSneakPeek {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageSneakPeek)
		}
	})

	t.Run("third reveal moves to exploring", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, &fakeFunnel{})

		st := &model.ConversationState{
			Stage:          model.StageSneakPeek,
			SeenCategories: model.CategorySet{}.Add(model.CategoryVenues).Add(model.CategoryDresses),
			CTAFlags:       model.CTAFlags{SoftCTAShown: true},
		}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "next", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if !out.State.SeenCategories.Has(model.CategoryHairstyles) {
			t.Error("hairstyles should be marked seen")
		}
		if out.State.Stage != model.StageExploring {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageExploring)
		}
	})
}

func TestProcessTurnCTA(t *testing.T) {
	t.Run("soft CTA after two categories", func(t *testing.T) {
		funnel := &fakeFunnel{}
		llm := &fakeLLM{reply: "x"}
		uc := newTestUseCase(llm, &fakeGallery{}, funnel)

		st := &model.ConversationState{
			ID:             "conv-1",
			Stage:          model.StageSneakPeek,
			SeenCategories: model.CategorySet{}.Add(model.CategoryVenues).Add(model.CategoryDresses),
		}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "what else?", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if out.Text != conversation.SoftCTAText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
		if len(out.Buttons) != 2 || out.Buttons[0] != "Continue Planning" || out.Buttons[1] != "Show Me More" {
			t.Errorf("Buttons mismatch: got %v", out.Buttons)
		}
		if !out.State.CTAFlags.SoftCTAShown {
			t.Error("SoftCTAShown should flip to true")
		}
		// The stage response is suppressed this turn.
		if out.Carousel != nil {
			t.Error("no carousel expected on a CTA turn")
		}
		if llm.calls != 0 {
			t.Error("no generation expected on a CTA turn")
		}
		if len(funnel.events) != 1 || funnel.events[0].Event != conversation.EventSoftCTAShown {
			t.Errorf("funnel events mismatch: %+v", funnel.events)
		}
		if funnel.events[0].ConversationID != "conv-1" {
			t.Errorf("ConversationID mismatch: got %q", funnel.events[0].ConversationID)
		}
	})

	t.Run("CTA turn still commits the requested category", func(t *testing.T) {
		funnel := &fakeFunnel{}
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, funnel)

		st := &model.ConversationState{
			Stage:          model.StageExploring,
			SeenCategories: model.CategorySet{}.Add(model.CategoryVenues).Add(model.CategoryDresses),
		}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "show me hairstyles", State: st})
		if err != nil {
			t.Fatal(err)
		}
		// The soft prompt suppresses the carousel but not the state update.
		if out.Text != conversation.SoftCTAText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
		if out.Carousel != nil {
			t.Error("no carousel expected on a CTA turn")
		}
		if !out.State.SeenCategories.Has(model.CategoryHairstyles) {
			t.Error("hairstyles request must land in the seen set")
		}
		if !out.State.CTAFlags.SoftCTAShown {
			t.Error("SoftCTAShown should flip to true")
		}
	})

	t.Run("cakes request on a CTA turn stays out of the seen set", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, &fakeFunnel{})

		st := &model.ConversationState{
			Stage:          model.StageExploring,
			SeenCategories: model.CategorySet{}.Add(model.CategoryVenues).Add(model.CategoryDresses),
		}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "show me cakes", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if out.Text != conversation.SoftCTAText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
		if out.State.SeenCategories.Has(model.CategoryCakes) {
			t.Error("cakes must never enter the seen set")
		}
	})

	t.Run("soft CTA never re-emits", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "regular reply"}, &fakeGallery{}, &fakeFunnel{})

		st := &model.ConversationState{
			Stage:          model.StageExploring,
			SeenCategories: model.CategorySet{}.Add(model.CategoryVenues).Add(model.CategoryDresses),
			CTAFlags:       model.CTAFlags{SoftCTAShown: true},
		}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "tell me something", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if out.Text == conversation.SoftCTAText {
			t.Error("soft CTA must be emitted at most once")
		}
	})

	t.Run("full CTA after all three categories", func(t *testing.T) {
		funnel := &fakeFunnel{}
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, funnel)

		st := &model.ConversationState{
			Stage: model.StageExploring,
			SeenCategories: model.CategorySet{}.
				Add(model.CategoryVenues).Add(model.CategoryDresses).Add(model.CategoryHairstyles),
			CTAFlags: model.CTAFlags{SoftCTAShown: true},
		}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "anything else?", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if out.Text != conversation.FullCTAText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
		if len(out.Buttons) != 2 || out.Buttons[0] != "Join the Waitlist" {
			t.Errorf("Buttons mismatch: got %v", out.Buttons)
		}
		if !out.State.CTAFlags.CTAShown {
			t.Error("CTAShown should flip to true")
		}
		if out.State.Stage != model.StageFinalCTA {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageFinalCTA)
		}
		if len(funnel.events) != 1 || funnel.events[0].Event != conversation.EventCTAShown {
			t.Errorf("funnel events mismatch: %+v", funnel.events)
		}
	})
}

func TestProcessTurnExploring(t *testing.T) {
	flags := model.CTAFlags{SoftCTAShown: true, CTAShown: true}
	allSeen := model.CategorySet{}.
		Add(model.CategoryVenues).Add(model.CategoryDresses).Add(model.CategoryHairstyles)

	t.Run("category request returns a carousel", func(t *testing.T) {
		g := &fakeGallery{}
		uc := newTestUseCase(&fakeLLM{reply: "x"}, g, &fakeFunnel{})

		st := &model.ConversationState{Stage: model.StageExploring, SeenCategories: allSeen.Clone(), CTAFlags: flags}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "show me wedding cakes", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if out.Carousel == nil {
			t.Fatal("carousel expected")
		}
		if g.inputs[0].Category != model.CategoryCakes {
			t.Errorf("Category mismatch: got %s", g.inputs[0].Category)
		}
		if out.State.SeenCategories.Has(model.CategoryCakes) {
			t.Error("cakes must never enter the seen set")
		}
	})

	t.Run("continue planning jumps to the final CTA", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, &fakeFunnel{})

		st := &model.ConversationState{Stage: model.StageExploring, SeenCategories: allSeen.Clone(), CTAFlags: flags}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "let's continue planning", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if out.State.Stage != model.StageFinalCTA {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageFinalCTA)
		}
		if out.Text != conversation.FullCTAText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
	})
}

func TestProcessTurnFinalCTA(t *testing.T) {
	flags := model.CTAFlags{SoftCTAShown: true, CTAShown: true}
	allSeen := model.CategorySet{}.
		Add(model.CategoryVenues).Add(model.CategoryDresses).Add(model.CategoryHairstyles)

	newFinalState := func() *model.ConversationState {
		return &model.ConversationState{Stage: model.StageFinalCTA, SeenCategories: allSeen.Clone(), CTAFlags: flags}
	}

	t.Run("continue exploring loops back", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, &fakeFunnel{})

		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "continue exploring please", State: newFinalState()})
		if err != nil {
			t.Fatal(err)
		}
		if out.State.Stage != model.StageExploring {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageExploring)
		}
		if out.Text != conversation.KeepExploringText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
	})

	t.Run("join prompts for an email", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, &fakeFunnel{})

		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "I want to join the waitlist", State: newFinalState()})
		if err != nil {
			t.Fatal(err)
		}
		if out.Text != conversation.EmailPromptText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
	})

	t.Run("email collection flips the flag once", func(t *testing.T) {
		funnel := &fakeFunnel{}
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, funnel)

		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "sure, jane@example.com", State: newFinalState()})
		if err != nil {
			t.Fatal(err)
		}
		if !out.State.CTAFlags.EmailCollected {
			t.Error("EmailCollected should flip to true")
		}
		if out.Text != conversation.EmailThanksText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
		if len(funnel.events) != 1 || funnel.events[0].Event != conversation.EventEmailCollected {
			t.Errorf("funnel events mismatch: %+v", funnel.events)
		}

		// A second email must not publish again.
		out2, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "also john@example.com", State: out.State})
		if err != nil {
			t.Fatal(err)
		}
		if len(funnel.events) != 1 {
			t.Errorf("expected a single email event, got %d", len(funnel.events))
		}
		if !out2.State.CTAFlags.EmailCollected {
			t.Error("EmailCollected must stay true")
		}
	})
}

func TestProcessTurnFailure(t *testing.T) {
	t.Run("generation failure returns the apology", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{err: errors.New("upstream down")}, &fakeGallery{}, &fakeFunnel{})

		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "I love modern weddings"})
		if err != nil {
			t.Fatal(err)
		}
		if out.Text != conversation.ApologyText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
		// Only the user message and the apology land in history, no slot or
		// stage mutations survive the failure.
		if out.State.Preferences.Style != "" {
			t.Errorf("Style should be discarded on failure, got %q", out.State.Preferences.Style)
		}
		if out.State.Stage != model.StageInitial {
			t.Errorf("Stage mismatch: got %s, want %s", out.State.Stage, model.StageInitial)
		}
		if len(out.State.History) != 2 {
			t.Errorf("History length mismatch: got %d, want 2", len(out.State.History))
		}
		if out.State.History[1].Text != conversation.ApologyText {
			t.Errorf("last history entry should be the apology, got %q", out.State.History[1].Text)
		}
	})

	t.Run("curator failure also degrades", func(t *testing.T) {
		uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{err: errors.New("catalog down")}, &fakeFunnel{})

		st := &model.ConversationState{Stage: model.StageSneakPeek}
		out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "show me", State: st})
		if err != nil {
			t.Fatal(err)
		}
		if out.Text != conversation.ApologyText {
			t.Errorf("Text mismatch: got %q", out.Text)
		}
		if out.State.SeenCategories.Has(model.CategoryVenues) {
			t.Error("seen set must not grow on a failed turn")
		}
	})
}

func TestProcessTurnStatePurity(t *testing.T) {
	uc := newTestUseCase(&fakeLLM{reply: "x"}, &fakeGallery{}, &fakeFunnel{})

	st := &model.ConversationState{
		Stage:          model.StageSneakPeek,
		History:        []model.ConversationTurn{{Role: model.RoleUser, Text: "earlier"}},
		SeenCategories: model.CategorySet{},
	}

	out, err := uc.ProcessTurn(context.Background(), conversation.TurnInput{Message: "go on", State: st})
	if err != nil {
		t.Fatal(err)
	}

	if len(st.History) != 1 {
		t.Errorf("incoming history mutated: length %d", len(st.History))
	}
	if st.SeenCategories.Has(model.CategoryVenues) {
		t.Error("incoming seen set mutated")
	}
	if !out.State.SeenCategories.Has(model.CategoryVenues) {
		t.Error("returned state should carry the reveal")
	}
}
