package usecase

import (
	"context"
	"fmt"
	"strings"

	"sayyes-srv/internal/conversation"
	"sayyes-srv/internal/model"
)

const personaPrompt = `You are Snatcha, a fun, warm, and helpful AI wedding planning assistant.
Keep responses short, friendly, and use emojis where appropriate.
Respond like you're helping a close friend, but stay focused on the task.
Only suggest things when asked. Be clever, not pushy.`

// generateReply calls the text-completion provider with the persona, the
// current planning context and the bounded history.
func (uc *implUseCase) generateReply(ctx context.Context, st *model.ConversationState) (string, error) {
	reply, err := uc.llm.Generate(ctx, buildSystemContext(st), buildHistoryBlock(st))
	if err != nil {
		return "", fmt.Errorf("generateReply: %w", err)
	}
	return reply, nil
}

// buildSystemContext assembles the system prompt: persona, planning stage
// and every preference captured so far.
func buildSystemContext(st *model.ConversationState) string {
	var b strings.Builder
	b.WriteString(personaPrompt)
	b.WriteString("\n\nCurrent Planning Stage: ")
	b.WriteString(string(st.Stage))

	p := st.Preferences
	if p.Style != "" {
		fmt.Fprintf(&b, "\nStyle preference: %s", p.Style)
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "\nLocation preference: %s", p.Location)
	}
	if p.GuestCount > 0 {
		fmt.Fprintf(&b, "\nGuest count: %d", p.GuestCount)
	}
	if p.Budget != "" {
		fmt.Fprintf(&b, "\nBudget: %s", p.Budget)
	}
	if p.FoodPreferences != "" {
		fmt.Fprintf(&b, "\nFood preferences: %s", p.FoodPreferences)
	}
	if p.SpecialRequests != "" {
		fmt.Fprintf(&b, "\nSpecial requests: %s", p.SpecialRequests)
	}

	return b.String()
}

// buildHistoryBlock renders the most recent turns, newest last. The user
// message of the current turn is already in history when this runs.
func buildHistoryBlock(st *model.ConversationState) string {
	history := st.History
	if len(history) > conversation.MaxHistoryMessages {
		history = history[len(history)-conversation.MaxHistoryMessages:]
	}

	var b strings.Builder
	for _, turn := range history {
		label := "User"
		if turn.Role == model.RoleAssistant {
			label = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, turn.Text)
	}
	return b.String()
}
