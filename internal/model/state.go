package model

// Stage is the phase of the guided planning conversation.
type Stage string

const (
	StageInitial        Stage = "initial"
	StageCollectingInfo Stage = "collecting_info"
	StageSneakPeek      Stage = "sneak_peek"
	StageExploring      Stage = "exploring"
	StageFinalCTA       Stage = "final_cta"
)

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	switch s {
	case StageInitial, StageCollectingInfo, StageSneakPeek, StageExploring, StageFinalCTA:
		return true
	}
	return false
}

// Role of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one (role, text) entry in the chat history.
type ConversationTurn struct {
	Role Role   `json:"role"`
	Text string `json:"content"`
}

// Preferences holds the slots captured from the user so far.
// Each slot is overwrite-on-recapture, never merged.
type Preferences struct {
	Style           string `json:"style,omitempty"`
	Location        string `json:"location,omitempty"`
	GuestCount      int    `json:"guest_count,omitempty"`
	Budget          string `json:"budget,omitempty"`
	FoodPreferences string `json:"food_preferences,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// CTAFlags track the one-shot conversion prompts. Each flag flips
// false -> true exactly once per conversation.
type CTAFlags struct {
	SoftCTAShown   bool `json:"soft_cta_shown"`
	CTAShown       bool `json:"cta_shown"`
	EmailCollected bool `json:"email_collected"`
}

// ConversationState is the caller-owned state passed in and out on every
// turn. The engine holds no conversation state between calls.
type ConversationState struct {
	ID                 string             `json:"id,omitempty"`
	Stage              Stage              `json:"planning_stage"`
	History            []ConversationTurn `json:"chat_history"`
	Preferences        Preferences        `json:"preferences"`
	SeenCategories     CategorySet        `json:"seen_categories"`
	CTAFlags           CTAFlags           `json:"cta_flags"`
	InfoCollectedCount int                `json:"info_collected"`
}

// Clone returns a deep copy so a turn can mutate freely without touching
// the caller's state.
func (s *ConversationState) Clone() *ConversationState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.History = make([]ConversationTurn, len(s.History))
	copy(cp.History, s.History)
	cp.SeenCategories = s.SeenCategories.Clone()
	return &cp
}

// AppendTurn appends one history entry. History is append-only and never
// reordered.
func (s *ConversationState) AppendTurn(role Role, text string) {
	s.History = append(s.History, ConversationTurn{Role: role, Text: text})
}
