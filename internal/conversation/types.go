package conversation

import (
	"time"

	"sayyes-srv/internal/model"
)

const (
	// MaxHistoryMessages bounds how many history turns feed the prompt.
	// Full history is still kept in state.
	MaxHistoryMessages = 20

	SoftCTAText = "🥳 Looks like you're getting into the fun stuff! Want to see what a fully planned wedding experience feels like?"
	FullCTAText = "🤖 I've shown you a sneak peek of what I can do! Ready to take your wedding planning to the next level? Over 500 couples have already joined our exclusive wedding planning community! ✨"
	ApologyText = "Sorry, I couldn't process your request right now."

	SneakPeekLeadIn   = "Let me show you a sneak peek of what I can do for your dream day ✨"
	EmailPromptText   = "Amazing! 🎉 Drop your email below and we'll save your spot on the waitlist."
	EmailThanksText   = "You're on the list! 💌 We'll be in touch soon. In the meantime, let's keep planning!"
	KeepExploringText = "No problem! Let's keep exploring. What would you like to see next?"
)

var (
	SoftCTAButtons = []string{"Continue Planning", "Show Me More"}
	FullCTAButtons = []string{"Join the Waitlist", "Continue Exploring"}
)

type TurnInput struct {
	Message string
	State   *model.ConversationState
}

// TurnOutput is the externally visible response for one turn. Buttons only
// accompany CTA emissions, Carousel only category reveals.
type TurnOutput struct {
	Text     string
	Buttons  []string
	Carousel *model.Carousel
	State    *model.ConversationState
}

// Funnel event names.
const (
	EventSoftCTAShown   = "soft_cta_shown"
	EventCTAShown       = "cta_shown"
	EventEmailCollected = "email_collected"
)

// FunnelEvent is published when a conversation crosses a conversion point.
type FunnelEvent struct {
	ConversationID string      `json:"conversation_id"`
	Event          string      `json:"event"`
	Stage          model.Stage `json:"stage"`
	At             time.Time   `json:"at"`
}
