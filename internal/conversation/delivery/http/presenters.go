package http

import (
	"sayyes-srv/internal/conversation"
	"sayyes-srv/internal/model"
)

// chatReq accepts both body formats: the simple {message, state} shape and
// the OpenAI-style {messages: [...], state} shape. With the latter the last
// user entry is the turn's message.
type chatReq struct {
	Message  string                   `json:"message"`
	Messages []chatMessageReq         `json:"messages"`
	State    *model.ConversationState `json:"state"`
}

type chatMessageReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (r chatReq) message() string {
	if r.Message != "" {
		return r.Message
	}
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == "user" && r.Messages[i].Content != "" {
			return r.Messages[i].Content
		}
	}
	return ""
}

func (r chatReq) toInput() conversation.TurnInput {
	return conversation.TurnInput{
		Message: r.message(),
		State:   r.State,
	}
}

type chatResp struct {
	Text     string                   `json:"text"`
	Buttons  []string                 `json:"buttons,omitempty"`
	Carousel *model.Carousel          `json:"carousel,omitempty"`
	State    *model.ConversationState `json:"state"`
}

func (h *handler) newChatResp(o conversation.TurnOutput) chatResp {
	return chatResp{
		Text:     o.Text,
		Buttons:  o.Buttons,
		Carousel: o.Carousel,
		State:    o.State,
	}
}
