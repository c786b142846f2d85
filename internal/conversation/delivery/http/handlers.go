package http

import (
	"sayyes-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Process one conversation turn
// @Description Send a user message with the current conversation state and receive the reply, optional carousel or CTA buttons, and the updated state
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body chatReq true "Chat request, either {message, state} or {messages: [...], state}"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.Chat: processChatRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.Chat: usecase ProcessTurn failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChatResp(o))
}
