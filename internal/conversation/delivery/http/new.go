package http

import (
	"sayyes-srv/internal/conversation"
	"sayyes-srv/pkg/discord"
	"sayyes-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the conversation HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      conversation.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc conversation.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
