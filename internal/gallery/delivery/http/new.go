package http

import (
	"sayyes-srv/internal/gallery"
	"sayyes-srv/pkg/discord"
	"sayyes-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the gallery HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      gallery.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc gallery.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
