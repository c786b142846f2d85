package usecase

import (
	"sayyes-srv/internal/conversation"
	"sayyes-srv/internal/gallery"
	"sayyes-srv/pkg/log"
	"sayyes-srv/pkg/openai"
)

type implUseCase struct {
	llm       openai.IOpenAI
	galleryUC gallery.UseCase
	funnel    conversation.FunnelPublisher
	l         log.Logger
}

// New - Factory function. funnel may be nil when analytics is disabled.
func New(
	l log.Logger,
	llm openai.IOpenAI,
	galleryUC gallery.UseCase,
	funnel conversation.FunnelPublisher,
) conversation.UseCase {
	return &implUseCase{
		llm:       llm,
		galleryUC: galleryUC,
		funnel:    funnel,
		l:         l,
	}
}
