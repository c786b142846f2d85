package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"sayyes-srv/internal/conversation"
	conversationHTTP "sayyes-srv/internal/conversation/delivery/http"
	funnelProducer "sayyes-srv/internal/conversation/delivery/kafka/producer"
	conversationUsecase "sayyes-srv/internal/conversation/usecase"
)

func (srv *HTTPServer) setupConversationDomain(ctx context.Context, r *gin.RouterGroup) error {
	var funnel conversation.FunnelPublisher
	if srv.kafkaProducer != nil {
		funnel = funnelProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := conversationUsecase.New(srv.l, srv.openaiClient, srv.galleryUC, funnel)

	handler := conversationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Conversation domain registered (funnel=%t)", funnel != nil)
	return nil
}
