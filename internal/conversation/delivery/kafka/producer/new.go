package producer

import (
	"sayyes-srv/internal/conversation"
	pkgKafka "sayyes-srv/pkg/kafka"
	"sayyes-srv/pkg/log"
)

// Producer interface for conversation funnel events
type Producer interface {
	conversation.FunnelPublisher
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new funnel event producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
