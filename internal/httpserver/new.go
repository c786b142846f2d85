package httpserver

import (
	"database/sql"
	"errors"

	"sayyes-srv/internal/gallery"
	"sayyes-srv/pkg/discord"
	pkgKafka "sayyes-srv/pkg/kafka"
	"sayyes-srv/pkg/log"
	pkgMinio "sayyes-srv/pkg/minio"
	"sayyes-srv/pkg/openai"
	pkgRedis "sayyes-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// External collaborators. Postgres, MinIO, Redis and Kafka are optional:
	// the catalog falls back to built-in samples, the cache is skipped and
	// funnel events are dropped when they are absent.
	postgresDB    *sql.DB
	minio         pkgMinio.MinIO
	redis         pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer
	openaiClient  openai.IOpenAI

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared between domain setups
	galleryUC gallery.UseCase
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// External collaborators
	PostgresDB    *sql.DB
	MinIO         pkgMinio.MinIO
	Redis         pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer
	OpenAIClient  openai.IOpenAI

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:    cfg.PostgresDB,
		minio:         cfg.MinIO,
		redis:         cfg.Redis,
		kafkaProducer: cfg.KafkaProducer,
		openaiClient:  cfg.OpenAIClient,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.openaiClient == nil {
		return errors.New("openai client is required")
	}
	return nil
}
