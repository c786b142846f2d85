package main

import (
	"context"
	"fmt"

	"sayyes-srv/config"
	configPostgre "sayyes-srv/config/postgre"
	"sayyes-srv/internal/httpserver"
	"sayyes-srv/pkg/discord"
	pkgKafka "sayyes-srv/pkg/kafka"
	"sayyes-srv/pkg/log"
	pkgMinio "sayyes-srv/pkg/minio"
	"sayyes-srv/pkg/openai"
	pkgRedis "sayyes-srv/pkg/redis"
)

// @title       SayYes Wedding Planner API
// @description Conversation progression engine and media curation for the SayYes wedding planning assistant.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize OpenAI client (required)
	openaiClient, err := openai.NewOpenAI(openai.OpenAIConfig{
		APIKey: cfg.OpenAI.APIKey,
		Model:  cfg.OpenAI.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}
	logger.Infof(ctx, "OpenAI client initialized (model %s)", cfg.OpenAI.Model)

	srvCfg := httpserver.Config{
		Host:         cfg.HTTPServer.Host,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		OpenAIClient: openaiClient,
	}

	// 4. Initialize PostgreSQL (optional catalog source)
	if cfg.Postgres.Host != "" {
		db, err := configPostgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer configPostgre.Disconnect(ctx, db)
		logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		srvCfg.PostgresDB = db
	}

	// 5. Initialize MinIO (optional catalog source)
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := pkgMinio.NewMinIOWithRetry(&pkgMinio.Config{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Region:    cfg.MinIO.Region,
			Bucket:    cfg.MinIO.Bucket,
		}, 3)
		if err != nil {
			logger.Warnf(ctx, "MinIO not available, catalog falls back to samples: %v", err)
		} else {
			defer minioClient.Close()
			logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
			srvCfg.MinIO = minioClient
		}
	}

	// 6. Initialize Redis (optional curation cache)
	if cfg.Redis.Host != "" {
		redisClient, err := pkgRedis.NewRedis(pkgRedis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warnf(ctx, "Redis not available, curation cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
			srvCfg.Redis = redisClient
		}
	}

	// 7. Initialize Kafka producer (optional funnel analytics)
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := pkgKafka.NewProducer(pkgKafka.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			logger.Warnf(ctx, "Kafka not available, funnel events disabled: %v", err)
		} else {
			defer producer.Close()
			logger.Infof(ctx, "Kafka producer initialized (topic %s)", cfg.Kafka.Topic)
			srvCfg.KafkaProducer = producer
		}
	}

	// 8. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
		srvCfg.Discord = discordClient
	}

	// 9. Initialize and run HTTP server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to create HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}
