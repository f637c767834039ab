package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"reelstudio/api"
	"reelstudio/config"
	"reelstudio/director"
	"reelstudio/generation"
	"reelstudio/kafka"
	"reelstudio/logger"
	"reelstudio/prompt"
	"reelstudio/publish"
	"reelstudio/storage"
	"reelstudio/store"
	"reelstudio/studio"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	// Parse command-line flags
	port := flag.String("port", "", "HTTP API port (overrides PORT env var)")
	kafkaMode := flag.Bool("kafka", false, "Run as a Kafka consumer instead of an HTTP server")
	flag.Parse()

	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		logger.Fatal().Err(err).Msg("Invalid log configuration")
	}

	if cfg.GeminiAPIKey == "" {
		logger.Fatal().Msg("GEMINI_API_KEY (or GOOGLE_API_KEY) is required")
	}

	ctx := context.Background()

	client, err := generation.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create genai client")
	}

	engine := generation.NewVeoEngine(client, cfg.VideoModel, cfg.PollInterval, cfg.OutputDir)
	splitter := director.NewModelSplitter(client, cfg.TextModel, cfg.MaxScenes)
	stitcher := director.FFmpegStitcher{}

	// Job store: Redis when configured, in-memory otherwise
	var jobStore store.JobStore
	if cfg.RedisAddr != "" {
		redisStore, err := store.NewRedis(cfg.RedisAddr)
		if err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
		}
		jobStore = redisStore
		logger.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis job store")
	} else {
		jobStore = store.NewMemory()
		logger.Info().Msg("Using in-memory job store")
	}

	// Optional S3 upload of finished videos
	var uploader studio.Uploader
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(ctx, cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create S3 store")
		}
		uploader = s3Store
		logger.Info().Str("bucket", cfg.S3Bucket).Msg("Uploading finished videos to S3")
	}

	svc := studio.New(engine, splitter, stitcher, jobStore, uploader, cfg.OutputDir)

	if *kafkaMode {
		logger.Info().Str("topic", cfg.KafkaTopic).Msg("Starting Kafka consumer")
		err := kafka.RunConsumer(kafka.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.KafkaGroupID,
			Handler: kafka.NewGenerateHandler(svc),
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("Kafka consumer failed")
		}
		return
	}

	// Optional prompt enhancement via Cohere
	var enhancer prompt.Enhancer = prompt.NopEnhancer{}
	if cfg.CohereAPIKey != "" {
		enhancer = prompt.NewCohereEnhancer(cfg.CohereAPIKey, "")
		logger.Info().Msg("Prompt enhancement enabled")
	}

	// Optional YouTube publishing
	var publisher api.Publisher
	if cfg.YouTubeServiceAccountFile != "" {
		p, err := publish.NewPublisher(ctx, cfg.YouTubeServiceAccountFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create YouTube publisher")
		}
		publisher = p
		logger.Info().Msg("YouTube publishing enabled")
	}

	router := api.NewRouter(api.Deps{
		Service:   svc,
		Store:     jobStore,
		Enhancer:  enhancer,
		Publisher: publisher,
		OutputDir: cfg.OutputDir,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("ReelStudio listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
}
