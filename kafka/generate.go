package kafka

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reelstudio/generation"
	"reelstudio/logger"
	"reelstudio/studio"
)

// GenerateMessage is the request shape consumed from the generation topic.
// A non-empty Script makes it a director job; otherwise Request runs as a
// single-prompt job.
type GenerateMessage struct {
	generation.Request
	Script string `json:"script,omitempty"`
}

// NewGenerateHandler builds the typed handler feeding the studio service.
// Processing is synchronous so offsets are only marked for finished jobs.
func NewGenerateHandler(svc *studio.Service) MessageHandler {
	return &TypedMessageHandler[GenerateMessage]{
		Validate: func(msg *GenerateMessage) bool {
			if msg.Script == "" && msg.Prompt == "" {
				logger.Warn().Msg("message has neither prompt nor script, skipping")
				return false
			}
			if msg.Script == "" {
				if err := msg.Request.Validate(); err != nil {
					logger.Warn().Err(err).Msg("invalid generation request, skipping")
					return false
				}
			} else if err := msg.Request.ValidateSettings(); err != nil {
				logger.Warn().Err(err).Msg("invalid director settings, skipping")
				return false
			}
			return true
		},
		Process: func(ctx context.Context, msg *GenerateMessage) error {
			if msg.Script != "" {
				job := svc.NewDirectorJob(msg.Script)
				logger.Info().Str("job", job.ID).Msg("director job from kafka")
				svc.RunDirector(ctx, job, msg.Request)
				return nil
			}
			job := svc.NewGenerateJob(msg.Request)
			logger.Info().Str("job", job.ID).Msg("generation job from kafka")
			svc.RunGenerate(ctx, job, msg.Request)
			return nil
		},
		AlwaysMark: true,
	}
}

// RunConsumer starts the consumer and blocks until SIGINT/SIGTERM.
func RunConsumer(config ConsumerConfig) error {
	consumer, err := NewConsumer(config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		return err
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigterm:
		logger.Info().Msg("received termination signal")
	case <-ctx.Done():
	}

	cancel()

	// Give in-flight jobs a moment before the process exits.
	time.Sleep(2 * time.Second)
	return consumer.Close()
}
