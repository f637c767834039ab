package kafka

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"reelstudio/logger"
)

// MessageHandler processes one consumed message. If shouldMark is false or
// an error is returned, the message is not marked and may be redelivered.
type MessageHandler interface {
	HandleMessage(ctx context.Context, message []byte) (shouldMark bool, err error)
}

// Consumer wraps a sarama consumer group with pluggable message handling.
type Consumer struct {
	group   sarama.ConsumerGroup
	handler MessageHandler
	topic   string
	groupID string
	ready   chan bool
}

// ConsumerConfig holds Kafka consumer configuration.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	Handler MessageHandler
}

// NewConsumer creates a consumer group client.
func NewConsumer(config ConsumerConfig) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		handler: config.Handler,
		topic:   config.Topic,
		groupID: config.GroupID,
		ready:   make(chan bool),
	}, nil
}

// Start begins consuming; it returns once the first session is ready.
func (c *Consumer) Start(ctx context.Context) error {
	handler := &groupHandler{messageHandler: c.handler, ready: c.ready}

	go func() {
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
				if err == context.Canceled {
					logger.Info().Msg("kafka consumer context canceled")
					return
				}
				logger.Error().Err(err).Msg("kafka consume error")
			}
			if ctx.Err() != nil {
				return
			}
			handler.ready = make(chan bool)
		}
	}()

	<-c.ready
	logger.Info().Str("group", c.groupID).Str("topic", c.topic).Msg("kafka consumer started")

	go func() {
		for err := range c.group.Errors() {
			logger.Error().Err(err).Msg("kafka consumer error")
		}
	}()

	return nil
}

// Close shuts down the consumer group.
func (c *Consumer) Close() error {
	logger.Info().Msg("closing kafka consumer")
	return c.group.Close()
}

type groupHandler struct {
	messageHandler MessageHandler
	ready          chan bool
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	close(h.ready)
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			logger.Debug().
				Int32("partition", message.Partition).
				Int64("offset", message.Offset).
				Msg("received kafka message")

			shouldMark, err := h.messageHandler.HandleMessage(session.Context(), message.Value)
			if err != nil {
				logger.Error().Err(err).Msg("failed to handle message")
			}
			if shouldMark {
				session.MarkMessage(message, "")
			}

		case <-session.Context().Done():
			return nil
		}
	}
}

// TypedMessageHandler decodes JSON messages into T before handling them.
type TypedMessageHandler[T any] struct {
	// Validate checks if the message should be processed.
	Validate func(msg *T) bool
	// Process handles the decoded message.
	Process func(ctx context.Context, msg *T) error
	// AlwaysMark marks messages even when validation fails.
	AlwaysMark bool
}

// HandleMessage implements MessageHandler.
func (h *TypedMessageHandler[T]) HandleMessage(ctx context.Context, message []byte) (bool, error) {
	var msg T
	if err := json.Unmarshal(message, &msg); err != nil {
		logger.Warn().Err(err).Msg("skipping unparseable message")
		return h.AlwaysMark, nil
	}

	if h.Validate != nil && !h.Validate(&msg) {
		return h.AlwaysMark, nil
	}

	if err := h.Process(ctx, &msg); err != nil {
		return false, err
	}
	return true, nil
}
