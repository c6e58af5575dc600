package service

import (
	"context"
	"encoding/json"

	"insights-console-be/internal/pkg/logger"
	"insights-console-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventForwarder relays events to an external bus. *nats.Publisher
// satisfies it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	eventLogger logger.ILogger
	forwarder   EventForwarder
}

// NewConsumerService drains the in-process topic into the event trail log
// and, when forwarder is non-nil, onward to it.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	eventLogger logger.ILogger,
	forwarder EventForwarder,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		eventLogger: eventLogger,
		forwarder:   forwarder,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.eventLogger.Error("EVENTS", "Dropping undecodable event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Ack so a bad payload is not redelivered forever.
		msg.Ack()
		return
	}

	cs.eventLogger.Info("EVENTS", event.Type, event.Data)

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(ctx, event); err != nil {
			cs.eventLogger.Warn("EVENTS", "Failed to forward event", map[string]interface{}{
				"type":  event.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
