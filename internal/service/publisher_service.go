package service

import (
	"context"
	"encoding/json"

	"insights-console-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (ps *publisherService) Publish(ctx context.Context, event events.Event) error {
	base, ok := event.(events.BaseEvent)
	if !ok {
		base = events.BaseEvent{
			ID:         watermill.NewUUID(),
			Type:       event.EventType(),
			Data:       event.Payload(),
			OccurredAt: event.Timestamp(),
		}
	}

	payload, err := json.Marshal(base)
	if err != nil {
		return err
	}

	msg := message.NewMessage(base.ID, payload)
	msg.SetContext(ctx)
	return ps.publisher.Publish(ps.topicName, msg)
}

// publishQuietly is for call sites where a lost event must not fail the
// request.
func publishQuietly(ctx context.Context, p IPublisherService, event events.Event, log func(err error)) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil && log != nil {
		log(err)
	}
}
