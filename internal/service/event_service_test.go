package service

import (
	"context"
	"testing"
	"time"

	"insights-console-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishedEventsReachForwarder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 8}, watermill.NopLogger{})
	defer pubSub.Close()

	forwarded := &recordingPublisher{}
	require.NoError(t, NewConsumerService(pubSub, "insights-events", nopLogger, forwarded).Consume(ctx))

	publisher := NewPublisherService("insights-events", pubSub)
	event := events.New(events.TypeFileUploaded, map[string]interface{}{"path": "private/uploads/a.csv"})
	require.NoError(t, publisher.Publish(ctx, event))

	assert.Eventually(t, func() bool {
		return len(forwarded.types()) == 1
	}, time.Second, 10*time.Millisecond)

	forwarded.mu.Lock()
	got := forwarded.events[0]
	forwarded.mu.Unlock()
	assert.Equal(t, events.TypeFileUploaded, got.EventType())
	assert.Equal(t, "private/uploads/a.csv", got.Payload()["path"])
}
