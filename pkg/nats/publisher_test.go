package nats

import (
	"testing"

	"insights-console-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "insights.session_created", Subject(events.TypeSessionCreated))
	assert.Equal(t, "insights.file_uploaded", Subject(events.TypeFileUploaded))
}
