// Package view holds the per-session state behind the dashboard's chat and
// insights panels.
package view

import (
	"sync"

	"insights-console-be/internal/entity"
	"insights-console-be/pkg/viewstate"
)

type Chat struct {
	tracker viewstate.Tracker

	mu       sync.Mutex
	messages []entity.ChatMessage
	notice   string
	loaded   bool
}

func NewChat() *Chat {
	return &Chat{}
}

// Begin starts a transcript fetch.
func (c *Chat) Begin() viewstate.Token {
	return c.tracker.Begin()
}

// Resolve replaces the transcript with a fetch result unless a newer fetch
// has started since tok was issued.
func (c *Chat) Resolve(tok viewstate.Token, messages []entity.ChatMessage, notice string) bool {
	return c.tracker.Apply(tok, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.messages = append([]entity.ChatMessage(nil), messages...)
		c.notice = notice
		c.loaded = true
	})
}

// Append adds a message. A conversation in progress supersedes any
// notice left by the last fetch.
func (c *Chat) Append(msg entity.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	c.notice = ""
}

func (c *Chat) Messages() []entity.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.ChatMessage(nil), c.messages...)
}

func (c *Chat) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *Chat) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}
