package viewstate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupersededResultIsDiscarded(t *testing.T) {
	var tr Tracker
	state := "empty"

	first := tr.Begin()
	second := tr.Begin()

	assert.True(t, tr.Apply(second, func() { state = "second" }))
	assert.False(t, tr.Apply(first, func() { state = "first" }))
	assert.Equal(t, "second", state)
	assert.False(t, tr.Current(first))
	assert.True(t, tr.Current(second))
}

func TestConcurrentBeginsLeaveOneWinner(t *testing.T) {
	var tr Tracker
	var wg sync.WaitGroup
	tokens := make(chan Token, 32)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens <- tr.Begin()
		}()
	}
	wg.Wait()
	close(tokens)

	applied := 0
	for tok := range tokens {
		if tr.Apply(tok, func() {}) {
			applied++
		}
	}
	assert.Equal(t, 1, applied)
}
