package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbisenerji/backend-store/internal/common"
	"github.com/orbisenerji/backend-store/internal/resilience"
)

type failingSender struct {
	calls int
	err   error
}

func (s *failingSender) Send(string, string, string) error {
	s.calls++
	return s.err
}

func TestBreakerSenderRequiresNext(t *testing.T) {
	err := BreakerSender{}.Send("a@example.com", "s", "b")
	require.Error(t, err)
}

func TestBreakerSenderPassthroughWithoutBreaker(t *testing.T) {
	outbox := &common.InMemoryEmail{}
	sender := BreakerSender{Next: outbox}

	require.NoError(t, sender.Send("ayse@example.com", "Merhaba", "<p>test</p>"))
	require.Len(t, outbox.Outbox, 1)
}

func TestBreakerSenderOpensAfterFailures(t *testing.T) {
	next := &failingSender{err: errors.New("relay down")}
	sender := BreakerSender{
		Next:    next,
		Breaker: resilience.NewBreaker(2, 0.5, time.Minute).WithTarget("smtp-test"),
	}

	require.Error(t, sender.Send("a@example.com", "s", "b"))
	require.Error(t, sender.Send("a@example.com", "s", "b"))
	assert.Equal(t, 2, next.calls)

	err := sender.Send("a@example.com", "s", "b")
	assert.ErrorIs(t, err, resilience.ErrOpenCircuit)
	assert.Equal(t, 2, next.calls, "open circuit must not reach the relay")
}
