package notify

import (
	"context"
	"fmt"

	"github.com/orbisenerji/backend-store/internal/common"
	"github.com/orbisenerji/backend-store/internal/resilience"
)

// BreakerSender guards an EmailSender with a circuit breaker. When the mail
// relay keeps failing, sends are refused immediately and the task queue
// retries them later instead of piling onto a dead server.
type BreakerSender struct {
	Next    common.EmailSender
	Breaker *resilience.Breaker
}

// Send delivers through the wrapped sender unless the circuit is open.
func (s BreakerSender) Send(to, subject, html string) error {
	if s.Next == nil {
		return fmt.Errorf("notify: no sender configured")
	}
	if s.Breaker == nil {
		return s.Next.Send(to, subject, html)
	}
	ctx := context.Background()
	if !s.Breaker.Allow(ctx) {
		return resilience.ErrOpenCircuit
	}
	err := s.Next.Send(to, subject, html)
	s.Breaker.Report(ctx, err == nil)
	return err
}
