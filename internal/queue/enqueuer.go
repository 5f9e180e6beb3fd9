package queue

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// Enqueuer publishes background tasks. Order notifications are best effort:
// a Redis outage must not fail the checkout that already committed.
type Enqueuer struct {
	Client *asynq.Client
	Log    zerolog.Logger
}

// OrderCreated schedules the confirmation email for a freshly committed order.
func (e Enqueuer) OrderCreated(ctx context.Context, order dbgen.Order) {
	if e.Client == nil {
		return
	}
	task, err := NewOrderConfirmationTask(OrderConfirmationPayload{
		OrderNo:    order.OrderNo,
		ProfileID:  uuidString(order.ProfileID),
		GrandTotal: order.GrandTotal,
		Currency:   order.Currency,
	})
	if err != nil {
		e.Log.Error().Err(err).Str("order_no", order.OrderNo).Msg("build order confirmation task")
		return
	}
	if _, err := e.Client.EnqueueContext(ctx, task); err != nil {
		// Duplicate task IDs happen when a retried checkout response races
		// the first enqueue. That is the dedup working, not a failure.
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return
		}
		e.Log.Error().Err(err).Str("order_no", order.OrderNo).Msg("enqueue order confirmation")
	}
}
