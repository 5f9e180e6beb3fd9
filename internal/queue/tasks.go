package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names. Kinds are namespaced so the asynq dashboard groups them.
const (
	TypeCartSweep         = "cart:sweep"
	TypeOrderConfirmation = "email:order_confirmation"
)

// Queue names by priority class.
const (
	QueueCritical    = "critical"
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)

// OrderConfirmationPayload carries the minimum needed to compose the email.
// The recipient address is resolved at processing time so a profile email
// change between enqueue and delivery is respected.
type OrderConfirmationPayload struct {
	OrderNo    string `json:"orderNo"`
	ProfileID  string `json:"profileId"`
	GrandTotal int64  `json:"grandTotal"`
	Currency   string `json:"currency"`
}

// NewCartSweepTask builds the periodic task that abandons stale carts.
func NewCartSweepTask() *asynq.Task {
	return asynq.NewTask(TypeCartSweep, nil, asynq.Queue(QueueMaintenance), asynq.MaxRetry(3))
}

// NewOrderConfirmationTask builds a task that emails an order confirmation.
func NewOrderConfirmationTask(p OrderConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOrderConfirmation, payload,
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(5),
		asynq.TaskID("order-confirmation:"+p.OrderNo),
	), nil
}
