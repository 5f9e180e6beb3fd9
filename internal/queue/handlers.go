package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/notify"
	"github.com/orbisenerji/backend-store/internal/obs"
)

const defaultStaleAfter = 48 * time.Hour

// store is the subset of generated queries the task handlers need.
type store interface {
	AbandonStaleCarts(ctx context.Context, updatedBefore pgtype.Timestamptz) (int64, error)
	GetProfileByID(ctx context.Context, id pgtype.UUID) (dbgen.Profile, error)
}

// Handlers processes background tasks on the worker.
type Handlers struct {
	Q          store
	Mail       common.EmailSender
	Log        zerolog.Logger
	StaleAfter time.Duration
	Now        func() time.Time
}

// Mux returns the task router for the asynq server.
func (h *Handlers) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCartSweep, h.HandleCartSweep)
	mux.HandleFunc(TypeOrderConfirmation, h.HandleOrderConfirmation)
	return mux
}

// HandleCartSweep marks carts idle past the threshold as abandoned. The
// update is a single statement, so overlapping sweeps are harmless.
func (h *Handlers) HandleCartSweep(ctx context.Context, _ *asynq.Task) error {
	if h == nil || h.Q == nil {
		return errors.New("queue: cart sweep store not configured")
	}
	staleAfter := h.StaleAfter
	if staleAfter <= 0 {
		staleAfter = defaultStaleAfter
	}
	cutoff := h.now().Add(-staleAfter)
	n, err := h.Q.AbandonStaleCarts(ctx, pgtype.Timestamptz{Time: cutoff, Valid: true})
	if err != nil {
		return fmt.Errorf("abandon stale carts: %w", err)
	}
	if n > 0 {
		if obs.CartsAbandonedTotal != nil {
			obs.CartsAbandonedTotal.Add(float64(n))
		}
		h.Log.Info().Int64("carts", n).Time("cutoff", cutoff).Msg("stale carts abandoned")
	}
	return nil
}

// HandleOrderConfirmation emails the customer about a committed order. A
// vanished profile drops the task instead of retrying it forever.
func (h *Handlers) HandleOrderConfirmation(ctx context.Context, t *asynq.Task) error {
	if h == nil || h.Q == nil || h.Mail == nil {
		return errors.New("queue: order confirmation handler not configured")
	}
	var p OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("decode order confirmation payload: %v: %w", err, asynq.SkipRetry)
	}
	profileID, err := toUUID(p.ProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", p.ProfileID, asynq.SkipRetry)
	}
	profile, err := h.Q.GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			h.Log.Warn().Str("order_no", p.OrderNo).Msg("profile gone, dropping confirmation email")
			return nil
		}
		return fmt.Errorf("load profile: %w", err)
	}
	msg := notify.OrderConfirmation(profile.FullName, p.OrderNo, p.GrandTotal, p.Currency)
	if err := h.Mail.Send(profile.Email, msg.Subject, msg.HTML); err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}
	h.Log.Info().Str("order_no", p.OrderNo).Msg("order confirmation sent")
	return nil
}

func (h *Handlers) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func toUUID(value string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}
