package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

type stubStore struct {
	sweepCutoff pgtype.Timestamptz
	sweepCount  int64
	sweepErr    error

	profile    dbgen.Profile
	profileErr error
}

func (s *stubStore) AbandonStaleCarts(_ context.Context, updatedBefore pgtype.Timestamptz) (int64, error) {
	s.sweepCutoff = updatedBefore
	return s.sweepCount, s.sweepErr
}

func (s *stubStore) GetProfileByID(_ context.Context, _ pgtype.UUID) (dbgen.Profile, error) {
	return s.profile, s.profileErr
}

func TestHandleCartSweepUsesConfiguredThreshold(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := &stubStore{sweepCount: 3}
	h := &Handlers{
		Q:          store,
		StaleAfter: 48 * time.Hour,
		Now:        func() time.Time { return now },
	}

	err := h.HandleCartSweep(context.Background(), NewCartSweepTask())
	require.NoError(t, err)
	require.True(t, store.sweepCutoff.Valid)
	assert.Equal(t, now.Add(-48*time.Hour), store.sweepCutoff.Time)
}

func TestHandleCartSweepPropagatesStoreError(t *testing.T) {
	h := &Handlers{Q: &stubStore{sweepErr: errors.New("db down")}}
	err := h.HandleCartSweep(context.Background(), NewCartSweepTask())
	require.Error(t, err)
}

func TestHandleOrderConfirmationSendsEmail(t *testing.T) {
	profileID := uuid.New()
	store := &stubStore{profile: dbgen.Profile{
		ID:       pgtype.UUID{Bytes: profileID, Valid: true},
		Email:    "ayse@example.com",
		FullName: "Ayşe Yılmaz",
	}}
	outbox := &common.InMemoryEmail{}
	h := &Handlers{Q: store, Mail: outbox}

	task, err := NewOrderConfirmationTask(OrderConfirmationPayload{
		OrderNo:    "ORB-20261042",
		ProfileID:  profileID.String(),
		GrandTotal: 1249900,
		Currency:   "TRY",
	})
	require.NoError(t, err)

	require.NoError(t, h.HandleOrderConfirmation(context.Background(), task))
	require.Len(t, outbox.Outbox, 1)
	assert.Equal(t, "ayse@example.com", outbox.Outbox[0].To)
	assert.Contains(t, outbox.Outbox[0].Subject, "ORB-20261042")
}

func TestHandleOrderConfirmationDropsMissingProfile(t *testing.T) {
	outbox := &common.InMemoryEmail{}
	h := &Handlers{Q: &stubStore{profileErr: pgx.ErrNoRows}, Mail: outbox}

	task, err := NewOrderConfirmationTask(OrderConfirmationPayload{
		OrderNo:   "ORB-20261042",
		ProfileID: uuid.NewString(),
	})
	require.NoError(t, err)

	require.NoError(t, h.HandleOrderConfirmation(context.Background(), task))
	assert.Empty(t, outbox.Outbox)
}

func TestHandleOrderConfirmationSkipsRetryOnBadPayload(t *testing.T) {
	h := &Handlers{Q: &stubStore{}, Mail: &common.InMemoryEmail{}}
	task := asynq.NewTask(TypeOrderConfirmation, []byte("{not json"))

	err := h.HandleOrderConfirmation(context.Background(), task)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
