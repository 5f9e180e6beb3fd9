package reviews

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

type stubQueries struct {
	created  []dbgen.CreateReviewParams
	approved []pgtype.UUID
	deleted  []pgtype.UUID
	pending  []dbgen.ListPendingReviewsRow

	createErr  error
	approveErr error
}

func (s *stubQueries) CreateReview(_ context.Context, arg dbgen.CreateReviewParams) (dbgen.ProductReview, error) {
	if s.createErr != nil {
		return dbgen.ProductReview{}, s.createErr
	}
	s.created = append(s.created, arg)
	return dbgen.ProductReview{
		ID:        pgtype.UUID{Bytes: uuid.New(), Valid: true},
		ProductID: arg.ProductID,
		ProfileID: arg.ProfileID,
		Rating:    arg.Rating,
		Comment:   arg.Comment,
	}, nil
}

func (s *stubQueries) ListApprovedReviewsByProduct(context.Context, pgtype.UUID) ([]dbgen.ListApprovedReviewsByProductRow, error) {
	return nil, nil
}

func (s *stubQueries) ListPendingReviews(context.Context) ([]dbgen.ListPendingReviewsRow, error) {
	return s.pending, nil
}

func (s *stubQueries) ApproveReview(_ context.Context, id pgtype.UUID) (dbgen.ProductReview, error) {
	if s.approveErr != nil {
		return dbgen.ProductReview{}, s.approveErr
	}
	s.approved = append(s.approved, id)
	return dbgen.ProductReview{ID: id, IsApproved: true}, nil
}

func (s *stubQueries) DeleteReview(_ context.Context, id pgtype.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubQueries) GetReviewSummary(context.Context, pgtype.UUID) (dbgen.GetReviewSummaryRow, error) {
	return dbgen.GetReviewSummaryRow{ReviewCount: 2, AvgRating: 3.5}, nil
}

func newID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	stub := &stubQueries{}
	svc := &Service{Q: stub}

	for _, rating := range []int32{0, 6, -1} {
		_, err := svc.Create(context.Background(), newID(), newID(), rating, "ok")
		require.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Empty(t, stub.created)
}

func TestCreateStoresTrimmedComment(t *testing.T) {
	stub := &stubQueries{}
	svc := &Service{Q: stub}

	review, err := svc.Create(context.Background(), newID(), newID(), 5, "  harika ürün  ")
	require.NoError(t, err)
	require.Len(t, stub.created, 1)
	assert.Equal(t, "harika ürün", stub.created[0].Comment.String)
	require.NotNil(t, review.Comment)
	assert.Equal(t, "harika ürün", *review.Comment)
}

func TestCreateAllowsEmptyComment(t *testing.T) {
	stub := &stubQueries{}
	svc := &Service{Q: stub}

	review, err := svc.Create(context.Background(), newID(), newID(), 4, "")
	require.NoError(t, err)
	require.Len(t, stub.created, 1)
	assert.False(t, stub.created[0].Comment.Valid)
	assert.Nil(t, review.Comment)
}

func TestCreateMapsDuplicateToAlreadyReviewed(t *testing.T) {
	stub := &stubQueries{createErr: &pgconn.PgError{Code: "23505", ConstraintName: "product_reviews_product_profile_key"}}
	svc := &Service{Q: stub}

	_, err := svc.Create(context.Background(), newID(), newID(), 5, "harika ürün")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestApproveMapsMissingReview(t *testing.T) {
	stub := &stubQueries{approveErr: pgx.ErrNoRows}
	svc := &Service{Q: stub}

	err := svc.Approve(context.Background(), newID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSummary(t *testing.T) {
	svc := &Service{Q: &stubQueries{}}

	summary, err := svc.Summary(context.Background(), newID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.ReviewCount)
	assert.InDelta(t, 3.5, summary.AvgRating, 0.001)
}
