package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// ErrInvalidInput flags caller mistakes such as an out-of-range rating.
var ErrInvalidInput = errors.New("reviews: invalid input")

// ErrNotFound indicates the review does not exist.
var ErrNotFound = errors.New("reviews: not found")

// ErrAlreadyReviewed indicates the profile already reviewed this product.
var ErrAlreadyReviewed = errors.New("reviews: already reviewed")

const maxCommentLen = 2000

type queryProvider interface {
	CreateReview(ctx context.Context, arg dbgen.CreateReviewParams) (dbgen.ProductReview, error)
	ListApprovedReviewsByProduct(ctx context.Context, productID pgtype.UUID) ([]dbgen.ListApprovedReviewsByProductRow, error)
	ListPendingReviews(ctx context.Context) ([]dbgen.ListPendingReviewsRow, error)
	ApproveReview(ctx context.Context, id pgtype.UUID) (dbgen.ProductReview, error)
	DeleteReview(ctx context.Context, id pgtype.UUID) error
	GetReviewSummary(ctx context.Context, productID pgtype.UUID) (dbgen.GetReviewSummaryRow, error)
}

// Service implements review submission and moderation. New reviews start
// unapproved and are invisible to the storefront until an admin approves them.
type Service struct {
	Q queryProvider
}

// Review is the public review payload.
type Review struct {
	ID           string  `json:"id"`
	Rating       int32   `json:"rating"`
	Comment      *string `json:"comment,omitempty"`
	ReviewerName string  `json:"reviewerName"`
	CreatedAt    any     `json:"createdAt"`
}

// PendingReview is the moderation queue payload.
type PendingReview struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Rating       int32   `json:"rating"`
	Comment      *string `json:"comment,omitempty"`
	ReviewerName string  `json:"reviewerName"`
	CreatedAt    any     `json:"createdAt"`
}

// Summary aggregates approved ratings for a product.
type Summary struct {
	ReviewCount int64   `json:"reviewCount"`
	AvgRating   float64 `json:"avgRating"`
}

// Create records a review awaiting moderation.
func (s *Service) Create(ctx context.Context, profileID, productID pgtype.UUID, rating int32, comment string) (Review, error) {
	if s == nil || s.Q == nil {
		return Review{}, errors.New("reviews: service not configured")
	}
	if rating < 1 || rating > 5 {
		return Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLen {
		return Review{}, fmt.Errorf("%w: comment too long", ErrInvalidInput)
	}
	row, err := s.Q.CreateReview(ctx, dbgen.CreateReviewParams{
		ProductID: productID,
		ProfileID: profileID,
		Rating:    rating,
		Comment:   pgtype.Text{String: comment, Valid: comment != ""},
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Review{}, ErrAlreadyReviewed
		}
		return Review{}, fmt.Errorf("create review: %w", err)
	}
	return Review{
		ID:        uuidString(row.ID),
		Rating:    row.Rating,
		Comment:   nullableText(row.Comment),
		CreatedAt: row.CreatedAt,
	}, nil
}

// ListApproved returns the approved reviews of a product, newest first.
func (s *Service) ListApproved(ctx context.Context, productID pgtype.UUID) ([]Review, error) {
	if s == nil || s.Q == nil {
		return nil, errors.New("reviews: service not configured")
	}
	rows, err := s.Q.ListApprovedReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}
	result := make([]Review, 0, len(rows))
	for _, row := range rows {
		result = append(result, Review{
			ID:           uuidString(row.ID),
			Rating:       row.Rating,
			Comment:      nullableText(row.Comment),
			ReviewerName: row.ReviewerName,
			CreatedAt:    row.CreatedAt,
		})
	}
	return result, nil
}

// Summary returns the approved review aggregate for a product.
func (s *Service) Summary(ctx context.Context, productID pgtype.UUID) (Summary, error) {
	if s == nil || s.Q == nil {
		return Summary{}, errors.New("reviews: service not configured")
	}
	row, err := s.Q.GetReviewSummary(ctx, productID)
	if err != nil {
		return Summary{}, fmt.Errorf("review summary: %w", err)
	}
	return Summary{ReviewCount: row.ReviewCount, AvgRating: row.AvgRating}, nil
}

// ListPending returns the moderation queue, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]PendingReview, error) {
	if s == nil || s.Q == nil {
		return nil, errors.New("reviews: service not configured")
	}
	rows, err := s.Q.ListPendingReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending reviews: %w", err)
	}
	result := make([]PendingReview, 0, len(rows))
	for _, row := range rows {
		result = append(result, PendingReview{
			ID:           uuidString(row.ID),
			ProductID:    uuidString(row.ProductID),
			ProductName:  row.ProductName,
			Rating:       row.Rating,
			Comment:      nullableText(row.Comment),
			ReviewerName: row.ReviewerName,
			CreatedAt:    row.CreatedAt,
		})
	}
	return result, nil
}

// Approve publishes a pending review.
func (s *Service) Approve(ctx context.Context, id pgtype.UUID) error {
	if s == nil || s.Q == nil {
		return errors.New("reviews: service not configured")
	}
	if _, err := s.Q.ApproveReview(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("approve review: %w", err)
	}
	return nil
}

// Delete removes a review entirely.
func (s *Service) Delete(ctx context.Context, id pgtype.UUID) error {
	if s == nil || s.Q == nil {
		return errors.New("reviews: service not configured")
	}
	if err := s.Q.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	u, err := uuid.FromBytes(id.Bytes[:])
	if err != nil {
		return ""
	}
	return u.String()
}

func nullableText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
