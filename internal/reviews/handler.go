package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// productResolver maps storefront slugs to product rows. Review URLs are
// slug-addressed like the rest of the catalog.
type productResolver interface {
	GetProductBySlug(ctx context.Context, slug string) (dbgen.GetProductBySlugRow, error)
}

// Handler serves the storefront review endpoints.
type Handler struct {
	Svc      *Service
	Products productResolver
}

type createReviewRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

// Create handles POST /api/v1/products/{slug}/reviews. The review enters the
// moderation queue and is not visible until approved.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(r.Context())
	if !ok || userID == "" {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return
	}
	pID, err := toUUID(userID)
	if err != nil {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return
	}
	productID, ok := h.resolveProduct(w, r)
	if !ok {
		return
	}
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	review, err := h.Svc.Create(r.Context(), pID, productID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		if errors.Is(err, ErrAlreadyReviewed) {
			common.JSONError(w, http.StatusConflict, "ALREADY_REVIEWED", "you have already reviewed this product", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to create review", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": review, "status": "pending_approval"})
}

// List handles GET /api/v1/products/{slug}/reviews.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.resolveProduct(w, r)
	if !ok {
		return
	}
	rows, err := h.Svc.ListApproved(r.Context(), productID)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to list reviews", nil)
		return
	}
	summary, err := h.Svc.Summary(r.Context(), productID)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load review summary", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": rows, "summary": summary})
}

func (h *Handler) resolveProduct(w http.ResponseWriter, r *http.Request) (pgtype.UUID, bool) {
	if h.Products == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "review handler not configured", nil)
		return pgtype.UUID{}, false
	}
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "product slug is required", nil)
		return pgtype.UUID{}, false
	}
	product, err := h.Products.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
			return pgtype.UUID{}, false
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load product", nil)
		return pgtype.UUID{}, false
	}
	if !product.IsActive {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
		return pgtype.UUID{}, false
	}
	return product.ID, true
}

func toUUID(value string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}
