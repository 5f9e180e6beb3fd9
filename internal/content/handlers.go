package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
)

// Handler serves the public content endpoints.
type Handler struct {
	Svc *Service
}

// Home handles GET /api/v1/content/home.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.Svc.Home(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load home content", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": home})
}

// Legal handles GET /api/v1/content/legal/{slug}.
func (h *Handler) Legal(w http.ResponseWriter, r *http.Request) {
	page, err := h.Svc.Legal(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "page not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load page", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": page})
}

// AdminHandler serves the content management endpoints.
type AdminHandler struct {
	Svc      *Service
	Validate *validator.Validate
}

type upsertLegalRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// UpsertLegal handles PUT /api/v1/admin/content/legal/{slug}.
func (h *AdminHandler) UpsertLegal(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "slug is required", nil)
		return
	}
	var req upsertLegalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "title and body are required", nil)
			return
		}
	}
	page, err := h.Svc.UpsertLegal(r.Context(), slug, req.Title, req.Body)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to save page", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": page})
}

type slideRequest struct {
	Title     string  `json:"title" validate:"required"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  string  `json:"imageUrl" validate:"required,url"`
	LinkURL   *string `json:"linkUrl"`
	SortOrder int32   `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

type collectionRequest struct {
	Title     string  `json:"title" validate:"required"`
	Slug      string  `json:"slug" validate:"required"`
	ImageURL  *string `json:"imageUrl"`
	SortOrder int32   `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

type collectionProductsRequest struct {
	Products []struct {
		ProductID string `json:"productId" validate:"required"`
		SortOrder int32  `json:"sortOrder"`
	} `json:"products"`
}

// ListHeroSlides handles GET /api/v1/admin/content/hero-slides.
func (h *AdminHandler) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Svc.ListSlides(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to list hero slides", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": slides})
}

// CreateHeroSlide handles POST /api/v1/admin/content/hero-slides.
func (h *AdminHandler) CreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeSlide(w, r)
	if !ok {
		return
	}
	slide, err := h.Svc.CreateSlide(r.Context(), in)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to create hero slide", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": slide})
}

// UpdateHeroSlide handles PUT /api/v1/admin/content/hero-slides/{id}.
func (h *AdminHandler) UpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid slide id", nil)
		return
	}
	in, ok := h.decodeSlide(w, r)
	if !ok {
		return
	}
	slide, err := h.Svc.UpdateSlide(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "slide not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to update hero slide", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": slide})
}

// DeleteHeroSlide handles DELETE /api/v1/admin/content/hero-slides/{id}.
func (h *AdminHandler) DeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid slide id", nil)
		return
	}
	if err := h.Svc.DeleteSlide(r.Context(), id); err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to delete hero slide", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// ListCollections handles GET /api/v1/admin/content/collections.
func (h *AdminHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.Svc.ListCollections(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to list collections", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": collections})
}

// CreateCollection handles POST /api/v1/admin/content/collections.
func (h *AdminHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeCollection(w, r)
	if !ok {
		return
	}
	collection, err := h.Svc.CreateCollection(r.Context(), in)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to create collection", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": collection})
}

// UpdateCollection handles PUT /api/v1/admin/content/collections/{id}.
func (h *AdminHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid collection id", nil)
		return
	}
	in, ok := h.decodeCollection(w, r)
	if !ok {
		return
	}
	collection, err := h.Svc.UpdateCollection(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "collection not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to update collection", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": collection})
}

// DeleteCollection handles DELETE /api/v1/admin/content/collections/{id}.
func (h *AdminHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid collection id", nil)
		return
	}
	if err := h.Svc.DeleteCollection(r.Context(), id); err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to delete collection", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// SetCollectionProducts handles PUT /api/v1/admin/content/collections/{id}/products.
func (h *AdminHandler) SetCollectionProducts(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid collection id", nil)
		return
	}
	var req collectionProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	products := make([]CollectionProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		pID, err := parseUUID(p.ProductID)
		if err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
			return
		}
		products = append(products, CollectionProductInput{ProductID: pID, SortOrder: p.SortOrder})
	}
	if err := h.Svc.SetCollectionProducts(r.Context(), id, products); err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to save collection products", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"count": len(products)})
}

func (h *AdminHandler) decodeSlide(w http.ResponseWriter, r *http.Request) (SlideInput, bool) {
	var req slideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return SlideInput{}, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "title and a valid image url are required", nil)
			return SlideInput{}, false
		}
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return SlideInput{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		IsActive:  active,
	}, true
}

func (h *AdminHandler) decodeCollection(w http.ResponseWriter, r *http.Request) (CollectionInput, bool) {
	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return CollectionInput{}, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "title and slug are required", nil)
			return CollectionInput{}, false
		}
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return CollectionInput{
		Title:     req.Title,
		Slug:      req.Slug,
		ImageURL:  req.ImageURL,
		SortOrder: req.SortOrder,
		IsActive:  active,
	}, true
}

func pathUUID(r *http.Request, name string) (pgtype.UUID, error) {
	return parseUUID(chi.URLParam(r, name))
}

func parseUUID(value string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}
