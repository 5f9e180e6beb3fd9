package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/cart"
	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// AdminHandler exposes catalog management endpoints for the back office.
type AdminHandler struct {
	Q        *dbgen.Queries
	Cache    *Cache
	Validate *validator.Validate
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
	CategoryID  *string `json:"categoryId"`
	IsActive    *bool   `json:"isActive"`
}

type variantRequest struct {
	Name       string          `json:"name" validate:"required"`
	Sku        *string         `json:"sku"`
	BasePrice  int64           `json:"basePrice" validate:"gt=0"`
	Stock      int32           `json:"stock" validate:"gte=0"`
	IsActive   *bool           `json:"isActive"`
	Attributes json.RawMessage `json:"attributes"`
}

type categoryRequest struct {
	Name      string  `json:"name" validate:"required"`
	Slug      string  `json:"slug" validate:"required"`
	ParentID  *string `json:"parentId"`
	SortOrder int32   `json:"sortOrder"`
}

type imageRequest struct {
	Url       string `json:"url" validate:"required,url"`
	SortOrder int32  `json:"sortOrder"`
}

// CreateProduct handles POST /api/v1/admin/products.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}
	catID, ok := h.optionalUUID(w, req.CategoryID, "categoryId")
	if !ok {
		return
	}
	product, err := h.Q.CreateProduct(r.Context(), dbgen.CreateProductParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: optionalTextPtr(req.Description),
		CategoryID:  catID,
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to create product", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"id": uuidString(product.ID), "slug": product.Slug})
}

// UpdateProduct handles PUT /api/v1/admin/products/{id}.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	pID, err := cart.ToUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}
	catID, ok := h.optionalUUID(w, req.CategoryID, "categoryId")
	if !ok {
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	product, err := h.Q.UpdateProduct(r.Context(), dbgen.UpdateProductParams{
		ID:          pID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: optionalTextPtr(req.Description),
		CategoryID:  catID,
		IsActive:    active,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to update product", nil)
		return
	}
	h.invalidateDetail(r, product.Slug)
	common.JSON(w, http.StatusOK, map[string]any{"id": uuidString(product.ID), "slug": product.Slug, "isActive": product.IsActive})
}

// CreateVariant handles POST /api/v1/admin/products/{id}/variants.
func (h *AdminHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	pID, err := cart.ToUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	var req variantRequest
	if !h.decode(w, r, &req) {
		return
	}
	variant, err := h.Q.CreateVariant(r.Context(), dbgen.CreateVariantParams{
		ProductID:  pID,
		Name:       req.Name,
		Sku:        optionalTextPtr(req.Sku),
		BasePrice:  req.BasePrice,
		Stock:      req.Stock,
		Attributes: req.Attributes,
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to create variant", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"id": uuidString(variant.ID)})
}

// UpdateVariant handles PUT /api/v1/admin/variants/{id}.
func (h *AdminHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	vID, err := cart.ToUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid variant id", nil)
		return
	}
	var req variantRequest
	if !h.decode(w, r, &req) {
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	variant, err := h.Q.UpdateVariant(r.Context(), dbgen.UpdateVariantParams{
		ID:        vID,
		Name:      req.Name,
		Sku:       optionalTextPtr(req.Sku),
		BasePrice: req.BasePrice,
		Stock:     req.Stock,
		IsActive:  active,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "variant not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to update variant", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"id": uuidString(variant.ID), "isActive": variant.IsActive})
}

// CreateCategory handles POST /api/v1/admin/categories.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	parentID, ok := h.optionalUUID(w, req.ParentID, "parentId")
	if !ok {
		return
	}
	category, err := h.Q.CreateCategory(r.Context(), dbgen.CreateCategoryParams{
		Name:      req.Name,
		Slug:      req.Slug,
		ParentID:  parentID,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to create category", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"id": uuidString(category.ID), "slug": category.Slug})
}

// AddImage handles POST /api/v1/admin/products/{id}/images.
func (h *AdminHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	pID, err := cart.ToUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	var req imageRequest
	if !h.decode(w, r, &req) {
		return
	}
	image, err := h.Q.CreateProductImage(r.Context(), dbgen.CreateProductImageParams{
		ProductID: pID,
		Url:       req.Url,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to add image", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"id": uuidString(image.ID)})
}

func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(dst); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid payload", validationFields(err))
			return false
		}
	}
	return true
}

func (h *AdminHandler) optionalUUID(w http.ResponseWriter, value *string, field string) (pgtype.UUID, bool) {
	if value == nil || *value == "" {
		return pgtype.UUID{}, true
	}
	id, err := cart.ToUUID(*value)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid "+field, nil)
		return pgtype.UUID{}, false
	}
	return id, true
}

func (h *AdminHandler) invalidateDetail(r *http.Request, slug string) {
	if h.Cache == nil {
		return
	}
	_ = h.Cache.Delete(r.Context(), detailCacheKey(slug))
}

func optionalTextPtr(v *string) pgtype.Text {
	if v == nil || *v == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *v, Valid: true}
}

func validationFields(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
