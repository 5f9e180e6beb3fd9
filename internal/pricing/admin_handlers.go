package pricing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// AdminHandler exposes price list management endpoints.
type AdminHandler struct {
	Q        *dbgen.Queries
	Validate *validator.Validate
}

type priceListResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Kind     string `json:"kind"`
}

type createPriceListRequest struct {
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
	Kind     string `json:"kind" validate:"required,oneof=b2b b2c"`
}

type priceEntryResponse struct {
	VariantID   string `json:"variantId"`
	VariantName string `json:"variantName"`
	ProductName string `json:"productName"`
	Sku         string `json:"sku,omitempty"`
	BasePrice   int64  `json:"basePrice"`
	Price       *int64 `json:"price"`
	IsActive    bool   `json:"isActive"`
}

type upsertPriceRequest struct {
	VariantID string `json:"variantId" validate:"required,uuid"`
	Price     int64  `json:"price" validate:"gt=0"`
}

// List returns every configured price list.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Q.ListPriceLists(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load price lists", nil)
		return
	}
	out := make([]priceListResponse, 0, len(lists))
	for _, pl := range lists {
		out = append(out, priceListResponse{ID: pl.ID, Name: pl.Name, Currency: pl.Currency, Kind: pl.Kind})
	}
	common.JSON(w, http.StatusOK, map[string]any{"priceLists": out})
}

// Create registers a new price list.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPriceListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid price list", validationDetails(err))
		return
	}
	pl, err := h.Q.CreatePriceList(r.Context(), dbgen.CreatePriceListParams{
		Name:     req.Name,
		Currency: req.Currency,
		Kind:     req.Kind,
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to create price list", nil)
		return
	}
	common.JSON(w, http.StatusCreated, priceListResponse{ID: pl.ID, Name: pl.Name, Currency: pl.Currency, Kind: pl.Kind})
}

// Entries returns the full variant grid for one price list, including
// variants that have no entry yet so the back office can fill the gaps.
func (h *AdminHandler) Entries(w http.ResponseWriter, r *http.Request) {
	id := int64(common.AtoiDefault(chi.URLParam(r, "id"), 0))
	if id <= 0 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid price list id", nil)
		return
	}
	pl, err := h.Q.GetPriceListByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "price list not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load price list", nil)
		return
	}
	rows, err := h.Q.ListPriceListEntries(r.Context(), pl.ID)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load entries", nil)
		return
	}
	out := make([]priceEntryResponse, 0, len(rows))
	for _, row := range rows {
		entry := priceEntryResponse{
			VariantID:   uuidString(row.VariantID),
			VariantName: row.VariantName,
			ProductName: row.ProductName,
			Sku:         row.Sku.String,
			BasePrice:   row.BasePrice,
		}
		if row.Price.Valid {
			price := row.Price.Int64
			entry.Price = &price
			entry.IsActive = row.PriceIsActive.Bool
		}
		out = append(out, entry)
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"priceList": priceListResponse{ID: pl.ID, Name: pl.Name, Currency: pl.Currency, Kind: pl.Kind},
		"entries":   out,
	})
}

// UpsertEntry creates or replaces the price for a variant on the list.
// A replaced entry becomes the newest one, so it wins future lookups.
func (h *AdminHandler) UpsertEntry(w http.ResponseWriter, r *http.Request) {
	id := int64(common.AtoiDefault(chi.URLParam(r, "id"), 0))
	if id <= 0 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid price list id", nil)
		return
	}
	var req upsertPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid price entry", validationDetails(err))
		return
	}
	vID, err := parseUUID(req.VariantID)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid variant id", nil)
		return
	}
	vp, err := h.Q.UpsertVariantPrice(r.Context(), dbgen.UpsertVariantPriceParams{
		VariantID:   vID,
		PriceListID: id,
		Price:       req.Price,
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to save price", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"variantId": uuidString(vp.VariantID),
		"price":     vp.Price,
		"isActive":  vp.IsActive,
	})
}

// DeactivateEntry disables the price for a variant on the list without
// removing the row, so history stays queryable.
func (h *AdminHandler) DeactivateEntry(w http.ResponseWriter, r *http.Request) {
	id := int64(common.AtoiDefault(chi.URLParam(r, "id"), 0))
	if id <= 0 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid price list id", nil)
		return
	}
	vID, err := parseUUID(chi.URLParam(r, "variantId"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid variant id", nil)
		return
	}
	if err := h.Q.DeactivateVariantPrice(r.Context(), dbgen.DeactivateVariantPriceParams{VariantID: vID, PriceListID: id}); err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to deactivate price", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validationDetails(err error) any {
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

func parseUUID(value string) (pgtype.UUID, error) {
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
