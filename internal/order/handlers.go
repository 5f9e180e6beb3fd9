package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/cart"
	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// Handler serves the customer-facing order endpoints. Orders are immutable
// snapshots taken at checkout; customers address them by order number, never
// by internal id.
type Handler struct {
	Q *dbgen.Queries
}

// List handles GET /api/v1/orders.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order queries not configured", nil)
		return
	}
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	page, perPage := common.ParsePagination(r, 20)
	if perPage > 100 {
		perPage = 100
	}
	offset := int32((page - 1) * perPage)

	total, err := h.Q.CountOrdersByProfile(r.Context(), pID)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to count orders", nil)
		return
	}
	orders, err := h.Q.ListOrdersByProfile(r.Context(), dbgen.ListOrdersByProfileParams{
		ProfileID:   pID,
		OffsetValue: offset,
		LimitValue:  int32(perPage),
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to list orders", nil)
		return
	}
	response := make([]map[string]any, 0, len(orders))
	for _, ord := range orders {
		response = append(response, orderSummary(ord))
	}
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	common.JSON(w, http.StatusOK, map[string]any{
		"data": response,
		"pagination": common.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalItems: int(total),
		},
	})
}

// Get handles GET /api/v1/orders/{orderNo}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order queries not configured", nil)
		return
	}
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	ord, err := h.Q.GetOrderByNoForProfile(r.Context(), dbgen.GetOrderByNoForProfileParams{
		OrderNo:   chi.URLParam(r, "orderNo"),
		ProfileID: pID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "order not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load order", nil)
		return
	}
	items, err := h.Q.ListOrderItems(r.Context(), ord.ID)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load order items", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": orderDetail(ord, items)})
}

// Cancel handles POST /api/v1/orders/{orderNo}/cancel. Only orders still
// awaiting payment can be cancelled by the customer.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order queries not configured", nil)
		return
	}
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	ord, err := h.Q.GetOrderByNoForProfile(r.Context(), dbgen.GetOrderByNoForProfileParams{
		OrderNo:   chi.URLParam(r, "orderNo"),
		ProfileID: pID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "order not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order lookup failed", nil)
		return
	}
	if ord.Status != StatusPendingPayment {
		common.JSONError(w, http.StatusConflict, "INVALID_STATE", "only orders awaiting payment can be cancelled", nil)
		return
	}
	updated, err := h.Q.UpdateOrderStatus(r.Context(), dbgen.UpdateOrderStatusParams{ID: ord.ID, Status: StatusCancelled})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to cancel order", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{"orderNo": updated.OrderNo, "status": updated.Status}})
}

func requireProfile(w http.ResponseWriter, r *http.Request) (pgtype.UUID, bool) {
	userID, ok := common.UserID(r.Context())
	if !ok || userID == "" {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return pgtype.UUID{}, false
	}
	pID, err := cart.ToUUID(userID)
	if err != nil {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return pgtype.UUID{}, false
	}
	return pID, true
}

func orderSummary(ord dbgen.Order) map[string]any {
	return map[string]any{
		"orderNo":    ord.OrderNo,
		"status":     ord.Status,
		"currency":   ord.Currency,
		"subtotal":   ord.Subtotal,
		"discount":   ord.DiscountTotal,
		"shipping":   ord.ShippingTotal,
		"grandTotal": ord.GrandTotal,
		"createdAt":  ord.CreatedAt,
	}
}

func orderDetail(ord dbgen.Order, items []dbgen.OrderItem) map[string]any {
	responseItems := make([]map[string]any, 0, len(items))
	for _, it := range items {
		responseItems = append(responseItems, map[string]any{
			"id":          cart.UUIDString(it.ID),
			"productId":   cart.UUIDString(it.ProductID),
			"variantId":   nullableUUID(it.VariantID),
			"productName": it.ProductName,
			"sku":         it.Sku,
			"qty":         it.Qty,
			"unitPrice":   it.UnitPrice,
			"lineTotal":   it.LineTotal,
			"attributes":  jsonValue(it.Attributes),
		})
	}
	detail := orderSummary(ord)
	detail["items"] = responseItems
	detail["shippingAddress"] = jsonValue(ord.ShippingAddress)
	return detail
}

func nullableUUID(v pgtype.UUID) *string {
	if !v.Valid {
		return nil
	}
	s := cart.UUIDString(v)
	return &s
}

func jsonValue(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	clone := make([]byte, len(b))
	copy(clone, b)
	return json.RawMessage(clone)
}
