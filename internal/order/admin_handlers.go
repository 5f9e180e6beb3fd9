package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// Order lifecycle states. Checkout creates orders in StatusPendingPayment;
// everything after that is driven by the back office, except the customer
// cancel which is only valid before payment.
const (
	StatusPendingPayment = "pending_payment"
	StatusPaid           = "paid"
	StatusShipped        = "shipped"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// AdminHandler provides administrative order management endpoints.
type AdminHandler struct {
	Q *dbgen.Queries
}

type patchStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/v1/admin/orders with an optional status filter.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order queries not configured", nil)
		return
	}
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && statusRank(status) == unknownStatus {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unsupported status filter", nil)
		return
	}
	filter := pgtype.Text{}
	if status != "" {
		filter = pgtype.Text{String: status, Valid: true}
	}
	page, perPage := common.ParsePagination(r, 20)
	if perPage > 100 {
		perPage = 100
	}
	offset := int32((page - 1) * perPage)

	total, err := h.Q.CountOrdersAdmin(r.Context(), filter)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to count orders", nil)
		return
	}
	orders, err := h.Q.ListOrdersAdmin(r.Context(), dbgen.ListOrdersAdminParams{
		Status:      filter,
		OffsetValue: offset,
		LimitValue:  int32(perPage),
	})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to list orders", nil)
		return
	}
	response := make([]map[string]any, 0, len(orders))
	for _, ord := range orders {
		entry := orderSummary(ord)
		entry["id"] = uuidString(ord.ID)
		entry["profileId"] = uuidString(ord.ProfileID)
		response = append(response, entry)
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

// Get handles GET /api/v1/admin/orders/{id}.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order queries not configured", nil)
		return
	}
	oID, err := parseUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid order id", nil)
		return
	}
	ord, err := h.Q.GetOrderByID(r.Context(), oID)
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
	detail := orderDetail(ord, items)
	detail["id"] = uuidString(ord.ID)
	detail["profileId"] = uuidString(ord.ProfileID)
	common.JSON(w, http.StatusOK, map[string]any{"data": detail})
}

// PatchStatus handles PATCH /api/v1/admin/orders/{id}/status. Transitions
// only move forward; cancelled is terminal.
func (h *AdminHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order queries not configured", nil)
		return
	}
	oID, err := parseUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid order id", nil)
		return
	}
	var req patchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	target := strings.TrimSpace(req.Status)
	if target == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "status is required", nil)
		return
	}
	if statusRank(target) == unknownStatus || target == StatusPendingPayment {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unsupported status", nil)
		return
	}
	ord, err := h.Q.GetOrderByID(r.Context(), oID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "order not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load order", nil)
		return
	}
	if !canTransition(ord.Status, target) {
		common.JSONError(w, http.StatusConflict, "INVALID_STATE", "state transition not allowed", nil)
		return
	}
	updated, err := h.Q.UpdateOrderStatus(r.Context(), dbgen.UpdateOrderStatusParams{ID: oID, Status: target})
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to update order status", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{"orderNo": updated.OrderNo, "status": updated.Status}})
}

const (
	unknownStatus  = -2
	terminalStatus = -1
)

func statusRank(status string) int {
	switch status {
	case StatusPendingPayment:
		return 0
	case StatusPaid:
		return 1
	case StatusShipped:
		return 2
	case StatusDelivered:
		return 3
	case StatusCancelled:
		return terminalStatus
	default:
		return unknownStatus
	}
}

func canTransition(current, target string) bool {
	cur, tgt := statusRank(current), statusRank(target)
	if cur == unknownStatus || tgt == unknownStatus {
		return false
	}
	if cur == terminalStatus {
		return false
	}
	if tgt == terminalStatus {
		// Cancellation is allowed any time before the order ships.
		return cur < statusRank(StatusShipped)
	}
	return tgt > cur
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
	u, err := uuid.FromBytes(id.Bytes[:])
	if err != nil {
		return ""
	}
	return u.String()
}
