package dealer

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
)

// AdminHandler serves the back-office dealership review endpoints.
type AdminHandler struct {
	Svc *Service
}

// List handles GET /api/v1/admin/dealer-applications.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	switch status {
	case "", StatusPending, StatusApproved, StatusRejected:
	default:
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unsupported status filter", nil)
		return
	}
	rows, err := h.Svc.List(r.Context(), status)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to list applications", nil)
		return
	}
	response := make([]applicationResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, toResponse(row))
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": response})
}

// Approve handles POST /api/v1/admin/dealer-applications/{id}/approve.
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	app, err := h.Svc.Approve(r.Context(), id)
	if err != nil {
		h.writeDecisionError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": toResponse(app)})
}

// Reject handles POST /api/v1/admin/dealer-applications/{id}/reject.
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	app, err := h.Svc.Reject(r.Context(), id)
	if err != nil {
		h.writeDecisionError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": toResponse(app)})
}

func (h *AdminHandler) pathID(w http.ResponseWriter, r *http.Request) (pgtype.UUID, bool) {
	parsed, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid application id", nil)
		return pgtype.UUID{}, false
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, true
}

func (h *AdminHandler) writeDecisionError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotPending) {
		common.JSONError(w, http.StatusConflict, "INVALID_STATE", "application already decided", nil)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to update application", nil)
}
