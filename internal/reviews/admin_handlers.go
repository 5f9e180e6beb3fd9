package reviews

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orbisenerji/backend-store/internal/common"
)

// AdminHandler serves the review moderation endpoints.
type AdminHandler struct {
	Svc *Service
}

// ListPending handles GET /api/v1/admin/reviews/pending.
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListPending(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to list pending reviews", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": rows})
}

// Approve handles POST /api/v1/admin/reviews/{id}/approve.
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := toUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid review id", nil)
		return
	}
	if err := h.Svc.Approve(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "review not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to approve review", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/admin/reviews/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := toUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid review id", nil)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to delete review", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
