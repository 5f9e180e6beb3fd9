package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orbisenerji/backend-store/internal/common"
)

type Handler struct {
	Svc *Service
}

// Submit processes a checkout for the authenticated profile.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	profileID, ok := common.UserID(r.Context())
	if !ok || profileID == "" {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return
	}
	var payload Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if payload.AddressID == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "addressId is required", nil)
		return
	}
	out, err := h.Svc.Submit(r.Context(), profileID, payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": out})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if err == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unknown error", nil)
		return
	}
	var abort *AbortError
	if errors.As(err, &abort) {
		common.JSONError(w, http.StatusConflict, "CHECKOUT_ABORTED", "cart failed validation", map[string]any{"failures": abort.Failures})
		return
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusBadRequest
		}
		code := appErr.Code
		if code == "" {
			code = "BAD_REQUEST"
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	switch {
	case errors.Is(err, ErrNoActiveCart), errors.Is(err, ErrEmptyCart):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	case errors.Is(err, ErrAddressNotFound):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	case errors.Is(err, ErrCartClosed):
		common.JSONError(w, http.StatusConflict, "CART_CLOSED", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}
