package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
)

// Handler serves the account endpoints.
type Handler struct {
	Svc *Service
}

type updateProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type addressRequest struct {
	Kind        string `json:"kind"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	City        string `json:"city"`
	District    string `json:"district"`
	AddressLine string `json:"addressLine"`
	PostalCode  string `json:"postalCode"`
}

// Me handles GET /api/v1/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	profile, err := h.Svc.Me(r.Context(), pID)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": profile})
}

// UpdateMe handles PUT /api/v1/me.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	profile, err := h.Svc.UpdateMe(r.Context(), pID, req.FullName, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": profile})
}

// ListAddresses handles GET /api/v1/me/addresses.
func (h *Handler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	addresses, err := h.Svc.ListAddresses(r.Context(), pID)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": addresses})
}

// CreateAddress handles POST /api/v1/me/addresses.
func (h *Handler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	address, err := h.Svc.CreateAddress(r.Context(), pID, addressInput(req))
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": address})
}

// UpdateAddress handles PUT /api/v1/me/addresses/{id}.
func (h *Handler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	aID, err := toUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "address not found", nil)
		return
	}
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	address, err := h.Svc.UpdateAddress(r.Context(), pID, aID, addressInput(req))
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": address})
}

// DeleteAddress handles DELETE /api/v1/me/addresses/{id}.
func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	aID, err := toUUID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "address not found", nil)
		return
	}
	if err := h.Svc.DeleteAddress(r.Context(), pID, aID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func addressInput(req addressRequest) AddressInput {
	return AddressInput{
		Kind:        req.Kind,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Country:     req.Country,
		City:        req.City,
		District:    req.District,
		AddressLine: req.AddressLine,
		PostalCode:  req.PostalCode,
	}
}

func requireProfile(w http.ResponseWriter, r *http.Request) (pgtype.UUID, bool) {
	userID, ok := common.UserID(r.Context())
	if !ok || userID == "" {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return pgtype.UUID{}, false
	}
	pID, err := toUUID(userID)
	if err != nil {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return pgtype.UUID{}, false
	}
	return pID, true
}

func writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		common.JSONError(w, status, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}
