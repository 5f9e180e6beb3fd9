package dealer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// Handler serves the customer-facing dealership endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type applyRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	ContactName string `json:"contactName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	TaxNumber   string `json:"taxNumber" validate:"required"`
	City        string `json:"city" validate:"required"`
}

type applicationResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TaxNumber   string `json:"taxNumber"`
	City        string `json:"city"`
	Status      string `json:"status"`
	CreatedAt   any    `json:"createdAt"`
}

// Apply handles POST /api/v1/dealer/applications.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid payload", validationFields(err))
			return
		}
	}
	app, err := h.Svc.Apply(r.Context(), pID, ApplicationInput{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		TaxNumber:   req.TaxNumber,
		City:        req.City,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyPending):
			common.JSONError(w, http.StatusConflict, "ALREADY_PENDING", "an application is already awaiting review", nil)
		case errors.Is(err, ErrAlreadyDealer):
			common.JSONError(w, http.StatusConflict, "ALREADY_DEALER", "profile already has dealer access", nil)
		default:
			common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to submit application", nil)
		}
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": toResponse(app)})
}

// Status handles GET /api/v1/dealer/applications/me.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	pID, ok := requireProfile(w, r)
	if !ok {
		return
	}
	app, err := h.Svc.Status(r.Context(), pID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "no pending application", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load application", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": toResponse(app)})
}

func requireProfile(w http.ResponseWriter, r *http.Request) (pgtype.UUID, bool) {
	userID, ok := common.UserID(r.Context())
	if !ok || userID == "" {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return pgtype.UUID{}, false
	}
	parsed, err := uuid.Parse(userID)
	if err != nil {
		common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return pgtype.UUID{}, false
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, true
}

func toResponse(app dbgen.DealerApplication) applicationResponse {
	return applicationResponse{
		ID:          uuidString(app.ID),
		CompanyName: app.CompanyName,
		ContactName: app.ContactName,
		Email:       app.Email,
		Phone:       app.Phone,
		TaxNumber:   app.TaxNumber,
		City:        app.City,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
	}
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
