package dealer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

// Application review outcomes.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	// ErrAlreadyPending means the profile already has an application awaiting review.
	ErrAlreadyPending = errors.New("dealer: application already pending")
	// ErrAlreadyDealer means the profile already holds the dealer role.
	ErrAlreadyDealer = errors.New("dealer: profile is already a dealer")
	// ErrNotPending means the application was already decided or does not exist.
	ErrNotPending = errors.New("dealer: application is not pending")
	// ErrNotFound means the application does not exist.
	ErrNotFound = errors.New("dealer: application not found")
)

type store interface {
	GetProfileRole(ctx context.Context, id pgtype.UUID) (string, error)
	GetPendingApplicationByProfile(ctx context.Context, profileID pgtype.UUID) (dbgen.DealerApplication, error)
	CreateDealerApplication(ctx context.Context, arg dbgen.CreateDealerApplicationParams) (dbgen.DealerApplication, error)
	GetDealerApplication(ctx context.Context, id pgtype.UUID) (dbgen.DealerApplication, error)
	ListDealerApplications(ctx context.Context, status pgtype.Text) ([]dbgen.DealerApplication, error)
	UpdateDealerApplicationStatus(ctx context.Context, arg dbgen.UpdateDealerApplicationStatusParams) (dbgen.DealerApplication, error)
}

// RoleGranter approves an application and grants the dealer role in one
// atomic step.
type RoleGranter interface {
	Approve(ctx context.Context, applicationID pgtype.UUID) (dbgen.DealerApplication, error)
}

// ApplicationInput carries the fields of a dealership request.
type ApplicationInput struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	TaxNumber   string
	City        string
}

// Service manages dealer applications. A profile can hold at most one
// pending application; approval upgrades the profile to the dealer audience.
type Service struct {
	Q       store
	Granter RoleGranter
	Log     zerolog.Logger
}

// Apply files a dealership request for the profile.
func (s *Service) Apply(ctx context.Context, profileID pgtype.UUID, input ApplicationInput) (dbgen.DealerApplication, error) {
	if s == nil || s.Q == nil {
		return dbgen.DealerApplication{}, errors.New("dealer: service not configured")
	}
	role, err := s.Q.GetProfileRole(ctx, profileID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return dbgen.DealerApplication{}, fmt.Errorf("get profile role: %w", err)
	}
	if pricing.ParseRole(role).Dealer() {
		return dbgen.DealerApplication{}, ErrAlreadyDealer
	}
	if _, err := s.Q.GetPendingApplicationByProfile(ctx, profileID); err == nil {
		return dbgen.DealerApplication{}, ErrAlreadyPending
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return dbgen.DealerApplication{}, fmt.Errorf("check pending application: %w", err)
	}
	app, err := s.Q.CreateDealerApplication(ctx, dbgen.CreateDealerApplicationParams{
		ProfileID:   profileID,
		CompanyName: input.CompanyName,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		TaxNumber:   input.TaxNumber,
		City:        input.City,
	})
	if err != nil {
		return dbgen.DealerApplication{}, fmt.Errorf("create dealer application: %w", err)
	}
	s.Log.Info().
		Str("application_id", uuidString(app.ID)).
		Str("company", app.CompanyName).
		Msg("dealer application received")
	return app, nil
}

// Status returns the profile's pending application, if any.
func (s *Service) Status(ctx context.Context, profileID pgtype.UUID) (dbgen.DealerApplication, error) {
	if s == nil || s.Q == nil {
		return dbgen.DealerApplication{}, errors.New("dealer: service not configured")
	}
	app, err := s.Q.GetPendingApplicationByProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dbgen.DealerApplication{}, ErrNotFound
		}
		return dbgen.DealerApplication{}, fmt.Errorf("get pending application: %w", err)
	}
	return app, nil
}

// List returns applications, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]dbgen.DealerApplication, error) {
	if s == nil || s.Q == nil {
		return nil, errors.New("dealer: service not configured")
	}
	filter := pgtype.Text{}
	if status != "" {
		filter = pgtype.Text{String: status, Valid: true}
	}
	rows, err := s.Q.ListDealerApplications(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list dealer applications: %w", err)
	}
	return rows, nil
}

// Approve grants the dealer role. The status flip and the role change commit
// together or not at all.
func (s *Service) Approve(ctx context.Context, applicationID pgtype.UUID) (dbgen.DealerApplication, error) {
	if s == nil || s.Granter == nil {
		return dbgen.DealerApplication{}, errors.New("dealer: role granter not configured")
	}
	app, err := s.Granter.Approve(ctx, applicationID)
	if err != nil {
		return dbgen.DealerApplication{}, err
	}
	s.Log.Info().
		Str("application_id", uuidString(app.ID)).
		Str("profile_id", uuidString(app.ProfileID)).
		Msg("dealer application approved")
	return app, nil
}

// Reject marks a pending application as rejected. The profile keeps its
// current role.
func (s *Service) Reject(ctx context.Context, applicationID pgtype.UUID) (dbgen.DealerApplication, error) {
	if s == nil || s.Q == nil {
		return dbgen.DealerApplication{}, errors.New("dealer: service not configured")
	}
	app, err := s.Q.UpdateDealerApplicationStatus(ctx, dbgen.UpdateDealerApplicationStatusParams{
		ID:     applicationID,
		Status: StatusRejected,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dbgen.DealerApplication{}, ErrNotPending
		}
		return dbgen.DealerApplication{}, fmt.Errorf("reject dealer application: %w", err)
	}
	return app, nil
}
