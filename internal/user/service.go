package user

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// Profile is the API-facing account payload.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Address is the API-facing address payload.
type Address struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	FullName    string    `json:"fullName"`
	Phone       string    `json:"phone"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	AddressLine string    `json:"addressLine"`
	PostalCode  string    `json:"postalCode"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AddressInput captures payload for creating or updating an address.
type AddressInput struct {
	Kind        string
	FullName    string
	Phone       string
	Country     string
	City        string
	District    string
	AddressLine string
	PostalCode  string
}

type queryProvider interface {
	GetProfileByID(ctx context.Context, id pgtype.UUID) (dbgen.Profile, error)
	UpdateProfile(ctx context.Context, arg dbgen.UpdateProfileParams) (dbgen.Profile, error)
	ListAddressesByProfile(ctx context.Context, profileID pgtype.UUID) ([]dbgen.Address, error)
	GetAddressForProfile(ctx context.Context, arg dbgen.GetAddressForProfileParams) (dbgen.Address, error)
	CreateAddress(ctx context.Context, arg dbgen.CreateAddressParams) (dbgen.Address, error)
	UpdateAddress(ctx context.Context, arg dbgen.UpdateAddressParams) (dbgen.Address, error)
	DeleteAddress(ctx context.Context, arg dbgen.DeleteAddressParams) error
}

// Service orchestrates profile and address book operations.
type Service struct {
	Q queryProvider
}

// Me returns the caller's profile.
func (s *Service) Me(ctx context.Context, profileID pgtype.UUID) (Profile, error) {
	row, err := s.Q.GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, notFound("profile not found")
		}
		return Profile{}, err
	}
	return convertProfile(row), nil
}

// UpdateMe changes the caller's display name and phone.
func (s *Service) UpdateMe(ctx context.Context, profileID pgtype.UUID, fullName, phone string) (Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return Profile{}, badRequest("fullName is required")
	}
	row, err := s.Q.UpdateProfile(ctx, dbgen.UpdateProfileParams{
		ID:       profileID,
		FullName: fullName,
		Phone:    toText(phone),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, notFound("profile not found")
		}
		return Profile{}, err
	}
	return convertProfile(row), nil
}

// ListAddresses returns the caller's address book, newest first.
func (s *Service) ListAddresses(ctx context.Context, profileID pgtype.UUID) ([]Address, error) {
	rows, err := s.Q.ListAddressesByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	addresses := make([]Address, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, convertAddress(row))
	}
	return addresses, nil
}

// CreateAddress adds an address to the caller's book.
func (s *Service) CreateAddress(ctx context.Context, profileID pgtype.UUID, input AddressInput) (Address, error) {
	if err := validateAddress(&input); err != nil {
		return Address{}, err
	}
	row, err := s.Q.CreateAddress(ctx, dbgen.CreateAddressParams{
		ProfileID:   profileID,
		Kind:        input.Kind,
		FullName:    input.FullName,
		Phone:       input.Phone,
		Country:     input.Country,
		City:        input.City,
		District:    input.District,
		AddressLine: input.AddressLine,
		PostalCode:  input.PostalCode,
	})
	if err != nil {
		return Address{}, err
	}
	return convertAddress(row), nil
}

// UpdateAddress modifies an address owned by the caller.
func (s *Service) UpdateAddress(ctx context.Context, profileID, addressID pgtype.UUID, input AddressInput) (Address, error) {
	if err := validateAddress(&input); err != nil {
		return Address{}, err
	}
	row, err := s.Q.UpdateAddress(ctx, dbgen.UpdateAddressParams{
		ID:          addressID,
		ProfileID:   profileID,
		Kind:        input.Kind,
		FullName:    input.FullName,
		Phone:       input.Phone,
		Country:     input.Country,
		City:        input.City,
		District:    input.District,
		AddressLine: input.AddressLine,
		PostalCode:  input.PostalCode,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Address{}, notFound("address not found")
		}
		return Address{}, err
	}
	return convertAddress(row), nil
}

// DeleteAddress removes an address owned by the caller.
func (s *Service) DeleteAddress(ctx context.Context, profileID, addressID pgtype.UUID) error {
	if _, err := s.Q.GetAddressForProfile(ctx, dbgen.GetAddressForProfileParams{ID: addressID, ProfileID: profileID}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound("address not found")
		}
		return err
	}
	return s.Q.DeleteAddress(ctx, dbgen.DeleteAddressParams{ID: addressID, ProfileID: profileID})
}

func validateAddress(input *AddressInput) error {
	input.Kind = strings.TrimSpace(strings.ToLower(input.Kind))
	if input.Kind == "" {
		input.Kind = "shipping"
	}
	if input.Kind != "shipping" && input.Kind != "billing" {
		return badRequest("kind must be shipping or billing")
	}
	input.FullName = strings.TrimSpace(input.FullName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Country = strings.TrimSpace(input.Country)
	input.City = strings.TrimSpace(input.City)
	input.District = strings.TrimSpace(input.District)
	input.AddressLine = strings.TrimSpace(input.AddressLine)
	input.PostalCode = strings.TrimSpace(input.PostalCode)
	switch {
	case input.FullName == "":
		return badRequest("fullName is required")
	case input.Phone == "":
		return badRequest("phone is required")
	case input.City == "":
		return badRequest("city is required")
	case input.AddressLine == "":
		return badRequest("addressLine is required")
	}
	if input.Country == "" {
		input.Country = "TR"
	}
	return nil
}

func convertProfile(row dbgen.Profile) Profile {
	return Profile{
		ID:        uuidString(row.ID),
		Email:     row.Email,
		FullName:  row.FullName,
		Phone:     textToString(row.Phone),
		Role:      row.Role,
		CreatedAt: timeFromPG(row.CreatedAt),
	}
}

func convertAddress(row dbgen.Address) Address {
	return Address{
		ID:          uuidString(row.ID),
		Kind:        row.Kind,
		FullName:    row.FullName,
		Phone:       row.Phone,
		Country:     row.Country,
		City:        row.City,
		District:    row.District,
		AddressLine: row.AddressLine,
		PostalCode:  row.PostalCode,
		CreatedAt:   timeFromPG(row.CreatedAt),
	}
}

func notFound(message string) *common.AppError {
	return &common.AppError{Code: "NOT_FOUND", Message: message, HTTPStatus: http.StatusNotFound}
}

func badRequest(message string) *common.AppError {
	return &common.AppError{Code: "BAD_REQUEST", Message: message, HTTPStatus: http.StatusBadRequest}
}

func toUUID(value string) (pgtype.UUID, error) {
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

func toText(value string) pgtype.Text {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: trimmed, Valid: true}
}

func textToString(value pgtype.Text) string {
	if !value.Valid {
		return ""
	}
	return value.String
}

func timeFromPG(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
