package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

type stubQueries struct {
	profile    dbgen.Profile
	profileErr error
	created    []dbgen.CreateAddressParams
	updated    []dbgen.UpdateAddressParams
	deleted    []dbgen.DeleteAddressParams
	ownedErr   error
}

func (s *stubQueries) GetProfileByID(context.Context, pgtype.UUID) (dbgen.Profile, error) {
	return s.profile, s.profileErr
}

func (s *stubQueries) UpdateProfile(_ context.Context, arg dbgen.UpdateProfileParams) (dbgen.Profile, error) {
	s.profile.FullName = arg.FullName
	s.profile.Phone = arg.Phone
	return s.profile, s.profileErr
}

func (s *stubQueries) ListAddressesByProfile(context.Context, pgtype.UUID) ([]dbgen.Address, error) {
	return nil, nil
}

func (s *stubQueries) GetAddressForProfile(context.Context, dbgen.GetAddressForProfileParams) (dbgen.Address, error) {
	if s.ownedErr != nil {
		return dbgen.Address{}, s.ownedErr
	}
	return dbgen.Address{}, nil
}

func (s *stubQueries) CreateAddress(_ context.Context, arg dbgen.CreateAddressParams) (dbgen.Address, error) {
	s.created = append(s.created, arg)
	return dbgen.Address{
		ID:          newID(),
		ProfileID:   arg.ProfileID,
		Kind:        arg.Kind,
		FullName:    arg.FullName,
		Phone:       arg.Phone,
		Country:     arg.Country,
		City:        arg.City,
		AddressLine: arg.AddressLine,
	}, nil
}

func (s *stubQueries) UpdateAddress(_ context.Context, arg dbgen.UpdateAddressParams) (dbgen.Address, error) {
	if s.ownedErr != nil {
		return dbgen.Address{}, s.ownedErr
	}
	s.updated = append(s.updated, arg)
	return dbgen.Address{ID: arg.ID, ProfileID: arg.ProfileID, Kind: arg.Kind}, nil
}

func (s *stubQueries) DeleteAddress(_ context.Context, arg dbgen.DeleteAddressParams) error {
	s.deleted = append(s.deleted, arg)
	return nil
}

func newID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func validInput() AddressInput {
	return AddressInput{
		FullName:    "Mehmet Demir",
		Phone:       "+905551112233",
		City:        "İzmir",
		District:    "Bornova",
		AddressLine: "Kazım Dirik Mah. 372 Sk. No:12",
		PostalCode:  "35100",
	}
}

func TestUpdateMeRequiresName(t *testing.T) {
	svc := &Service{Q: &stubQueries{}}

	_, err := svc.UpdateMe(context.Background(), newID(), "   ", "")
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BAD_REQUEST", appErr.Code)
}

func TestCreateAddressDefaults(t *testing.T) {
	stub := &stubQueries{}
	svc := &Service{Q: stub}

	address, err := svc.CreateAddress(context.Background(), newID(), validInput())
	require.NoError(t, err)
	require.Len(t, stub.created, 1)
	assert.Equal(t, "shipping", stub.created[0].Kind)
	assert.Equal(t, "TR", stub.created[0].Country)
	assert.Equal(t, "shipping", address.Kind)
}

func TestCreateAddressRejectsUnknownKind(t *testing.T) {
	stub := &stubQueries{}
	svc := &Service{Q: stub}

	input := validInput()
	input.Kind = "warehouse"
	_, err := svc.CreateAddress(context.Background(), newID(), input)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BAD_REQUEST", appErr.Code)
	assert.Empty(t, stub.created)
}

func TestCreateAddressRequiresCoreFields(t *testing.T) {
	stub := &stubQueries{}
	svc := &Service{Q: stub}

	for _, mutate := range []func(*AddressInput){
		func(i *AddressInput) { i.FullName = "" },
		func(i *AddressInput) { i.Phone = "" },
		func(i *AddressInput) { i.City = "" },
		func(i *AddressInput) { i.AddressLine = "" },
	} {
		input := validInput()
		mutate(&input)
		_, err := svc.CreateAddress(context.Background(), newID(), input)
		require.Error(t, err)
	}
	assert.Empty(t, stub.created)
}

func TestUpdateAddressNotFound(t *testing.T) {
	stub := &stubQueries{ownedErr: pgx.ErrNoRows}
	svc := &Service{Q: stub}

	_, err := svc.UpdateAddress(context.Background(), newID(), newID(), validInput())
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestDeleteAddressChecksOwnership(t *testing.T) {
	stub := &stubQueries{ownedErr: pgx.ErrNoRows}
	svc := &Service{Q: stub}

	err := svc.DeleteAddress(context.Background(), newID(), newID())
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Empty(t, stub.deleted)
}
