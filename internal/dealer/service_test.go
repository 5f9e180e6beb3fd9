package dealer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

type stubStore struct {
	role       string
	roleErr    error
	pending    *dbgen.DealerApplication
	created    []dbgen.CreateDealerApplicationParams
	updated    []dbgen.UpdateDealerApplicationStatusParams
	updateErr  error
	listStatus []pgtype.Text
}

func (s *stubStore) GetProfileRole(context.Context, pgtype.UUID) (string, error) {
	if s.roleErr != nil {
		return "", s.roleErr
	}
	return s.role, nil
}

func (s *stubStore) GetPendingApplicationByProfile(context.Context, pgtype.UUID) (dbgen.DealerApplication, error) {
	if s.pending == nil {
		return dbgen.DealerApplication{}, pgx.ErrNoRows
	}
	return *s.pending, nil
}

func (s *stubStore) CreateDealerApplication(_ context.Context, arg dbgen.CreateDealerApplicationParams) (dbgen.DealerApplication, error) {
	s.created = append(s.created, arg)
	return dbgen.DealerApplication{
		ID:          newID(),
		ProfileID:   arg.ProfileID,
		CompanyName: arg.CompanyName,
		Status:      StatusPending,
	}, nil
}

func (s *stubStore) GetDealerApplication(context.Context, pgtype.UUID) (dbgen.DealerApplication, error) {
	return dbgen.DealerApplication{}, pgx.ErrNoRows
}

func (s *stubStore) ListDealerApplications(_ context.Context, status pgtype.Text) ([]dbgen.DealerApplication, error) {
	s.listStatus = append(s.listStatus, status)
	return nil, nil
}

func (s *stubStore) UpdateDealerApplicationStatus(_ context.Context, arg dbgen.UpdateDealerApplicationStatusParams) (dbgen.DealerApplication, error) {
	if s.updateErr != nil {
		return dbgen.DealerApplication{}, s.updateErr
	}
	s.updated = append(s.updated, arg)
	return dbgen.DealerApplication{ID: arg.ID, Status: arg.Status}, nil
}

type stubGranter struct {
	app dbgen.DealerApplication
	err error
}

func (g *stubGranter) Approve(context.Context, pgtype.UUID) (dbgen.DealerApplication, error) {
	return g.app, g.err
}

func newID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func validInput() ApplicationInput {
	return ApplicationInput{
		CompanyName: "Orbis Enerji Bayi A.Ş.",
		ContactName: "Ayşe Yılmaz",
		Email:       "bayi@example.com",
		Phone:       "+905551112233",
		TaxNumber:   "1234567890",
		City:        "İzmir",
	}
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	stub := &stubStore{role: "b2c"}
	svc := &Service{Q: stub}

	app, err := svc.Apply(context.Background(), newID(), validInput())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, app.Status)
	require.Len(t, stub.created, 1)
	assert.Equal(t, "Orbis Enerji Bayi A.Ş.", stub.created[0].CompanyName)
}

func TestApplyRejectsSecondPendingApplication(t *testing.T) {
	stub := &stubStore{role: "b2c", pending: &dbgen.DealerApplication{Status: StatusPending}}
	svc := &Service{Q: stub}

	_, err := svc.Apply(context.Background(), newID(), validInput())
	assert.ErrorIs(t, err, ErrAlreadyPending)
	assert.Empty(t, stub.created)
}

func TestApplyRejectsExistingDealer(t *testing.T) {
	stub := &stubStore{role: "b2b"}
	svc := &Service{Q: stub}

	_, err := svc.Apply(context.Background(), newID(), validInput())
	assert.ErrorIs(t, err, ErrAlreadyDealer)
	assert.Empty(t, stub.created)
}

func TestApplyAllowsUnknownProfileRole(t *testing.T) {
	// Missing profile rows resolve to the retail audience and may still apply.
	stub := &stubStore{roleErr: pgx.ErrNoRows}
	svc := &Service{Q: stub}

	_, err := svc.Apply(context.Background(), newID(), validInput())
	require.NoError(t, err)
	assert.Len(t, stub.created, 1)
}

func TestRejectMapsDecidedApplication(t *testing.T) {
	stub := &stubStore{updateErr: pgx.ErrNoRows}
	svc := &Service{Q: stub}

	_, err := svc.Reject(context.Background(), newID())
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestRejectMarksApplication(t *testing.T) {
	stub := &stubStore{}
	svc := &Service{Q: stub}

	app, err := svc.Reject(context.Background(), newID())
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, app.Status)
	require.Len(t, stub.updated, 1)
	assert.Equal(t, StatusRejected, stub.updated[0].Status)
}

func TestApproveDelegatesToGranter(t *testing.T) {
	granted := dbgen.DealerApplication{ID: newID(), Status: StatusApproved}
	svc := &Service{Q: &stubStore{}, Granter: &stubGranter{app: granted}}

	app, err := svc.Approve(context.Background(), granted.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, app.Status)
}

func TestApprovePropagatesNotPending(t *testing.T) {
	svc := &Service{Q: &stubStore{}, Granter: &stubGranter{err: ErrNotPending}}

	_, err := svc.Approve(context.Background(), newID())
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestStatusNotFound(t *testing.T) {
	svc := &Service{Q: &stubStore{}}

	_, err := svc.Status(context.Background(), newID())
	assert.ErrorIs(t, err, ErrNotFound)
}
