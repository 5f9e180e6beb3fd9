package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

type fakeQueries struct {
	mu              sync.Mutex
	profilesByEmail map[string]dbgen.Profile
	profilesByID    map[string]dbgen.Profile
	sessionsByToken map[string]dbgen.Session
	sessionsByID    map[string]dbgen.Session
}

func newFakeQueries() *fakeQueries {
	return &fakeQueries{
		profilesByEmail: make(map[string]dbgen.Profile),
		profilesByID:    make(map[string]dbgen.Profile),
		sessionsByToken: make(map[string]dbgen.Session),
		sessionsByID:    make(map[string]dbgen.Session),
	}
}

func (f *fakeQueries) CreateProfile(_ context.Context, arg dbgen.CreateProfileParams) (dbgen.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.profilesByEmail[strings.ToLower(arg.Email)]; exists {
		return dbgen.Profile{}, &pgconn.PgError{Code: "23505", ConstraintName: "profiles_email_key"}
	}
	id := uuid.New()
	now := time.Now()
	profile := dbgen.Profile{
		ID:           pgtype.UUID{Bytes: id, Valid: true},
		Email:        arg.Email,
		FullName:     arg.FullName,
		Role:         "b2c",
		PasswordHash: arg.PasswordHash,
		CreatedAt:    pgTimestamp(now),
		UpdatedAt:    pgTimestamp(now),
	}
	f.profilesByEmail[strings.ToLower(arg.Email)] = profile
	f.profilesByID[id.String()] = profile
	return profile, nil
}

func (f *fakeQueries) GetProfileByEmail(_ context.Context, email string) (dbgen.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profilesByEmail[strings.ToLower(email)]
	if !ok {
		return dbgen.Profile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (f *fakeQueries) GetProfileByID(_ context.Context, id pgtype.UUID) (dbgen.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profilesByID[uuidString(id)]
	if !ok {
		return dbgen.Profile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (f *fakeQueries) GetProfileRole(_ context.Context, id pgtype.UUID) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profilesByID[uuidString(id)]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return profile.Role, nil
}

func (f *fakeQueries) CreateSession(_ context.Context, arg dbgen.CreateSessionParams) (dbgen.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	session := dbgen.Session{
		ID:           pgtype.UUID{Bytes: id, Valid: true},
		ProfileID:    arg.ProfileID,
		RefreshToken: arg.RefreshToken,
		UserAgent:    arg.UserAgent,
		Ip:           arg.Ip,
		ExpiresAt:    arg.ExpiresAt,
		CreatedAt:    pgTimestamp(time.Now()),
	}
	f.sessionsByToken[arg.RefreshToken] = session
	f.sessionsByID[id.String()] = session
	return session, nil
}

func (f *fakeQueries) GetSessionByToken(_ context.Context, token string) (dbgen.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessionsByToken[token]
	if !ok {
		return dbgen.Session{}, pgx.ErrNoRows
	}
	return session, nil
}

func (f *fakeQueries) RotateSessionToken(_ context.Context, arg dbgen.RotateSessionTokenParams) (dbgen.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := uuidString(arg.ID)
	session, ok := f.sessionsByID[key]
	if !ok {
		return dbgen.Session{}, pgx.ErrNoRows
	}
	delete(f.sessionsByToken, session.RefreshToken)
	session.RefreshToken = arg.RefreshToken
	session.ExpiresAt = arg.ExpiresAt
	f.sessionsByID[key] = session
	f.sessionsByToken[arg.RefreshToken] = session
	return session, nil
}

func (f *fakeQueries) DeleteSessionByToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessionsByToken[token]
	if !ok {
		return nil
	}
	delete(f.sessionsByToken, token)
	delete(f.sessionsByID, uuidString(session.ID))
	return nil
}

func (f *fakeQueries) DeleteSessionsByProfile(_ context.Context, profileID pgtype.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := uuidString(profileID)
	for token, session := range f.sessionsByToken {
		if uuidString(session.ProfileID) == key {
			delete(f.sessionsByToken, token)
			delete(f.sessionsByID, uuidString(session.ID))
		}
	}
	return nil
}

func (f *fakeQueries) sessionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessionsByToken)
}

func newTestService(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, queries *fakeQueries) *Service {
	t.Helper()
	svc, err := NewService(Config{Queries: queries, Secret: "super-secret-test-key"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}
