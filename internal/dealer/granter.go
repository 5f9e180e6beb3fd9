package dealer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

// TxGranter approves an application and upgrades the profile role inside a
// single transaction.
type TxGranter struct {
	Q    *dbgen.Queries
	Pool *pgxpool.Pool
}

// Approve flips the application to approved and the profile to the dealer
// role. A decided application returns ErrNotPending untouched.
func (g *TxGranter) Approve(ctx context.Context, applicationID pgtype.UUID) (dbgen.DealerApplication, error) {
	if g == nil || g.Q == nil || g.Pool == nil {
		return dbgen.DealerApplication{}, errors.New("dealer: granter not configured")
	}
	tx, err := g.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return dbgen.DealerApplication{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	qtx := g.Q.WithTx(tx)
	app, err := qtx.UpdateDealerApplicationStatus(ctx, dbgen.UpdateDealerApplicationStatusParams{
		ID:     applicationID,
		Status: StatusApproved,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dbgen.DealerApplication{}, ErrNotPending
		}
		return dbgen.DealerApplication{}, fmt.Errorf("approve application: %w", err)
	}
	if err := qtx.UpdateProfileRole(ctx, dbgen.UpdateProfileRoleParams{
		ID:   app.ProfileID,
		Role: string(pricing.RoleB2B),
	}); err != nil {
		return dbgen.DealerApplication{}, fmt.Errorf("grant dealer role: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return dbgen.DealerApplication{}, fmt.Errorf("commit tx: %w", err)
	}
	return app, nil
}
