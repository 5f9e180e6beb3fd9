package pricing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/obs"
)

// queryProvider is the subset of generated queries the resolver needs.
type queryProvider interface {
	GetProfileRole(ctx context.Context, id pgtype.UUID) (string, error)
	GetLatestActiveVariantPrice(ctx context.Context, arg dbgen.GetLatestActiveVariantPriceParams) (int64, error)
	ListLatestActiveVariantPrices(ctx context.Context, arg dbgen.ListLatestActiveVariantPricesParams) ([]dbgen.ListLatestActiveVariantPricesRow, error)
}

// Resolver decides the unit price a profile pays for a variant. Dealer
// accounts read the b2b price list with the variant base price as fallback;
// everyone else pays the base price without touching the list tables.
type Resolver struct {
	Q   queryProvider
	Log zerolog.Logger
}

// ResolveRole looks up the stored role for a profile. Any failure, including
// a missing profile, degrades to the retail audience so a broken role row can
// never leak dealer prices.
func (r *Resolver) ResolveRole(ctx context.Context, profileID pgtype.UUID) Role {
	if r == nil || r.Q == nil || !profileID.Valid {
		return RoleB2C
	}
	role, err := r.Q.GetProfileRole(ctx, profileID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.Log.Warn().Err(err).Msg("role lookup failed, defaulting to b2c")
		}
		return RoleB2C
	}
	return ParseRole(role)
}

// UnitPrice resolves the price for a single variant given an already resolved
// role and the variant's base price. A failed list lookup is treated as "no
// override found": the caller gets the base price and keeps working, never an
// error that could take down a checkout over a transient pricing read.
func (r *Resolver) UnitPrice(ctx context.Context, role Role, variantID pgtype.UUID, basePrice Money) (Money, error) {
	if !role.Dealer() {
		observeResolution(role, "base")
		return basePrice, nil
	}
	if r == nil || r.Q == nil {
		observeResolution(role, "fallback")
		return basePrice, nil
	}
	price, err := r.Q.GetLatestActiveVariantPrice(ctx, dbgen.GetLatestActiveVariantPriceParams{
		VariantID: variantID,
		Kind:      string(RoleB2B),
	})
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.Log.Warn().Err(err).Msg("variant price lookup failed, falling back to base price")
		}
		observeResolution(role, "fallback")
		return basePrice, nil
	}
	observeResolution(role, "list")
	return price, nil
}

// UnitPrices resolves prices for a batch of variants in one round trip.
// The result maps variant id to unit price; variants without a list entry
// keep their base price, and a failed batch lookup degrades the whole page
// to base prices instead of erroring.
func (r *Resolver) UnitPrices(ctx context.Context, role Role, variants map[pgtype.UUID]Money) (map[pgtype.UUID]Money, error) {
	out := make(map[pgtype.UUID]Money, len(variants))
	for id, base := range variants {
		out[id] = base
	}
	if !role.Dealer() || len(variants) == 0 {
		return out, nil
	}
	if r == nil || r.Q == nil {
		return out, nil
	}
	ids := make([]pgtype.UUID, 0, len(variants))
	for id := range variants {
		ids = append(ids, id)
	}
	rows, err := r.Q.ListLatestActiveVariantPrices(ctx, dbgen.ListLatestActiveVariantPricesParams{
		VariantIds: ids,
		Kind:       string(RoleB2B),
	})
	if err != nil {
		r.Log.Warn().Err(err).Int("variants", len(ids)).Msg("batch price lookup failed, falling back to base prices")
		return out, nil
	}
	for _, row := range rows {
		out[row.VariantID] = row.Price
	}
	return out, nil
}

func observeResolution(role Role, source string) {
	if obs.PriceResolutionTotal == nil {
		return
	}
	obs.PriceResolutionTotal.WithLabelValues(string(role), source).Inc()
}
