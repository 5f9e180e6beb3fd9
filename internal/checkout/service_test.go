package checkout

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

type stubStore struct {
	cart    dbgen.Cart
	cartErr error
	lines   []dbgen.ListCartLinesRow
	addr    dbgen.Address
	addrErr error
}

func (s *stubStore) GetActiveCartByProfile(context.Context, pgtype.UUID) (dbgen.Cart, error) {
	return s.cart, s.cartErr
}

func (s *stubStore) ListCartLines(context.Context, pgtype.UUID) ([]dbgen.ListCartLinesRow, error) {
	return s.lines, nil
}

func (s *stubStore) GetAddressForProfile(context.Context, dbgen.GetAddressForProfileParams) (dbgen.Address, error) {
	return s.addr, s.addrErr
}

type stubResolver struct {
	role       pricing.Role
	overlay    map[pgtype.UUID]pricing.Money
	roleCalls  int
	priceCalls int
}

func (s *stubResolver) ResolveRole(context.Context, pgtype.UUID) pricing.Role {
	s.roleCalls++
	return s.role
}

func (s *stubResolver) UnitPrices(_ context.Context, role pricing.Role, variants map[pgtype.UUID]pricing.Money) (map[pgtype.UUID]pricing.Money, error) {
	s.priceCalls++
	out := make(map[pgtype.UUID]pricing.Money, len(variants))
	for id, base := range variants {
		out[id] = base
	}
	if role.Dealer() {
		for id, p := range s.overlay {
			out[id] = p
		}
	}
	return out, nil
}

type stubCommitter struct {
	inputs []CommitInput
	order  dbgen.Order
	err    error
}

func (s *stubCommitter) Commit(_ context.Context, in CommitInput) (dbgen.Order, error) {
	s.inputs = append(s.inputs, in)
	if s.err != nil {
		return dbgen.Order{}, s.err
	}
	order := s.order
	order.ProfileID = in.ProfileID
	order.Currency = in.Currency
	order.Subtotal = in.Summary.Subtotal
	order.GrandTotal = in.Summary.Total
	order.Status = "pending_payment"
	return order, nil
}

func pgUUID(t *testing.T) pgtype.UUID {
	t.Helper()
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func goodLine(t *testing.T, qty, stock int32, base int64) dbgen.ListCartLinesRow {
	t.Helper()
	vID := pgUUID(t)
	return dbgen.ListCartLinesRow{
		ID:              pgUUID(t),
		VariantID:       vID,
		Qty:             qty,
		PvID:            vID,
		ProductID:       pgUUID(t),
		VariantName:     pgtype.Text{String: "450W", Valid: true},
		Sku:             pgtype.Text{String: "PNL-450", Valid: true},
		BasePrice:       pgtype.Int8{Int64: base, Valid: true},
		Stock:           pgtype.Int4{Int32: stock, Valid: true},
		VariantIsActive: pgtype.Bool{Bool: true, Valid: true},
		ProductName:     pgtype.Text{String: "Solar Panel", Valid: true},
		ProductIsActive: pgtype.Bool{Bool: true, Valid: true},
	}
}

func newService(store *stubStore, resolver *stubResolver, committer *stubCommitter) *Service {
	return &Service{
		Q:        store,
		Prices:   resolver,
		Commits:  committer,
		Currency: "TRY",
		Log:      zerolog.Nop(),
	}
}

func TestSubmitHappyPathRetail(t *testing.T) {
	line := goodLine(t, 2, 10, 45000)
	store := &stubStore{
		cart:  dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines: []dbgen.ListCartLinesRow{line},
		addr:  dbgen.Address{ID: pgUUID(t), FullName: "Ayşe Yılmaz", City: "İzmir"},
	}
	resolver := &stubResolver{role: pricing.RoleB2C}
	committer := &stubCommitter{order: dbgen.Order{OrderNo: "ORB-20261234"}}
	svc := newService(store, resolver, committer)

	out, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, "ORB-20261234", out.OrderNo)
	assert.Equal(t, "pending_payment", out.Status)
	assert.Equal(t, int64(90000), out.Subtotal)
	assert.Equal(t, out.Subtotal, out.GrandTotal)

	require.Len(t, committer.inputs, 1)
	in := committer.inputs[0]
	require.Len(t, in.Items, 1)
	assert.Equal(t, int64(45000), in.Items[0].UnitPrice)
	assert.Equal(t, int64(90000), in.Items[0].LineTotal)
	assert.Equal(t, "Solar Panel - 450W", in.Items[0].ProductName)
	assert.Equal(t, int64(0), in.Summary.Discount)
	assert.Equal(t, int64(0), in.Summary.Shipping)
	assert.Contains(t, string(in.ShippingAddress), "İzmir")
}

func TestSubmitDealerUsesListPrices(t *testing.T) {
	line := goodLine(t, 2, 10, 45000)
	store := &stubStore{
		cart:  dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines: []dbgen.ListCartLinesRow{line},
		addr:  dbgen.Address{ID: pgUUID(t)},
	}
	resolver := &stubResolver{
		role:    pricing.RoleB2B,
		overlay: map[pgtype.UUID]pricing.Money{line.PvID: 39900},
	}
	committer := &stubCommitter{order: dbgen.Order{OrderNo: "ORB-20265678"}}
	svc := newService(store, resolver, committer)

	out, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, int64(79800), out.GrandTotal)
	require.Len(t, committer.inputs, 1)
	assert.Equal(t, int64(39900), committer.inputs[0].Items[0].UnitPrice)
}

func TestSubmitAbortsOnMissingVariant(t *testing.T) {
	missing := dbgen.ListCartLinesRow{
		ID:        pgUUID(t),
		VariantID: pgUUID(t),
		Qty:       1,
	}
	store := &stubStore{
		cart:  dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines: []dbgen.ListCartLinesRow{goodLine(t, 1, 5, 100), missing},
		addr:  dbgen.Address{ID: pgUUID(t)},
	}
	committer := &stubCommitter{}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, committer)

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	var abort *AbortError
	require.ErrorAs(t, err, &abort)
	require.Len(t, abort.Failures, 1)
	assert.Equal(t, ReasonMissingVariant, abort.Failures[0].Reason)
	assert.Empty(t, committer.inputs, "aborted checkout must not reach the committer")
}

func TestSubmitAbortsOnInactiveVariant(t *testing.T) {
	line := goodLine(t, 1, 5, 100)
	line.VariantIsActive = pgtype.Bool{Bool: false, Valid: true}
	store := &stubStore{
		cart:  dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines: []dbgen.ListCartLinesRow{line},
		addr:  dbgen.Address{ID: pgUUID(t)},
	}
	committer := &stubCommitter{}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, committer)

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	var abort *AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, ReasonInactive, abort.Failures[0].Reason)
	assert.Empty(t, committer.inputs)
}

func TestSubmitAbortsOnStockShortage(t *testing.T) {
	line := goodLine(t, 5, 2, 100)
	store := &stubStore{
		cart:  dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines: []dbgen.ListCartLinesRow{line},
		addr:  dbgen.Address{ID: pgUUID(t)},
	}
	committer := &stubCommitter{}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, committer)

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	var abort *AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, ReasonInsufficientStock, abort.Failures[0].Reason)
	assert.Equal(t, 5, abort.Failures[0].Requested)
	assert.Equal(t, 2, abort.Failures[0].Available)
	assert.Empty(t, committer.inputs)
}

func TestSubmitCollectsAllFailures(t *testing.T) {
	inactive := goodLine(t, 1, 5, 100)
	inactive.ProductIsActive = pgtype.Bool{Bool: false, Valid: true}
	short := goodLine(t, 9, 1, 100)
	store := &stubStore{
		cart:  dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines: []dbgen.ListCartLinesRow{inactive, short},
		addr:  dbgen.Address{ID: pgUUID(t)},
	}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, &stubCommitter{})

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	var abort *AbortError
	require.ErrorAs(t, err, &abort)
	require.Len(t, abort.Failures, 2)
	assert.Equal(t, ReasonInactive, abort.Failures[0].Reason)
	assert.Equal(t, ReasonInsufficientStock, abort.Failures[1].Reason)
}

func TestSubmitEmptyCart(t *testing.T) {
	store := &stubStore{
		cart: dbgen.Cart{ID: pgUUID(t), Status: "active"},
		addr: dbgen.Address{ID: pgUUID(t)},
	}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, &stubCommitter{})

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmitNoActiveCart(t *testing.T) {
	store := &stubStore{cartErr: pgx.ErrNoRows}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, &stubCommitter{})

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	require.ErrorIs(t, err, ErrNoActiveCart)
}

func TestSubmitUnknownAddress(t *testing.T) {
	store := &stubStore{
		cart:    dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines:   []dbgen.ListCartLinesRow{goodLine(t, 1, 5, 100)},
		addrErr: pgx.ErrNoRows,
	}
	committer := &stubCommitter{}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, committer)

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	require.ErrorIs(t, err, ErrAddressNotFound)
	assert.Empty(t, committer.inputs)
}

func TestSubmitPropagatesCommitFailure(t *testing.T) {
	store := &stubStore{
		cart:  dbgen.Cart{ID: pgUUID(t), Status: "active"},
		lines: []dbgen.ListCartLinesRow{goodLine(t, 1, 5, 100)},
		addr:  dbgen.Address{ID: pgUUID(t)},
	}
	committer := &stubCommitter{err: ErrCartClosed}
	svc := newService(store, &stubResolver{role: pricing.RoleB2C}, committer)

	_, err := svc.Submit(context.Background(), uuid.NewString(), Input{AddressID: uuid.NewString()})
	require.ErrorIs(t, err, ErrCartClosed)
}

func TestNewOrderNoFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pattern := regexp.MustCompile(`^ORB-2026\d{4}$`)
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		no := NewOrderNo(now, rng)
		assert.Regexp(t, pattern, no)
	}
}
