package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

type stubQueries struct {
	cart      dbgen.Cart
	cartErr   error
	lines     []dbgen.ListCartLinesRow
	variant   dbgen.ProductVariant
	varErr    error
	item      dbgen.CartItem
	itemErr   error
	created   []dbgen.CreateCartItemParams
	updated   []dbgen.UpdateCartItemQtyParams
	deleted   []dbgen.DeleteCartItemParams
	touched   int
	ownedItem dbgen.CartItem
	ownedErr  error
}

func (s *stubQueries) UpsertActiveCart(context.Context, pgtype.UUID) (dbgen.Cart, error) {
	return s.cart, s.cartErr
}

func (s *stubQueries) GetActiveCartByProfile(context.Context, pgtype.UUID) (dbgen.Cart, error) {
	return s.cart, s.cartErr
}

func (s *stubQueries) ListCartLines(context.Context, pgtype.UUID) ([]dbgen.ListCartLinesRow, error) {
	return s.lines, nil
}

func (s *stubQueries) FindCartItemByVariant(context.Context, dbgen.FindCartItemByVariantParams) (dbgen.CartItem, error) {
	return s.item, s.itemErr
}

func (s *stubQueries) CreateCartItem(_ context.Context, arg dbgen.CreateCartItemParams) (dbgen.CartItem, error) {
	s.created = append(s.created, arg)
	return dbgen.CartItem{CartID: arg.CartID, VariantID: arg.VariantID, Qty: arg.Qty}, nil
}

func (s *stubQueries) UpdateCartItemQty(_ context.Context, arg dbgen.UpdateCartItemQtyParams) (dbgen.CartItem, error) {
	s.updated = append(s.updated, arg)
	return dbgen.CartItem{ID: arg.ID, CartID: arg.CartID, Qty: arg.Qty}, nil
}

func (s *stubQueries) GetCartItemByID(context.Context, dbgen.GetCartItemByIDParams) (dbgen.CartItem, error) {
	return s.ownedItem, s.ownedErr
}

func (s *stubQueries) DeleteCartItem(_ context.Context, arg dbgen.DeleteCartItemParams) error {
	s.deleted = append(s.deleted, arg)
	return nil
}

func (s *stubQueries) GetVariantByID(context.Context, pgtype.UUID) (dbgen.ProductVariant, error) {
	return s.variant, s.varErr
}

func (s *stubQueries) TouchCart(context.Context, pgtype.UUID) error {
	s.touched++
	return nil
}

type stubPriceQueries struct {
	role  string
	batch []dbgen.ListLatestActiveVariantPricesRow
}

func (s *stubPriceQueries) GetProfileRole(context.Context, pgtype.UUID) (string, error) {
	return s.role, nil
}

func (s *stubPriceQueries) GetLatestActiveVariantPrice(context.Context, dbgen.GetLatestActiveVariantPriceParams) (int64, error) {
	return 0, pgx.ErrNoRows
}

func (s *stubPriceQueries) ListLatestActiveVariantPrices(context.Context, dbgen.ListLatestActiveVariantPricesParams) ([]dbgen.ListLatestActiveVariantPricesRow, error) {
	return s.batch, nil
}

func pgUUID(t *testing.T) pgtype.UUID {
	t.Helper()
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func TestAddItemRejectsNonPositiveQty(t *testing.T) {
	svc := &Service{Q: &stubQueries{}}
	err := svc.AddItem(context.Background(), uuid.NewString(), uuid.NewString(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddItemRejectsInactiveVariant(t *testing.T) {
	stub := &stubQueries{variant: dbgen.ProductVariant{IsActive: false}}
	svc := &Service{Q: stub}
	err := svc.AddItem(context.Background(), uuid.NewString(), uuid.NewString(), 1)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, stub.created)
}

func TestAddItemRejectsOutOfStockVariant(t *testing.T) {
	stub := &stubQueries{variant: dbgen.ProductVariant{IsActive: true, Stock: 0}}
	svc := &Service{Q: stub}
	err := svc.AddItem(context.Background(), uuid.NewString(), uuid.NewString(), 1)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, stub.created)
}

func TestAddItemRejectsUnknownVariant(t *testing.T) {
	stub := &stubQueries{varErr: pgx.ErrNoRows}
	svc := &Service{Q: stub}
	err := svc.AddItem(context.Background(), uuid.NewString(), uuid.NewString(), 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddItemCreatesNewLine(t *testing.T) {
	cartID := pgUUID(t)
	stub := &stubQueries{
		cart:    dbgen.Cart{ID: cartID, Status: "active"},
		variant: dbgen.ProductVariant{IsActive: true, Stock: 10},
		itemErr: pgx.ErrNoRows,
	}
	svc := &Service{Q: stub}
	require.NoError(t, svc.AddItem(context.Background(), uuid.NewString(), uuid.NewString(), 3))
	require.Len(t, stub.created, 1)
	assert.Equal(t, int32(3), stub.created[0].Qty)
	assert.Equal(t, 1, stub.touched)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	cartID := pgUUID(t)
	itemID := pgUUID(t)
	stub := &stubQueries{
		cart:    dbgen.Cart{ID: cartID, Status: "active"},
		variant: dbgen.ProductVariant{IsActive: true, Stock: 10},
		item:    dbgen.CartItem{ID: itemID, CartID: cartID, Qty: 2},
	}
	svc := &Service{Q: stub}
	require.NoError(t, svc.AddItem(context.Background(), uuid.NewString(), uuid.NewString(), 3))
	require.Len(t, stub.updated, 1)
	assert.Equal(t, int32(5), stub.updated[0].Qty)
	assert.Empty(t, stub.created)
}

func TestUpdateQtyBelowOneRemovesLine(t *testing.T) {
	cartID := pgUUID(t)
	itemID := pgUUID(t)
	stub := &stubQueries{
		cart:      dbgen.Cart{ID: cartID, Status: "active"},
		ownedItem: dbgen.CartItem{ID: itemID, CartID: cartID, Qty: 2},
	}
	svc := &Service{Q: stub}
	require.NoError(t, svc.UpdateQty(context.Background(), uuid.NewString(), UUIDString(itemID), 0))
	require.Len(t, stub.deleted, 1)
	assert.Empty(t, stub.updated)
}

func TestUpdateQtyMissingItem(t *testing.T) {
	stub := &stubQueries{
		cart:     dbgen.Cart{ID: pgUUID(t), Status: "active"},
		ownedErr: pgx.ErrNoRows,
	}
	svc := &Service{Q: stub}
	err := svc.UpdateQty(context.Background(), uuid.NewString(), uuid.NewString(), 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRenderEmptyWhenNoActiveCart(t *testing.T) {
	stub := &stubQueries{cartErr: pgx.ErrNoRows}
	svc := &Service{Q: stub}
	view, err := svc.Render(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.GrandTotal)
	assert.Equal(t, "TRY", view.Currency)
}

func TestRenderPricesLinesForDealer(t *testing.T) {
	cartID := pgUUID(t)
	variantID := pgUUID(t)
	stub := &stubQueries{
		cart: dbgen.Cart{ID: cartID, Status: "active"},
		lines: []dbgen.ListCartLinesRow{{
			ID:              pgUUID(t),
			CartID:          cartID,
			VariantID:       variantID,
			Qty:             2,
			PvID:            variantID,
			ProductID:       pgUUID(t),
			VariantName:     pgtype.Text{String: "450W Panel", Valid: true},
			BasePrice:       pgtype.Int8{Int64: 45000, Valid: true},
			Stock:           pgtype.Int4{Int32: 10, Valid: true},
			VariantIsActive: pgtype.Bool{Bool: true, Valid: true},
			ProductName:     pgtype.Text{String: "Solar Panel", Valid: true},
			ProductIsActive: pgtype.Bool{Bool: true, Valid: true},
		}},
	}
	prices := &pricing.Resolver{
		Q: &stubPriceQueries{
			role:  "b2b",
			batch: []dbgen.ListLatestActiveVariantPricesRow{{VariantID: variantID, Price: 39900}},
		},
		Log: zerolog.Nop(),
	}
	svc := &Service{Q: stub, Prices: prices}

	view, err := svc.Render(context.Background(), uuid.NewString())
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(39900), view.Lines[0].UnitPrice)
	assert.Equal(t, int64(79800), view.Lines[0].LineTotal)
	assert.Equal(t, int64(79800), view.GrandTotal)
	assert.True(t, view.Lines[0].Available)
}

func TestRenderFlagsMissingVariant(t *testing.T) {
	cartID := pgUUID(t)
	stub := &stubQueries{
		cart: dbgen.Cart{ID: cartID, Status: "active"},
		lines: []dbgen.ListCartLinesRow{{
			ID:        pgUUID(t),
			CartID:    cartID,
			VariantID: pgUUID(t),
			Qty:       1,
			// left join found no variant row
		}},
	}
	svc := &Service{Q: stub}
	view, err := svc.Render(context.Background(), uuid.NewString())
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.False(t, view.Lines[0].Available)
	assert.Equal(t, int64(0), view.Lines[0].LineTotal)
	assert.Equal(t, int64(0), view.GrandTotal)
}
