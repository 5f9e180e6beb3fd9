package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

// ErrNotFound indicates the requested cart or item could not be located.
var ErrNotFound = errors.New("cart not found")

// ErrInvalidInput is returned when the provided payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// queryProvider is the subset of generated queries the cart service needs.
type queryProvider interface {
	UpsertActiveCart(ctx context.Context, profileID pgtype.UUID) (dbgen.Cart, error)
	GetActiveCartByProfile(ctx context.Context, profileID pgtype.UUID) (dbgen.Cart, error)
	ListCartLines(ctx context.Context, cartID pgtype.UUID) ([]dbgen.ListCartLinesRow, error)
	FindCartItemByVariant(ctx context.Context, arg dbgen.FindCartItemByVariantParams) (dbgen.CartItem, error)
	CreateCartItem(ctx context.Context, arg dbgen.CreateCartItemParams) (dbgen.CartItem, error)
	UpdateCartItemQty(ctx context.Context, arg dbgen.UpdateCartItemQtyParams) (dbgen.CartItem, error)
	GetCartItemByID(ctx context.Context, arg dbgen.GetCartItemByIDParams) (dbgen.CartItem, error)
	DeleteCartItem(ctx context.Context, arg dbgen.DeleteCartItemParams) error
	GetVariantByID(ctx context.Context, id pgtype.UUID) (dbgen.ProductVariant, error)
	TouchCart(ctx context.Context, id pgtype.UUID) error
}

// Service encapsulates cart domain operations. Carts are always bound to an
// authenticated profile and there is at most one active cart per profile.
type Service struct {
	Q      queryProvider
	Prices *pricing.Resolver
}

// LineView is a priced rendering of one cart line.
type LineView struct {
	ItemID      string        `json:"itemId"`
	VariantID   string        `json:"variantId"`
	ProductID   string        `json:"productId,omitempty"`
	ProductName string        `json:"productName,omitempty"`
	VariantName string        `json:"variantName,omitempty"`
	Sku         string        `json:"sku,omitempty"`
	Qty         int           `json:"qty"`
	UnitPrice   pricing.Money `json:"unitPrice"`
	LineTotal   pricing.Money `json:"lineTotal"`
	Stock       int           `json:"stock"`
	Available   bool          `json:"available"`
}

// View is the priced cart returned to clients. Unit prices reflect the
// caller's audience at read time, never a value frozen when the line was added.
type View struct {
	CartID     string          `json:"cartId"`
	Lines      []LineView      `json:"lines"`
	Subtotal   pricing.Money   `json:"subtotal"`
	GrandTotal pricing.Money   `json:"grandTotal"`
	Currency   string          `json:"currency"`
}

// EnsureCart loads or creates the active cart for a profile.
func (s *Service) EnsureCart(ctx context.Context, profileID string) (dbgen.Cart, error) {
	if s == nil || s.Q == nil {
		return dbgen.Cart{}, errors.New("cart service not configured")
	}
	pID, err := toUUID(profileID)
	if err != nil {
		return dbgen.Cart{}, fmt.Errorf("parse profile id: %w", err)
	}
	return s.Q.UpsertActiveCart(ctx, pID)
}

// AddItem inserts or increments a cart line for the given variant.
func (s *Service) AddItem(ctx context.Context, profileID, variantID string, qty int) error {
	if s == nil || s.Q == nil {
		return errors.New("cart service not configured")
	}
	if qty <= 0 {
		return fmt.Errorf("qty must be positive: %w", ErrInvalidInput)
	}
	vID, err := toUUID(variantID)
	if err != nil {
		return fmt.Errorf("parse variant id: %w", err)
	}
	variant, err := s.Q.GetVariantByID(ctx, vID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("variant not found: %w", ErrInvalidInput)
		}
		return err
	}
	if !variant.IsActive {
		return fmt.Errorf("variant is not available: %w", ErrInvalidInput)
	}
	if variant.Stock <= 0 {
		return fmt.Errorf("variant is out of stock: %w", ErrInvalidInput)
	}
	crt, err := s.EnsureCart(ctx, profileID)
	if err != nil {
		return err
	}
	item, err := s.Q.FindCartItemByVariant(ctx, dbgen.FindCartItemByVariantParams{CartID: crt.ID, VariantID: vID})
	if err == nil {
		if _, err := s.Q.UpdateCartItemQty(ctx, dbgen.UpdateCartItemQtyParams{
			ID:     item.ID,
			CartID: crt.ID,
			Qty:    item.Qty + int32(qty),
		}); err != nil {
			return err
		}
		return s.Q.TouchCart(ctx, crt.ID)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if _, err := s.Q.CreateCartItem(ctx, dbgen.CreateCartItemParams{
		CartID:    crt.ID,
		VariantID: vID,
		Qty:       int32(qty),
	}); err != nil {
		return err
	}
	return s.Q.TouchCart(ctx, crt.ID)
}

// UpdateQty sets the quantity for a cart line. A quantity below one removes
// the line instead of storing a zero.
func (s *Service) UpdateQty(ctx context.Context, profileID, itemID string, qty int) error {
	if s == nil || s.Q == nil {
		return errors.New("cart service not configured")
	}
	if qty < 1 {
		return s.RemoveItem(ctx, profileID, itemID)
	}
	crt, iID, err := s.ownedItem(ctx, profileID, itemID)
	if err != nil {
		return err
	}
	if _, err := s.Q.UpdateCartItemQty(ctx, dbgen.UpdateCartItemQtyParams{
		ID:     iID,
		CartID: crt.ID,
		Qty:    int32(qty),
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.Q.TouchCart(ctx, crt.ID)
}

// RemoveItem deletes a cart line.
func (s *Service) RemoveItem(ctx context.Context, profileID, itemID string) error {
	if s == nil || s.Q == nil {
		return errors.New("cart service not configured")
	}
	crt, iID, err := s.ownedItem(ctx, profileID, itemID)
	if err != nil {
		return err
	}
	if err := s.Q.DeleteCartItem(ctx, dbgen.DeleteCartItemParams{ID: iID, CartID: crt.ID}); err != nil {
		return err
	}
	return s.Q.TouchCart(ctx, crt.ID)
}

// Render loads the profile's active cart and prices every line for the
// profile's current audience.
func (s *Service) Render(ctx context.Context, profileID string) (View, error) {
	if s == nil || s.Q == nil {
		return View{}, errors.New("cart service not configured")
	}
	pID, err := toUUID(profileID)
	if err != nil {
		return View{}, fmt.Errorf("parse profile id: %w", err)
	}
	crt, err := s.Q.GetActiveCartByProfile(ctx, pID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return View{Currency: "TRY", Lines: []LineView{}}, nil
		}
		return View{}, err
	}
	lines, err := s.Q.ListCartLines(ctx, crt.ID)
	if err != nil {
		return View{}, err
	}

	role := pricing.RoleB2C
	if s.Prices != nil {
		role = s.Prices.ResolveRole(ctx, pID)
	}
	bases := make(map[pgtype.UUID]pricing.Money, len(lines))
	for _, ln := range lines {
		if ln.PvID.Valid {
			bases[ln.PvID] = ln.BasePrice.Int64
		}
	}
	prices := bases
	if s.Prices != nil {
		prices, err = s.Prices.UnitPrices(ctx, role, bases)
		if err != nil {
			return View{}, err
		}
	}

	view := View{CartID: uuidString(crt.ID), Currency: "TRY", Lines: make([]LineView, 0, len(lines))}
	var computed []pricing.Line
	for _, ln := range lines {
		lv := LineView{
			ItemID:    uuidString(ln.ID),
			VariantID: uuidString(ln.VariantID),
			Qty:       int(ln.Qty),
		}
		if ln.PvID.Valid {
			lv.ProductID = uuidString(ln.ProductID)
			lv.ProductName = ln.ProductName.String
			lv.VariantName = ln.VariantName.String
			lv.Sku = ln.Sku.String
			lv.Stock = int(ln.Stock.Int32)
			lv.Available = ln.VariantIsActive.Bool && ln.ProductIsActive.Bool && ln.Stock.Int32 >= ln.Qty
			lv.UnitPrice = prices[ln.PvID]
			lv.LineTotal = pricing.Money(ln.Qty) * lv.UnitPrice
			computed = append(computed, pricing.Line{Qty: int(ln.Qty), UnitPrice: lv.UnitPrice})
		}
		view.Lines = append(view.Lines, lv)
	}
	sum := pricing.Compute(computed)
	view.Subtotal = sum.Subtotal
	view.GrandTotal = sum.Total
	return view, nil
}

func (s *Service) ownedItem(ctx context.Context, profileID, itemID string) (dbgen.Cart, pgtype.UUID, error) {
	pID, err := toUUID(profileID)
	if err != nil {
		return dbgen.Cart{}, pgtype.UUID{}, fmt.Errorf("parse profile id: %w", err)
	}
	iID, err := toUUID(itemID)
	if err != nil {
		return dbgen.Cart{}, pgtype.UUID{}, fmt.Errorf("parse item id: %w", err)
	}
	crt, err := s.Q.GetActiveCartByProfile(ctx, pID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dbgen.Cart{}, pgtype.UUID{}, ErrNotFound
		}
		return dbgen.Cart{}, pgtype.UUID{}, err
	}
	if _, err := s.Q.GetCartItemByID(ctx, dbgen.GetCartItemByIDParams{ID: iID, CartID: crt.ID}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dbgen.Cart{}, pgtype.UUID{}, ErrNotFound
		}
		return dbgen.Cart{}, pgtype.UUID{}, err
	}
	return crt, iID, nil
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
	return uuid.UUID(id.Bytes).String()
}

// ToUUID converts a string representation of a UUID into pgtype.UUID.
func ToUUID(value string) (pgtype.UUID, error) {
	return toUUID(value)
}

// UUIDString converts a pgtype.UUID into a canonical string.
func UUIDString(id pgtype.UUID) string {
	return uuidString(id)
}

// UUIDEqual reports whether two UUID values are both valid and identical.
func UUIDEqual(a, b pgtype.UUID) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	return a.Bytes == b.Bytes
}
