package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/orbisenerji/backend-store/internal/cart"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/lock"
	"github.com/orbisenerji/backend-store/internal/obs"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

// Validation failure reasons, ordered by precedence per line.
const (
	ReasonMissingVariant    = "missing_variant"
	ReasonInactive          = "inactive"
	ReasonInsufficientStock = "insufficient_stock"
)

var (
	// ErrNoActiveCart is returned when the profile has no active cart.
	ErrNoActiveCart = errors.New("no active cart")
	// ErrEmptyCart is returned when the active cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAddressNotFound is returned when the shipping address does not
	// belong to the profile.
	ErrAddressNotFound = errors.New("address not found")
)

// LineFailure describes why a single cart line blocked the checkout.
type LineFailure struct {
	ItemID    string `json:"itemId"`
	VariantID string `json:"variantId"`
	Reason    string `json:"reason"`
	Requested int    `json:"requested,omitempty"`
	Available int    `json:"available,omitempty"`
}

// AbortError carries every failing line. A checkout either commits all
// lines or none of them, so one bad line aborts the whole submission.
type AbortError struct {
	Failures []LineFailure
}

func (e *AbortError) Error() string {
	reasons := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		reasons = append(reasons, f.Reason)
	}
	return "checkout aborted: " + strings.Join(reasons, ", ")
}

// store is the subset of generated queries the validator needs.
type store interface {
	GetActiveCartByProfile(ctx context.Context, profileID pgtype.UUID) (dbgen.Cart, error)
	ListCartLines(ctx context.Context, cartID pgtype.UUID) ([]dbgen.ListCartLinesRow, error)
	GetAddressForProfile(ctx context.Context, arg dbgen.GetAddressForProfileParams) (dbgen.Address, error)
}

// priceResolver decides unit prices for the submitting profile.
type priceResolver interface {
	ResolveRole(ctx context.Context, profileID pgtype.UUID) pricing.Role
	UnitPrices(ctx context.Context, role pricing.Role, variants map[pgtype.UUID]pricing.Money) (map[pgtype.UUID]pricing.Money, error)
}

// Committer persists a validated checkout atomically.
type Committer interface {
	Commit(ctx context.Context, in CommitInput) (dbgen.Order, error)
}

// OrderNotifier fans out side effects after an order commits. Implementations
// must be best effort: the order is already durable when this runs.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, order dbgen.Order)
}

// CommitItem is one fully priced order line ready for the snapshot.
type CommitItem struct {
	ProductID   pgtype.UUID
	VariantID   pgtype.UUID
	Qty         int32
	UnitPrice   int64
	LineTotal   int64
	ProductName string
	Sku         string
	Attributes  []byte
}

// CommitInput is everything the committer needs to write the order.
type CommitInput struct {
	CartID          pgtype.UUID
	ProfileID       pgtype.UUID
	Currency        string
	Summary         pricing.Summary
	ShippingAddress []byte
	Items           []CommitItem
}

// Input is the checkout submission payload.
type Input struct {
	AddressID string `json:"addressId"`
}

// Output is returned on a completed checkout.
type Output struct {
	OrderNo    string `json:"orderNo"`
	Status     string `json:"status"`
	Currency   string `json:"currency"`
	Subtotal   int64  `json:"subtotal"`
	GrandTotal int64  `json:"grandTotal"`
}

// Service validates and commits checkouts. Submission runs under a per-cart
// Redis lock so concurrent submits for the same cart serialise; the loser
// finds the cart already converted and fails cleanly.
type Service struct {
	Q        store
	Prices   priceResolver
	Commits  Committer
	Notify   OrderNotifier
	Locker   lock.Locker
	LockTTL  time.Duration
	Currency string
	Log      zerolog.Logger
}

// Submit runs the full checkout: re-read role, cart and lines, validate
// every line, price the cart for the submitting audience and commit the
// order snapshot. Any validation failure aborts with zero side effects.
func (s *Service) Submit(ctx context.Context, profileID string, in Input) (Output, error) {
	if s == nil || s.Q == nil || s.Commits == nil {
		return Output{}, errors.New("checkout service not configured")
	}
	pID, err := cart.ToUUID(profileID)
	if err != nil {
		return Output{}, fmt.Errorf("invalid profile id: %w", err)
	}

	start := time.Now()
	crt, err := s.Q.GetActiveCartByProfile(ctx, pID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Output{}, ErrNoActiveCart
		}
		return Output{}, err
	}

	var out Output
	run := func(ctx context.Context) error {
		out, err = s.submitLocked(ctx, pID, crt.ID, in)
		return err
	}
	if s.Locker.R != nil {
		lockKey := "checkout:cart:" + cart.UUIDString(crt.ID)
		err = s.Locker.WithLock(ctx, lockKey, s.LockTTL, run)
	} else {
		err = run(ctx)
	}
	s.observe(err, time.Since(start))
	if err != nil {
		return Output{}, err
	}
	return out, nil
}

func (s *Service) submitLocked(ctx context.Context, profileID, cartID pgtype.UUID, in Input) (Output, error) {
	addrID, err := cart.ToUUID(in.AddressID)
	if err != nil {
		return Output{}, fmt.Errorf("invalid address id: %w", err)
	}
	addr, err := s.Q.GetAddressForProfile(ctx, dbgen.GetAddressForProfileParams{ID: addrID, ProfileID: profileID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Output{}, ErrAddressNotFound
		}
		return Output{}, err
	}

	// Re-read under the lock so a concurrent conversion is visible.
	crt, err := s.Q.GetActiveCartByProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Output{}, ErrNoActiveCart
		}
		return Output{}, err
	}
	if crt.ID != cartID {
		cartID = crt.ID
	}
	lines, err := s.Q.ListCartLines(ctx, cartID)
	if err != nil {
		return Output{}, err
	}
	if len(lines) == 0 {
		return Output{}, ErrEmptyCart
	}

	var failures []LineFailure
	for _, ln := range lines {
		if f, ok := validateLine(ln); !ok {
			failures = append(failures, f)
		}
	}
	if len(failures) > 0 {
		return Output{}, &AbortError{Failures: failures}
	}

	role := pricing.RoleB2C
	if s.Prices != nil {
		role = s.Prices.ResolveRole(ctx, profileID)
	}
	bases := make(map[pgtype.UUID]pricing.Money, len(lines))
	for _, ln := range lines {
		bases[ln.PvID] = ln.BasePrice.Int64
	}
	prices := bases
	if s.Prices != nil {
		prices, err = s.Prices.UnitPrices(ctx, role, bases)
		if err != nil {
			return Output{}, err
		}
	}

	items := make([]CommitItem, 0, len(lines))
	computed := make([]pricing.Line, 0, len(lines))
	for _, ln := range lines {
		unit := prices[ln.PvID]
		items = append(items, CommitItem{
			ProductID:   ln.ProductID,
			VariantID:   ln.VariantID,
			Qty:         ln.Qty,
			UnitPrice:   unit,
			LineTotal:   int64(ln.Qty) * unit,
			ProductName: productLabel(ln),
			Sku:         ln.Sku.String,
			Attributes:  ln.Attributes,
		})
		computed = append(computed, pricing.Line{Qty: int(ln.Qty), UnitPrice: unit})
	}
	summary := pricing.Compute(computed)

	currency := s.Currency
	if currency == "" {
		currency = "TRY"
	}
	order, err := s.Commits.Commit(ctx, CommitInput{
		CartID:          cartID,
		ProfileID:       profileID,
		Currency:        currency,
		Summary:         summary,
		ShippingAddress: addressSnapshot(addr),
		Items:           items,
	})
	if err != nil {
		return Output{}, err
	}
	if s.Notify != nil {
		s.Notify.OrderCreated(ctx, order)
	}
	s.Log.Info().
		Str("order_no", order.OrderNo).
		Str("cart_id", cart.UUIDString(cartID)).
		Str("audience", string(role)).
		Int64("grand_total", order.GrandTotal).
		Msg("checkout committed")
	return Output{
		OrderNo:    order.OrderNo,
		Status:     order.Status,
		Currency:   order.Currency,
		Subtotal:   order.Subtotal,
		GrandTotal: order.GrandTotal,
	}, nil
}

// validateLine checks one cart line in precedence order: a vanished variant
// masks an inactive flag, which masks a stock shortage.
func validateLine(ln dbgen.ListCartLinesRow) (LineFailure, bool) {
	f := LineFailure{
		ItemID:    cart.UUIDString(ln.ID),
		VariantID: cart.UUIDString(ln.VariantID),
	}
	if !ln.PvID.Valid {
		f.Reason = ReasonMissingVariant
		return f, false
	}
	if !ln.VariantIsActive.Bool || !ln.ProductIsActive.Bool {
		f.Reason = ReasonInactive
		return f, false
	}
	if ln.Stock.Int32 < ln.Qty {
		f.Reason = ReasonInsufficientStock
		f.Requested = int(ln.Qty)
		f.Available = int(ln.Stock.Int32)
		return f, false
	}
	return LineFailure{}, true
}

func productLabel(ln dbgen.ListCartLinesRow) string {
	name := ln.ProductName.String
	if ln.VariantName.String != "" && ln.VariantName.String != name {
		if name == "" {
			return ln.VariantName.String
		}
		return name + " - " + ln.VariantName.String
	}
	return name
}

func addressSnapshot(addr dbgen.Address) []byte {
	b, _ := json.Marshal(map[string]any{
		"fullName":    addr.FullName,
		"phone":       addr.Phone,
		"country":     addr.Country,
		"city":        addr.City,
		"district":    addr.District,
		"addressLine": addr.AddressLine,
		"postalCode":  addr.PostalCode,
	})
	return b
}

func (s *Service) observe(err error, took time.Duration) {
	if obs.CheckoutAttemptTotal == nil {
		return
	}
	result := "completed"
	if err != nil {
		result = "failed"
		var abort *AbortError
		if errors.As(err, &abort) {
			result = "aborted"
			if obs.CheckoutAbortTotal != nil && len(abort.Failures) > 0 {
				obs.CheckoutAbortTotal.WithLabelValues(abort.Failures[0].Reason).Inc()
			}
		}
	}
	obs.CheckoutAttemptTotal.WithLabelValues(result).Inc()
	if obs.CheckoutDuration != nil {
		obs.CheckoutDuration.Observe(float64(took.Milliseconds()))
	}
}

// NewOrderNo builds an order number of the form ORB-<year><4 random digits>.
func NewOrderNo(now time.Time, rng *rand.Rand) string {
	n := 1000 + rng.Intn(9000)
	return fmt.Sprintf("ORB-%d%d", now.Year(), n)
}
