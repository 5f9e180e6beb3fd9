package checkout

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orbisenerji/backend-store/internal/cart"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// ErrCartClosed is returned when the cart was converted or abandoned by a
// concurrent submission before this one could commit.
var ErrCartClosed = errors.New("cart is no longer active")

const orderNoAttempts = 5

// TxCommitter writes the order snapshot in a single database transaction:
// order header, order items, stock decrements and cart conversion all
// commit together or not at all.
type TxCommitter struct {
	Q    *dbgen.Queries
	Pool *pgxpool.Pool
	Now  func() time.Time
	Rand *rand.Rand
}

func (c *TxCommitter) now() time.Time {
	if c != nil && c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *TxCommitter) rng() *rand.Rand {
	if c != nil && c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Commit implements Committer. Colliding order numbers retry the whole
// transaction with a fresh number since a failed insert poisons the tx.
func (c *TxCommitter) Commit(ctx context.Context, in CommitInput) (dbgen.Order, error) {
	if c == nil || c.Q == nil || c.Pool == nil {
		return dbgen.Order{}, errors.New("checkout committer not configured")
	}
	var lastErr error
	for attempt := 0; attempt < orderNoAttempts; attempt++ {
		order, err := c.commitOnce(ctx, in, NewOrderNo(c.now(), c.rng()))
		if err == nil {
			return order, nil
		}
		if isUniqueViolation(err) {
			lastErr = err
			continue
		}
		return dbgen.Order{}, err
	}
	return dbgen.Order{}, lastErr
}

func (c *TxCommitter) commitOnce(ctx context.Context, in CommitInput, orderNo string) (dbgen.Order, error) {
	tx, err := c.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return dbgen.Order{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	qtx := c.Q.WithTx(tx)

	order, err := qtx.CreateOrder(ctx, dbgen.CreateOrderParams{
		OrderNo:         orderNo,
		ProfileID:       in.ProfileID,
		Status:          "pending_payment",
		Currency:        in.Currency,
		Subtotal:        in.Summary.Subtotal,
		DiscountTotal:   in.Summary.Discount,
		ShippingTotal:   in.Summary.Shipping,
		GrandTotal:      in.Summary.Total,
		ShippingAddress: in.ShippingAddress,
	})
	if err != nil {
		return dbgen.Order{}, err
	}
	for _, it := range in.Items {
		affected, err := qtx.DecrementVariantStock(ctx, dbgen.DecrementVariantStockParams{
			ID:  it.VariantID,
			Qty: it.Qty,
		})
		if err != nil {
			return dbgen.Order{}, err
		}
		if affected == 0 {
			// stock moved between validation and commit
			return dbgen.Order{}, &AbortError{Failures: []LineFailure{{
				VariantID: cart.UUIDString(it.VariantID),
				Reason:    ReasonInsufficientStock,
				Requested: int(it.Qty),
			}}}
		}
		if _, err := qtx.CreateOrderItem(ctx, dbgen.CreateOrderItemParams{
			OrderID:     order.ID,
			ProductID:   it.ProductID,
			VariantID:   it.VariantID,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			ProductName: it.ProductName,
			Sku:         it.Sku,
			Attributes:  it.Attributes,
		}); err != nil {
			return dbgen.Order{}, err
		}
	}
	converted, err := qtx.ConvertCart(ctx, in.CartID)
	if err != nil {
		return dbgen.Order{}, err
	}
	if converted == 0 {
		return dbgen.Order{}, ErrCartClosed
	}
	if err := tx.Commit(ctx); err != nil {
		return dbgen.Order{}, err
	}
	return order, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
