package pricing

// Money represents a monetary value stored in kuruş (minor units of TRY).
type Money = int64

// Role is the pricing audience a profile belongs to.
type Role string

const (
	RoleB2C   Role = "b2c"
	RoleB2B   Role = "b2b"
	RoleAdmin Role = "admin"
)

// ParseRole maps a stored role string onto a Role. Unknown values pass
// through unchanged; Dealer is the only gate that unlocks list pricing, so
// an unrecognised role prices like retail. Empty strings fall back to b2c.
func ParseRole(s string) Role {
	if s == "" {
		return RoleB2C
	}
	return Role(s)
}

// Dealer reports whether the role is entitled to dealer price lists.
func (r Role) Dealer() bool {
	return r == RoleB2B
}

// Line describes a cart line used for totals calculation.
type Line struct {
	Qty       int
	UnitPrice Money
}

// Summary aggregates computed cart totals.
type Summary struct {
	Subtotal Money
	Discount Money
	Shipping Money
	Total    Money
}

// Compute calculates cart totals from resolved unit prices. Lines with a
// non-positive quantity do not contribute. Discount and shipping are carried
// as explicit zeroes so order rows always record every component.
func Compute(lines []Line) Summary {
	var subtotal Money
	for _, ln := range lines {
		if ln.Qty <= 0 {
			continue
		}
		subtotal += Money(ln.Qty) * ln.UnitPrice
	}
	return Summary{
		Subtotal: subtotal,
		Discount: 0,
		Shipping: 0,
		Total:    subtotal,
	}
}
