package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSumsLines(t *testing.T) {
	sum := Compute([]Line{
		{Qty: 2, UnitPrice: 45000},
		{Qty: 1, UnitPrice: 12050},
	})
	assert.Equal(t, Money(102050), sum.Subtotal)
	assert.Equal(t, Money(0), sum.Discount)
	assert.Equal(t, Money(0), sum.Shipping)
	assert.Equal(t, sum.Subtotal, sum.Total)
}

func TestComputeIgnoresNonPositiveQty(t *testing.T) {
	sum := Compute([]Line{
		{Qty: 0, UnitPrice: 45000},
		{Qty: -3, UnitPrice: 45000},
		{Qty: 1, UnitPrice: 100},
	})
	assert.Equal(t, Money(100), sum.Total)
}

func TestComputeEmptyCart(t *testing.T) {
	sum := Compute(nil)
	assert.Equal(t, Money(0), sum.Subtotal)
	assert.Equal(t, Money(0), sum.Total)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleB2B, ParseRole("b2b"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleB2C, ParseRole("b2c"))
	assert.Equal(t, RoleB2C, ParseRole(""))
	assert.True(t, RoleB2B.Dealer())
	assert.False(t, RoleAdmin.Dealer())
}

func TestParseRolePassesUnknownThrough(t *testing.T) {
	role := ParseRole("wholesale")
	assert.Equal(t, Role("wholesale"), role)
	assert.False(t, role.Dealer(), "unrecognised roles must price like retail")
}
