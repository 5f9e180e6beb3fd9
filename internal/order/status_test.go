package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionMovesForwardOnly(t *testing.T) {
	assert.True(t, canTransition(StatusPendingPayment, StatusPaid))
	assert.True(t, canTransition(StatusPaid, StatusShipped))
	assert.True(t, canTransition(StatusShipped, StatusDelivered))
	assert.True(t, canTransition(StatusPendingPayment, StatusDelivered))

	assert.False(t, canTransition(StatusPaid, StatusPendingPayment))
	assert.False(t, canTransition(StatusDelivered, StatusShipped))
	assert.False(t, canTransition(StatusPaid, StatusPaid))
}

func TestCanTransitionCancellation(t *testing.T) {
	assert.True(t, canTransition(StatusPendingPayment, StatusCancelled))
	assert.True(t, canTransition(StatusPaid, StatusCancelled))

	assert.False(t, canTransition(StatusShipped, StatusCancelled))
	assert.False(t, canTransition(StatusDelivered, StatusCancelled))
	assert.False(t, canTransition(StatusCancelled, StatusPaid))
	assert.False(t, canTransition(StatusCancelled, StatusCancelled))
}

func TestStatusRankRejectsUnknown(t *testing.T) {
	assert.Equal(t, unknownStatus, statusRank("packed"))
	assert.False(t, canTransition(StatusPaid, "packed"))
	assert.False(t, canTransition("packed", StatusPaid))
}
