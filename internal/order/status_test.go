package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/shop-backend/internal/order"
)

func TestStatusFromName(t *testing.T) {
	for _, s := range order.AllStatuses() {
		got, ok := order.StatusFromName(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := order.StatusFromName("Shipped")
	assert.False(t, ok)

	// Имена чувствительны к регистру: в базе они лежат с заглавной буквы.
	_, ok = order.StatusFromName("approved")
	assert.False(t, ok)
}

func TestStatusLevels(t *testing.T) {
	assert.Equal(t, 1, order.StatusUnapproved.Level())
	assert.Equal(t, 2, order.StatusApproved.Level())
	assert.Equal(t, 3, order.StatusCancelled.Level())
	assert.Equal(t, 4, order.StatusDelivered.Level())
}
