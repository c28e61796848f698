package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseFlow(t *testing.T) {
	upcoming := testNow.Add(48 * time.Hour)
	passed := testNow.Add(-48 * time.Hour)

	t.Run("new flow starts browsing without a target", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))

		assert.Equal(t, StateBrowsing, flow.State())
		assert.Empty(t, flow.CheckoutTarget())
	})

	t.Run("attempt on a purchasable event moves to quantity selection", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))

		assert.True(t, flow.AttemptPurchase(testNow))
		assert.Equal(t, StateSelectingQuantity, flow.State())
	})

	t.Run("attempt on a sold out event stays browsing", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(0, upcoming))

		assert.False(t, flow.AttemptPurchase(testNow))
		assert.Equal(t, StateBrowsing, flow.State())
	})

	t.Run("attempt on a started event stays browsing", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, passed))

		assert.False(t, flow.AttemptPurchase(testNow))
		assert.Equal(t, StateBrowsing, flow.State())
	})

	t.Run("attempt outside browsing does nothing", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))
		require.True(t, flow.AttemptPurchase(testNow))

		assert.False(t, flow.AttemptPurchase(testNow))
		assert.Equal(t, StateSelectingQuantity, flow.State())
	})

	t.Run("confirming a quantity produces the checkout target", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))
		require.True(t, flow.AttemptPurchase(testNow))

		target, err := flow.ConfirmQuantity(2)
		require.NoError(t, err)
		assert.Equal(t, "/checkout/EVENT-1757900000?quantity=2", target)
		assert.Equal(t, StateReadyForCheckout, flow.State())
		assert.Equal(t, target, flow.CheckoutTarget())
	})

	t.Run("confirming before selecting is a conflict", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))

		_, err := flow.ConfirmQuantity(2)
		assert.Error(t, err)
		assert.Equal(t, StateBrowsing, flow.State())
	})

	t.Run("confirming twice is a conflict", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))
		require.True(t, flow.AttemptPurchase(testNow))

		_, err := flow.ConfirmQuantity(2)
		require.NoError(t, err)

		_, err = flow.ConfirmQuantity(3)
		assert.Error(t, err)
		assert.Equal(t, StateReadyForCheckout, flow.State())
	})

	t.Run("out of range quantity keeps the flow selecting", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(5, upcoming))
		require.True(t, flow.AttemptPurchase(testNow))

		_, err := flow.ConfirmQuantity(6)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, StateSelectingQuantity, flow.State())
		assert.Empty(t, flow.CheckoutTarget())

		target, err := flow.ConfirmQuantity(5)
		require.NoError(t, err)
		assert.Equal(t, "/checkout/EVENT-1757900000?quantity=5", target)
	})

	t.Run("cancel returns a selecting flow to browsing", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))
		require.True(t, flow.AttemptPurchase(testNow))

		flow.Cancel()
		assert.Equal(t, StateBrowsing, flow.State())

		assert.True(t, flow.AttemptPurchase(testNow))
	})

	t.Run("cancel is a no-op while browsing", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))

		flow.Cancel()
		assert.Equal(t, StateBrowsing, flow.State())
	})

	t.Run("cancel is a no-op once ready for checkout", func(t *testing.T) {
		flow := NewPurchaseFlow(makeEvent(120, upcoming))
		require.True(t, flow.AttemptPurchase(testNow))

		_, err := flow.ConfirmQuantity(2)
		require.NoError(t, err)

		flow.Cancel()
		assert.Equal(t, StateReadyForCheckout, flow.State())
	})

	t.Run("inventory drained after the snapshot is not observed", func(t *testing.T) {
		e := makeEvent(120, upcoming)
		flow := NewPurchaseFlow(e)

		e.AvailableSeats = 0

		assert.True(t, flow.AttemptPurchase(testNow))
	})
}
