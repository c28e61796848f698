package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
)

var testNow = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

func makeEvent(availableSeats int64, date time.Time) event.Event {
	return event.Event{
		ID:             "EVENT-1757900000",
		Title:          "Dream Theater Live In Concert",
		Venue:          "Gelora Bung Karno",
		Location:       "Jakarta",
		Date:           date,
		Price:          750000,
		TotalSeats:     1000,
		AvailableSeats: availableSeats,
		Status:         event.StatusPublished,
	}
}

func TestCanPurchase(t *testing.T) {
	upcoming := testNow.Add(48 * time.Hour)
	passed := testNow.Add(-48 * time.Hour)

	tests := []struct {
		name     string
		seats    int64
		date     time.Time
		expected bool
	}{
		{"upcoming event with seats", 120, upcoming, true},
		{"upcoming event with a single seat", 1, upcoming, true},
		{"sold out event", 0, upcoming, false},
		{"event that has already started", 120, passed, false},
		{"sold out event that has already started", 0, passed, false},
		{"event starting at this exact moment", 120, testNow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := makeEvent(tt.seats, tt.date)
			assert.Equal(t, tt.expected, CanPurchase(e, testNow))
		})
	}
}

func TestMaxSelectableQuantity(t *testing.T) {
	upcoming := testNow.Add(48 * time.Hour)

	tests := []struct {
		seats    int64
		expected int64
	}{
		{120, 10},
		{11, 10},
		{10, 10},
		{9, 9},
		{3, 3},
		{1, 1},
		{0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d seats", tt.seats), func(t *testing.T) {
			e := makeEvent(tt.seats, upcoming)
			assert.Equal(t, tt.expected, MaxSelectableQuantity(e))
		})
	}
}

func TestComputeTotal(t *testing.T) {
	upcoming := testNow.Add(48 * time.Hour)

	t.Run("total is the unit price times the quantity", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		total, err := ComputeTotal(e, 4)
		require.NoError(t, err)
		assert.Equal(t, float64(3000000), total)
	})

	t.Run("a single seat costs the unit price", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		total, err := ComputeTotal(e, 1)
		require.NoError(t, err)
		assert.Equal(t, e.Price, total)
	})

	t.Run("the selectable maximum is still valid", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		total, err := ComputeTotal(e, MaxSelectableQuantity(e))
		require.NoError(t, err)
		assert.Equal(t, float64(7500000), total)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		_, err := ComputeTotal(e, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		_, err := ComputeTotal(e, -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("one past the selectable maximum is rejected", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		_, err := ComputeTotal(e, MaxSelectableQuantity(e)+1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("low inventory lowers the bound below the cap", func(t *testing.T) {
		e := makeEvent(3, upcoming)

		total, err := ComputeTotal(e, 3)
		require.NoError(t, err)
		assert.Equal(t, float64(2250000), total)

		_, err = ComputeTotal(e, 4)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("sold out event has no valid quantity", func(t *testing.T) {
		e := makeEvent(0, upcoming)

		_, err := ComputeTotal(e, 1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestBuildCheckoutTarget(t *testing.T) {
	upcoming := testNow.Add(48 * time.Hour)

	t.Run("target carries the event id and quantity", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		target, err := BuildCheckoutTarget(e, 2)
		require.NoError(t, err)
		assert.Equal(t, "/checkout/EVENT-1757900000?quantity=2", target)
	})

	t.Run("quantity bound matches the total computation", func(t *testing.T) {
		e := makeEvent(5, upcoming)

		for quantity := int64(-1); quantity <= 7; quantity++ {
			_, totalErr := ComputeTotal(e, quantity)
			_, targetErr := BuildCheckoutTarget(e, quantity)

			if totalErr != nil {
				assert.ErrorIs(t, targetErr, ErrInvalidQuantity, "quantity %d", quantity)
			} else {
				assert.NoError(t, targetErr, "quantity %d", quantity)
			}
		}
	})

	t.Run("out of range quantity is rejected", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		_, err := BuildCheckoutTarget(e, 11)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("built target parses back to its inputs", func(t *testing.T) {
		e := makeEvent(120, upcoming)

		for quantity := int64(1); quantity <= MaxSelectableQuantity(e); quantity++ {
			target, err := BuildCheckoutTarget(e, quantity)
			require.NoError(t, err)

			eventID, parsed, err := ParseCheckoutTarget(target)
			require.NoError(t, err)
			assert.Equal(t, e.ID, eventID)
			assert.Equal(t, quantity, parsed)
		}
	})
}

func TestParseCheckoutTarget(t *testing.T) {
	t.Run("well formed target", func(t *testing.T) {
		eventID, quantity, err := ParseCheckoutTarget("/checkout/EVENT-1757900000?quantity=4")
		require.NoError(t, err)
		assert.Equal(t, "EVENT-1757900000", eventID)
		assert.Equal(t, int64(4), quantity)
	})

	tests := []struct {
		name   string
		target string
	}{
		{"wrong route", "/orders/EVENT-1757900000?quantity=4"},
		{"missing event id", "/checkout/?quantity=4"},
		{"missing quantity", "/checkout/EVENT-1757900000"},
		{"zero quantity", "/checkout/EVENT-1757900000?quantity=0"},
		{"negative quantity", "/checkout/EVENT-1757900000?quantity=-2"},
		{"malformed quantity", "/checkout/EVENT-1757900000?quantity=two"},
		{"empty target", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCheckoutTarget(tt.target)
			assert.Error(t, err)
		})
	}
}
