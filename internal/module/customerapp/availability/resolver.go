package availability

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

// MaxQuantityPerPurchase caps how many seats a single checkout may take,
// regardless of remaining inventory.
const MaxQuantityPerPurchase int64 = 10

// ErrInvalidQuantity rejects quantities outside [1, MaxSelectableQuantity].
var ErrInvalidQuantity = errors.New(http.StatusBadRequest, status.BAD_REQUEST, "invalid quantity")

// CanPurchase reports whether a purchase flow may begin for the event at
// the given time. Sold out events and events whose start has already
// passed are not purchasable.
func CanPurchase(e event.Event, now time.Time) bool {
	if e.AvailableSeats <= 0 {
		return false
	}

	if e.Date.Before(now) {
		return false
	}

	return true
}

// MaxSelectableQuantity returns the largest quantity a customer may select
// for the event. The range is empty when the event is sold out.
func MaxSelectableQuantity(e event.Event) int64 {
	if e.AvailableSeats < MaxQuantityPerPurchase {
		return e.AvailableSeats
	}

	return MaxQuantityPerPurchase
}

// ComputeTotal returns the amount due for taking quantity seats of the
// event at its current unit price.
func ComputeTotal(e event.Event, quantity int64) (float64, error) {
	if quantity < 1 || quantity > MaxSelectableQuantity(e) {
		return 0, ErrInvalidQuantity
	}

	return e.Price * float64(quantity), nil
}

// BuildCheckoutTarget returns the checkout route for the event and
// quantity. The quantity bound is the same one ComputeTotal enforces. The
// route is produced only, never navigated.
func BuildCheckoutTarget(e event.Event, quantity int64) (string, error) {
	if quantity < 1 || quantity > MaxSelectableQuantity(e) {
		return "", ErrInvalidQuantity
	}

	return fmt.Sprintf("/checkout/%s?quantity=%d", e.ID, quantity), nil
}

// ParseCheckoutTarget extracts the event id and quantity back out of a
// route produced by BuildCheckoutTarget.
func ParseCheckoutTarget(target string) (string, int64, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", 0, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "invalid checkout target")
	}

	eventID, found := strings.CutPrefix(u.Path, "/checkout/")
	if !found || eventID == "" {
		return "", 0, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "invalid checkout target")
	}

	quantity, err := strconv.ParseInt(u.Query().Get("quantity"), 10, 64)
	if err != nil || quantity < 1 {
		return "", 0, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "invalid checkout target")
	}

	return eventID, quantity, nil
}
