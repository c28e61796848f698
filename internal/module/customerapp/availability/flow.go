package availability

import (
	"net/http"
	"time"

	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

const (
	StateBrowsing          string = "BROWSING"
	StateSelectingQuantity string = "SELECTING_QUANTITY"
	StateReadyForCheckout  string = "READY_FOR_CHECKOUT"
)

// PurchaseFlow walks one customer's path from browsing an event to holding
// a checkout target. The event snapshot is fixed when the flow starts; a
// new flow on a fresh snapshot is the only way to observe inventory
// changes. Not safe for concurrent use.
type PurchaseFlow struct {
	event  event.Event
	state  string
	target string
}

func NewPurchaseFlow(e event.Event) *PurchaseFlow {
	return &PurchaseFlow{
		event: e,
		state: StateBrowsing,
	}
}

func (f *PurchaseFlow) State() string {
	return f.state
}

// AttemptPurchase moves the flow into quantity selection when the event is
// purchasable at the given time. Attempts on sold out or started events
// leave the flow browsing, without error.
func (f *PurchaseFlow) AttemptPurchase(now time.Time) bool {
	if f.state != StateBrowsing {
		return false
	}

	if !CanPurchase(f.event, now) {
		return false
	}

	f.state = StateSelectingQuantity

	return true
}

// ConfirmQuantity fixes the quantity and produces the checkout target. An
// out of range quantity keeps the flow selecting so the caller can prompt
// again.
func (f *PurchaseFlow) ConfirmQuantity(quantity int64) (string, error) {
	if f.state != StateSelectingQuantity {
		return "", errors.New(http.StatusConflict, status.CONFLICT, "quantity can only be confirmed while selecting")
	}

	target, err := BuildCheckoutTarget(f.event, quantity)
	if err != nil {
		return "", err
	}

	f.state = StateReadyForCheckout
	f.target = target

	return target, nil
}

// Cancel abandons quantity selection and returns the flow to browsing. It
// is a no-op in any other state.
func (f *PurchaseFlow) Cancel() {
	if f.state != StateSelectingQuantity {
		return
	}

	f.state = StateBrowsing
}

// CheckoutTarget returns the produced route once the flow is ready for
// checkout, and an empty string before that.
func (f *PurchaseFlow) CheckoutTarget() string {
	return f.target
}
