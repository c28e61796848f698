package availability

import (
	"time"

	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
)

type GetAvailabilityResponse struct {
	EventID               string    `json:"event_id"`
	CanPurchase           bool      `json:"can_purchase"`
	SoldOut               bool      `json:"sold_out"`
	EventEnded            bool      `json:"event_ended"`
	AvailableSeats        int64     `json:"available_seats"`
	MaxSelectableQuantity int64     `json:"max_selectable_quantity"`
	UnitPrice             float64   `json:"unit_price"`
	Quantity              *int64    `json:"quantity,omitempty"`
	Total                 *float64  `json:"total,omitempty"`
	CheckoutTarget        *string   `json:"checkout_target,omitempty"`
	EvaluatedAt           time.Time `json:"evaluated_at"`
}

func (r *GetAvailabilityResponse) PopulateFromEntity(e event.Event, now time.Time) {
	r.EventID = e.ID
	r.CanPurchase = CanPurchase(e, now)
	r.SoldOut = e.AvailableSeats <= 0
	r.EventEnded = e.Date.Before(now)
	r.AvailableSeats = e.AvailableSeats
	r.MaxSelectableQuantity = MaxSelectableQuantity(e)
	r.UnitPrice = e.Price
	r.EvaluatedAt = now
}
