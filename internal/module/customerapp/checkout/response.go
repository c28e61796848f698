package checkout

import "time"

type GetManyIntentResponse []CreateIntentResponse

type CreateIntentResponse struct {
	ID          string    `json:"id"`
	AccountID   int64     `json:"account_id"`
	EventID     string    `json:"event_id"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalAmount float64   `json:"total_amount"`
	CheckoutURL string    `json:"checkout_url"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *CreateIntentResponse) PopulateFromEntity(i Intent) {
	r.ID = i.ID
	r.AccountID = i.AccountID
	r.EventID = i.EventID
	r.Quantity = i.Quantity
	r.UnitPrice = i.UnitPrice
	r.TotalAmount = i.TotalAmount
	r.CheckoutURL = i.CheckoutURL
	r.Status = i.Status
	r.ExpiresAt = i.ExpiresAt
	r.CreatedAt = i.CreatedAt
	r.UpdatedAt = i.UpdatedAt
}
