package checkout

import "time"

const (
	StatusPending string = "PENDING"
	StatusExpired string = "EXPIRED"
)

type Intent struct {
	ID          string
	AccountID   int64
	EventID     string
	Quantity    int64
	UnitPrice   float64
	TotalAmount float64
	CheckoutURL string
	Status      string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
