package checkout

type CreateIntentRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
}
