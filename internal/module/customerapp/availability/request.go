package availability

type GetAvailabilityRequest struct {
	EventID  string `validate:"required"`
	Quantity int64
}
