package availability

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
)

type AvailabilityUseCase interface {
	GetAvailability(ctx context.Context, req GetAvailabilityRequest) (GetAvailabilityResponse, error)
}

type availabilityUseCase struct {
	logger          *logrus.Logger
	timeout         time.Duration
	eventRepository event.EventRepository
}

type AvailabilityUseCaseProperty struct {
	Logger          *logrus.Logger
	Timeout         time.Duration
	EventRepository event.EventRepository
}

func NewAvailabilityUseCase(props AvailabilityUseCaseProperty) AvailabilityUseCase {
	return &availabilityUseCase{
		logger:          props.Logger,
		timeout:         props.Timeout,
		eventRepository: props.EventRepository,
	}
}

// GetAvailability implements AvailabilityUseCase. The decision is always
// resolved against storage, never against the event cache, so every call
// observes the latest inventory.
func (u *availabilityUseCase) GetAvailability(ctx context.Context, req GetAvailabilityRequest) (GetAvailabilityResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	e, err := u.eventRepository.FindByID(ctx, req.EventID, nil)
	if err != nil {
		return GetAvailabilityResponse{}, err
	}

	now := time.Now()

	resp := GetAvailabilityResponse{}
	resp.PopulateFromEntity(e, now)

	if req.Quantity > 0 {
		total, err := ComputeTotal(e, req.Quantity)
		if err != nil {
			return GetAvailabilityResponse{}, err
		}

		target, err := BuildCheckoutTarget(e, req.Quantity)
		if err != nil {
			return GetAvailabilityResponse{}, err
		}

		resp.Quantity = &req.Quantity
		resp.Total = &total
		resp.CheckoutTarget = &target
	}

	return resp, nil
}
