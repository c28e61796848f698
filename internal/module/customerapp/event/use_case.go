package event

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type EventUseCase interface {
	GetEvent(ctx context.Context, ID string) (EventResponse, error)
	GetManyEvent(ctx context.Context, req GetManyEventRequest) (GetManyEventResponse, error)
	OnOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	OnOrderExpired(ctx context.Context, e OrderExpiredEvent) error
}

type eventUseCase struct {
	logger             *logrus.Logger
	timeout            time.Duration
	eventRepository    EventRepository
	categoryRepository CategoryRepository
	cacheRepository    CacheRepository
}

type EventUseCaseProperty struct {
	Logger             *logrus.Logger
	Timeout            time.Duration
	EventRepository    EventRepository
	CategoryRepository CategoryRepository
	CacheRepository    CacheRepository
}

func NewEventUseCase(props EventUseCaseProperty) EventUseCase {
	return &eventUseCase{
		logger:             props.Logger,
		timeout:            props.Timeout,
		eventRepository:    props.EventRepository,
		categoryRepository: props.CategoryRepository,
		cacheRepository:    props.CacheRepository,
	}
}

// GetEvent implements EventUseCase.
func (u *eventUseCase) GetEvent(ctx context.Context, ID string) (EventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	resp := EventResponse{}

	if cached, err := u.cacheRepository.Get(ctx, ID); err == nil {
		resp.PopulateFromEntity(cached)
		return resp, nil
	}

	e, err := u.eventRepository.FindByID(ctx, ID, nil)
	if err != nil {
		return EventResponse{}, err
	}

	c, err := u.categoryRepository.FindByID(ctx, e.CategoryID, nil)
	if err != nil {
		return EventResponse{}, err
	}
	e.Category = &c

	u.cacheRepository.Set(ctx, e)

	resp.PopulateFromEntity(e)

	return resp, nil
}

// GetManyEvent implements EventUseCase.
func (u *eventUseCase) GetManyEvent(ctx context.Context, req GetManyEventRequest) (GetManyEventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	offset := (req.Page - 1) * req.Size

	events, err := u.eventRepository.FindMany(ctx, offset, req.Size, nil)
	if err != nil {
		return GetManyEventResponse{}, err
	}

	total, err := u.eventRepository.Count(ctx, nil)
	if err != nil {
		return GetManyEventResponse{}, err
	}

	categories := make(map[int64]Category)
	for k, e := range events {
		c, ok := categories[e.CategoryID]
		if !ok {
			c, err = u.categoryRepository.FindByID(ctx, e.CategoryID, nil)
			if err != nil {
				return GetManyEventResponse{}, err
			}
			categories[e.CategoryID] = c
		}
		events[k].Category = &c
	}

	eventsResponse := make([]EventResponse, len(events))
	for k, e := range events {
		eventsResponse[k].PopulateFromEntity(e)
	}

	resp := GetManyEventResponse{
		Events: eventsResponse,
		Pagination: Pagination{
			Page:  req.Page,
			Size:  req.Size,
			Total: total,
		},
	}

	return resp, nil
}

// OnOrderCreated implements EventUseCase.
func (u *eventUseCase) OnOrderCreated(ctx context.Context, e OrderCreatedEvent) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	for _, item := range e.Items {
		tx, err := u.eventRepository.BeginTx(ctx)
		if err != nil {
			return err
		}

		data, err := u.eventRepository.FindByIDForUpdate(ctx, item.EventID, tx)
		if err != nil {
			u.eventRepository.Rollback(ctx, tx)
			return err
		}

		data.AvailableSeats = data.AvailableSeats - item.Quantity
		if data.AvailableSeats < 0 {
			data.AvailableSeats = 0
		}
		data.UpdatedAt = time.Now()

		if err := u.eventRepository.UpdateAvailableSeats(ctx, data.ID, data, tx); err != nil {
			u.eventRepository.Rollback(ctx, tx)
			return err
		}

		if err := u.eventRepository.CommitTx(ctx, tx); err != nil {
			return err
		}

		u.cacheRepository.Delete(ctx, data.ID)
	}

	return nil
}

// OnOrderExpired implements EventUseCase.
func (u *eventUseCase) OnOrderExpired(ctx context.Context, e OrderExpiredEvent) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	for _, item := range e.Items {
		tx, err := u.eventRepository.BeginTx(ctx)
		if err != nil {
			return err
		}

		data, err := u.eventRepository.FindByIDForUpdate(ctx, item.EventID, tx)
		if err != nil {
			u.eventRepository.Rollback(ctx, tx)
			return err
		}

		data.AvailableSeats = data.AvailableSeats + item.Quantity
		if data.AvailableSeats > data.TotalSeats {
			data.AvailableSeats = data.TotalSeats
		}
		data.UpdatedAt = time.Now()

		if err := u.eventRepository.UpdateAvailableSeats(ctx, data.ID, data, tx); err != nil {
			u.eventRepository.Rollback(ctx, tx)
			return err
		}

		if err := u.eventRepository.CommitTx(ctx, tx); err != nil {
			return err
		}

		u.cacheRepository.Delete(ctx, data.ID)
	}

	return nil
}
