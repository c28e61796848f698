package event

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type EventUseCase interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CreateCategoryResponse, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (CreateEventResponse, error)
	UpdateEventSeats(ctx context.Context, req UpdateEventSeatsRequest) (UpdateEventSeatsResponse, error)
}

type eventUseCase struct {
	logger             *logrus.Logger
	location           *time.Location
	timeout            time.Duration
	eventRepository    EventRepository
	categoryRepository CategoryRepository
	cacheRepository    CacheRepository
}

type EventUseCaseProperty struct {
	Logger             *logrus.Logger
	Location           *time.Location
	Timeout            time.Duration
	EventRepository    EventRepository
	CategoryRepository CategoryRepository
	CacheRepository    CacheRepository
}

func NewEventUseCase(props EventUseCaseProperty) EventUseCase {
	return &eventUseCase{
		logger:             props.Logger,
		location:           props.Location,
		timeout:            props.Timeout,
		eventRepository:    props.EventRepository,
		categoryRepository: props.CategoryRepository,
		cacheRepository:    props.CacheRepository,
	}
}

// CreateCategory implements EventUseCase.
func (u *eventUseCase) CreateCategory(ctx context.Context, req CreateCategoryRequest) (CreateCategoryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	now := time.Now()
	c := req.ToEntityCategory(now)

	ID, err := u.categoryRepository.Save(ctx, c, nil)
	if err != nil {
		return CreateCategoryResponse{}, err
	}
	c.ID = ID

	resp := CreateCategoryResponse{}
	resp.PopulateFromEntity(c)

	return resp, nil
}

// CreateEvent implements EventUseCase.
func (u *eventUseCase) CreateEvent(ctx context.Context, req CreateEventRequest) (CreateEventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	now := time.Now()
	e, err := req.ToEntityEvent(u.location, now)
	if err != nil {
		return CreateEventResponse{}, err
	}

	tx, err := u.eventRepository.BeginTx(ctx)
	if err != nil {
		return CreateEventResponse{}, err
	}

	if _, err := u.categoryRepository.FindByID(ctx, e.CategoryID, tx); err != nil {
		u.eventRepository.Rollback(ctx, tx)
		return CreateEventResponse{}, err
	}

	if err := u.eventRepository.Save(ctx, e, tx); err != nil {
		u.eventRepository.Rollback(ctx, tx)
		return CreateEventResponse{}, err
	}

	if err := u.eventRepository.CommitTx(ctx, tx); err != nil {
		u.eventRepository.Rollback(ctx, tx)
		return CreateEventResponse{}, err
	}

	resp := CreateEventResponse{}
	resp.PopulateFromEntity(e)

	return resp, nil
}

// UpdateEventSeats implements EventUseCase.
func (u *eventUseCase) UpdateEventSeats(ctx context.Context, req UpdateEventSeatsRequest) (UpdateEventSeatsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if req.AvailableSeats > req.TotalSeats {
		return UpdateEventSeatsResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "available seats must not exceed total seats")
	}

	tx, err := u.eventRepository.BeginTx(ctx)
	if err != nil {
		return UpdateEventSeatsResponse{}, err
	}

	e, err := u.eventRepository.FindByIDForUpdate(ctx, req.EventID, tx)
	if err != nil {
		u.eventRepository.Rollback(ctx, tx)
		return UpdateEventSeatsResponse{}, err
	}

	e.TotalSeats = req.TotalSeats
	e.AvailableSeats = req.AvailableSeats
	e.UpdatedAt = time.Now()

	if err := u.eventRepository.UpdateAvailableSeats(ctx, e.ID, e, tx); err != nil {
		u.eventRepository.Rollback(ctx, tx)
		return UpdateEventSeatsResponse{}, err
	}

	if err := u.eventRepository.CommitTx(ctx, tx); err != nil {
		return UpdateEventSeatsResponse{}, err
	}

	u.cacheRepository.Delete(ctx, e.ID)

	resp := UpdateEventSeatsResponse{}
	resp.PopulateFromEntity(e)

	return resp, nil
}
