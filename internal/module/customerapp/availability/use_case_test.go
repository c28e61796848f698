package availability

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type fakeEventRepository struct {
	events map[string]event.Event
}

func newFakeEventRepository(events ...event.Event) *fakeEventRepository {
	m := make(map[string]event.Event)
	for _, e := range events {
		m[e.ID] = e
	}

	return &fakeEventRepository{events: m}
}

func (f *fakeEventRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return nil, nil
}

func (f *fakeEventRepository) CommitTx(ctx context.Context, tx *sql.Tx) error {
	return nil
}

func (f *fakeEventRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	return nil
}

func (f *fakeEventRepository) FindByID(ctx context.Context, ID string, tx *sql.Tx) (event.Event, error) {
	e, ok := f.events[ID]
	if !ok {
		return event.Event{}, errors.New(http.StatusNotFound, status.NOT_FOUND, "event's properties is not found")
	}

	return e, nil
}

func (f *fakeEventRepository) FindByIDForUpdate(ctx context.Context, ID string, tx *sql.Tx) (event.Event, error) {
	return f.FindByID(ctx, ID, tx)
}

func (f *fakeEventRepository) FindMany(ctx context.Context, offset, limit int64, tx *sql.Tx) ([]event.Event, error) {
	data := make([]event.Event, 0)
	for _, e := range f.events {
		data = append(data, e)
	}

	return data, nil
}

func (f *fakeEventRepository) Count(ctx context.Context, tx *sql.Tx) (int64, error) {
	return int64(len(f.events)), nil
}

func (f *fakeEventRepository) UpdateAvailableSeats(ctx context.Context, ID string, e event.Event, tx *sql.Tx) error {
	f.events[ID] = e
	return nil
}

func TestAvailabilityUseCase_GetAvailability(t *testing.T) {
	makeUseCase := func(events ...event.Event) AvailabilityUseCase {
		return NewAvailabilityUseCase(AvailabilityUseCaseProperty{
			Logger:          logrus.New(),
			Timeout:         5 * time.Second,
			EventRepository: newFakeEventRepository(events...),
		})
	}

	upcoming := time.Now().Add(30 * 24 * time.Hour)
	passed := time.Now().Add(-30 * 24 * time.Hour)

	t.Run("upcoming event with seats is purchasable", func(t *testing.T) {
		uc := makeUseCase(makeEvent(120, upcoming))

		resp, err := uc.GetAvailability(context.Background(), GetAvailabilityRequest{EventID: "EVENT-1757900000"})
		require.NoError(t, err)

		assert.True(t, resp.CanPurchase)
		assert.False(t, resp.SoldOut)
		assert.False(t, resp.EventEnded)
		assert.Equal(t, int64(120), resp.AvailableSeats)
		assert.Equal(t, int64(10), resp.MaxSelectableQuantity)
		assert.Nil(t, resp.Quantity)
		assert.Nil(t, resp.Total)
		assert.Nil(t, resp.CheckoutTarget)
	})

	t.Run("requested quantity yields a priced checkout target", func(t *testing.T) {
		uc := makeUseCase(makeEvent(120, upcoming))

		resp, err := uc.GetAvailability(context.Background(), GetAvailabilityRequest{EventID: "EVENT-1757900000", Quantity: 4})
		require.NoError(t, err)

		require.NotNil(t, resp.Quantity)
		require.NotNil(t, resp.Total)
		require.NotNil(t, resp.CheckoutTarget)
		assert.Equal(t, int64(4), *resp.Quantity)
		assert.Equal(t, float64(3000000), *resp.Total)
		assert.Equal(t, "/checkout/EVENT-1757900000?quantity=4", *resp.CheckoutTarget)
	})

	t.Run("sold out event is reported but not purchasable", func(t *testing.T) {
		uc := makeUseCase(makeEvent(0, upcoming))

		resp, err := uc.GetAvailability(context.Background(), GetAvailabilityRequest{EventID: "EVENT-1757900000"})
		require.NoError(t, err)

		assert.False(t, resp.CanPurchase)
		assert.True(t, resp.SoldOut)
		assert.False(t, resp.EventEnded)
		assert.Equal(t, int64(0), resp.MaxSelectableQuantity)
	})

	t.Run("started event is reported but not purchasable", func(t *testing.T) {
		uc := makeUseCase(makeEvent(120, passed))

		resp, err := uc.GetAvailability(context.Background(), GetAvailabilityRequest{EventID: "EVENT-1757900000"})
		require.NoError(t, err)

		assert.False(t, resp.CanPurchase)
		assert.False(t, resp.SoldOut)
		assert.True(t, resp.EventEnded)
	})

	t.Run("out of range quantity fails the whole call", func(t *testing.T) {
		uc := makeUseCase(makeEvent(5, upcoming))

		_, err := uc.GetAvailability(context.Background(), GetAvailabilityRequest{EventID: "EVENT-1757900000", Quantity: 6})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("unknown event propagates not found", func(t *testing.T) {
		uc := makeUseCase()

		_, err := uc.GetAvailability(context.Background(), GetAvailabilityRequest{EventID: "EVENT-0000000000"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, errors.Destruct(err).HTTPStatusCode)
	})
}
