package checkout

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/availability"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/session"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/gctasks"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type fakeIntentRepository struct {
	intents map[string]Intent
}

func newFakeIntentRepository(intents ...Intent) *fakeIntentRepository {
	m := make(map[string]Intent)
	for _, i := range intents {
		m[i.ID] = i
	}

	return &fakeIntentRepository{intents: m}
}

func (f *fakeIntentRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return nil, nil
}

func (f *fakeIntentRepository) CommitTx(ctx context.Context, tx *sql.Tx) error {
	return nil
}

func (f *fakeIntentRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	return nil
}

func (f *fakeIntentRepository) Save(ctx context.Context, i Intent, tx *sql.Tx) error {
	f.intents[i.ID] = i
	return nil
}

func (f *fakeIntentRepository) FindByID(ctx context.Context, ID string, tx *sql.Tx) (Intent, error) {
	i, ok := f.intents[ID]
	if !ok {
		return Intent{}, errors.New(http.StatusNotFound, status.NOT_FOUND, "checkout intent's properties is not found")
	}

	return i, nil
}

func (f *fakeIntentRepository) FindManyByAccountID(ctx context.Context, accountID int64, tx *sql.Tx) ([]Intent, error) {
	data := make([]Intent, 0)
	for _, i := range f.intents {
		if i.AccountID == accountID {
			data = append(data, i)
		}
	}

	return data, nil
}

func (f *fakeIntentRepository) Update(ctx context.Context, ID string, i Intent, tx *sql.Tx) error {
	f.intents[ID] = i
	return nil
}

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
	return nil, nil
}

func (f *fakeEventRepository) Count(ctx context.Context, tx *sql.Tx) (int64, error) {
	return int64(len(f.events)), nil
}

func (f *fakeEventRepository) UpdateAvailableSeats(ctx context.Context, ID string, e event.Event, tx *sql.Tx) error {
	f.events[ID] = e
	return nil
}

type publishedMessage struct {
	topic   string
	key     string
	payload []byte
}

type fakePublisher struct {
	messages []publishedMessage
}

func (f *fakePublisher) Publish(ctx context.Context, topic string, key string, headers map[string]string, message []byte) error {
	f.messages = append(f.messages, publishedMessage{topic: topic, key: key, payload: message})
	return nil
}

func (f *fakePublisher) Close() {}

type deferredTask struct {
	queueID  string
	request  gctasks.Request
	schedule time.Time
}

type fakeCloudTask struct {
	tasks []deferredTask
}

func (f *fakeCloudTask) CreateTask(queueID string, request gctasks.Request) error {
	f.tasks = append(f.tasks, deferredTask{queueID: queueID, request: request})
	return nil
}

func (f *fakeCloudTask) DeferCreateTaskInTime(queueID string, request gctasks.Request, schedule time.Time) error {
	f.tasks = append(f.tasks, deferredTask{queueID: queueID, request: request, schedule: schedule})
	return nil
}

func (f *fakeCloudTask) Close() error {
	return nil
}

func makeTestEvent(availableSeats int64, date time.Time) event.Event {
	return event.Event{
		ID:             "EVENT-1757900000",
		Title:          "Dream Theater Live In Concert",
		Venue:          "Gelora Bung Karno",
		Location:       "Jakarta",
		Date:           date,
		Price:          750000,
		TotalSeats:     1000,
		AvailableSeats: availableSeats,
		Status:         event.StatusPublished,
	}
}

type checkoutFixture struct {
	useCase    CheckoutUseCase
	intentRepo *fakeIntentRepository
	publisher  *fakePublisher
	cloudTask  *fakeCloudTask
}

func makeCheckoutFixture(events []event.Event, intents ...Intent) checkoutFixture {
	intentRepo := newFakeIntentRepository(intents...)
	publisher := &fakePublisher{}
	cloudTask := &fakeCloudTask{}

	useCase := NewCheckoutUseCase(CheckoutUseCaseProperty{
		Logger:               logrus.New(),
		Timeout:              5 * time.Second,
		BaseURL:              "http://localhost:9030/tm-availability",
		IntentExpireDuration: 15 * time.Minute,
		IntentRepository:     intentRepo,
		EventRepository:      newFakeEventRepository(events...),
		Publisher:            publisher,
		CloudTask:            cloudTask,
	})

	return checkoutFixture{
		useCase:    useCase,
		intentRepo: intentRepo,
		publisher:  publisher,
		cloudTask:  cloudTask,
	}
}

func authedCtx(accountID int64) context.Context {
	return session.SetAccountToCtx(context.Background(), session.Account{
		ID:    accountID,
		Name:  "John Doe",
		Email: "john.doe@example.com",
	})
}

func TestCheckoutUseCase_CreateIntent(t *testing.T) {
	upcoming := time.Now().Add(30 * 24 * time.Hour)
	passed := time.Now().Add(-30 * 24 * time.Hour)

	t.Run("creates a pending intent with its checkout target", func(t *testing.T) {
		fx := makeCheckoutFixture([]event.Event{makeTestEvent(120, upcoming)})

		resp, err := fx.useCase.CreateIntent(authedCtx(88), CreateIntentRequest{EventID: "EVENT-1757900000", Quantity: 2})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(resp.ID, "CI"))
		assert.Equal(t, int64(88), resp.AccountID)
		assert.Equal(t, "EVENT-1757900000", resp.EventID)
		assert.Equal(t, int64(2), resp.Quantity)
		assert.Equal(t, float64(750000), resp.UnitPrice)
		assert.Equal(t, float64(1500000), resp.TotalAmount)
		assert.Equal(t, "/checkout/EVENT-1757900000?quantity=2", resp.CheckoutURL)
		assert.Equal(t, StatusPending, resp.Status)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), resp.ExpiresAt, 5*time.Second)

		saved, ok := fx.intentRepo.intents[resp.ID]
		require.True(t, ok)
		assert.Equal(t, StatusPending, saved.Status)
	})

	t.Run("announces the intent and schedules its expiry", func(t *testing.T) {
		fx := makeCheckoutFixture([]event.Event{makeTestEvent(120, upcoming)})

		resp, err := fx.useCase.CreateIntent(authedCtx(88), CreateIntentRequest{EventID: "EVENT-1757900000", Quantity: 2})
		require.NoError(t, err)

		require.Len(t, fx.publisher.messages, 1)
		assert.Equal(t, "checkout-intent-created", fx.publisher.messages[0].topic)
		assert.Equal(t, resp.ID, fx.publisher.messages[0].key)

		require.Len(t, fx.cloudTask.tasks, 1)
		task := fx.cloudTask.tasks[0]
		assert.Equal(t, "expire-checkout-intent", task.queueID)
		assert.Equal(t, "http://localhost:9030/tm-availability/v1/customerapp/checkout-intents/on-expire", task.request.URL)
		assert.Equal(t, resp.ExpiresAt, task.schedule)
	})

	t.Run("rejects without an account session", func(t *testing.T) {
		fx := makeCheckoutFixture([]event.Event{makeTestEvent(120, upcoming)})

		_, err := fx.useCase.CreateIntent(context.Background(), CreateIntentRequest{EventID: "EVENT-1757900000", Quantity: 2})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, errors.Destruct(err).HTTPStatusCode)
	})

	t.Run("rejects a sold out event", func(t *testing.T) {
		fx := makeCheckoutFixture([]event.Event{makeTestEvent(0, upcoming)})

		_, err := fx.useCase.CreateIntent(authedCtx(88), CreateIntentRequest{EventID: "EVENT-1757900000", Quantity: 1})
		require.Error(t, err)

		ae := errors.Destruct(err)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatusCode)
		assert.Equal(t, "event is sold out", ae.Message)
		assert.Empty(t, fx.intentRepo.intents)
		assert.Empty(t, fx.publisher.messages)
	})

	t.Run("rejects an event that has already started", func(t *testing.T) {
		fx := makeCheckoutFixture([]event.Event{makeTestEvent(120, passed)})

		_, err := fx.useCase.CreateIntent(authedCtx(88), CreateIntentRequest{EventID: "EVENT-1757900000", Quantity: 1})
		require.Error(t, err)

		ae := errors.Destruct(err)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatusCode)
		assert.Equal(t, "event has already started", ae.Message)
	})

	t.Run("rejects a quantity above the purchase cap", func(t *testing.T) {
		fx := makeCheckoutFixture([]event.Event{makeTestEvent(120, upcoming)})

		_, err := fx.useCase.CreateIntent(authedCtx(88), CreateIntentRequest{EventID: "EVENT-1757900000", Quantity: 11})
		assert.ErrorIs(t, err, availability.ErrInvalidQuantity)
		assert.Empty(t, fx.intentRepo.intents)
	})

	t.Run("rejects a quantity above the remaining inventory", func(t *testing.T) {
		fx := makeCheckoutFixture([]event.Event{makeTestEvent(5, upcoming)})

		_, err := fx.useCase.CreateIntent(authedCtx(88), CreateIntentRequest{EventID: "EVENT-1757900000", Quantity: 6})
		assert.ErrorIs(t, err, availability.ErrInvalidQuantity)
	})

	t.Run("propagates unknown event", func(t *testing.T) {
		fx := makeCheckoutFixture(nil)

		_, err := fx.useCase.CreateIntent(authedCtx(88), CreateIntentRequest{EventID: "EVENT-0000000000", Quantity: 1})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, errors.Destruct(err).HTTPStatusCode)
	})
}

func TestCheckoutUseCase_GetManyIntent(t *testing.T) {
	t.Run("lists only the caller's intents", func(t *testing.T) {
		now := time.Now()
		fx := makeCheckoutFixture(nil,
			Intent{ID: "CI1757900001-0001", AccountID: 88, EventID: "EVENT-1757900000", Status: StatusPending, CreatedAt: now},
			Intent{ID: "CI1757900002-0002", AccountID: 88, EventID: "EVENT-1757900000", Status: StatusExpired, CreatedAt: now},
			Intent{ID: "CI1757900003-0003", AccountID: 99, EventID: "EVENT-1757900000", Status: StatusPending, CreatedAt: now},
		)

		resp, err := fx.useCase.GetManyIntent(authedCtx(88))
		require.NoError(t, err)

		assert.Len(t, resp, 2)
		for _, i := range resp {
			assert.Equal(t, int64(88), i.AccountID)
		}
	})

	t.Run("rejects without an account session", func(t *testing.T) {
		fx := makeCheckoutFixture(nil)

		_, err := fx.useCase.GetManyIntent(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, errors.Destruct(err).HTTPStatusCode)
	})
}

func TestCheckoutUseCase_OnExpireIntent(t *testing.T) {
	t.Run("pending intent expires", func(t *testing.T) {
		fx := makeCheckoutFixture(nil, Intent{
			ID:        "CI1757900001-0001",
			AccountID: 88,
			EventID:   "EVENT-1757900000",
			Status:    StatusPending,
		})

		err := fx.useCase.OnExpireIntent(context.Background(), ExpireIntentEvent{ID: "CI1757900001-0001"})
		require.NoError(t, err)

		assert.Equal(t, StatusExpired, fx.intentRepo.intents["CI1757900001-0001"].Status)
	})

	t.Run("already expired intent is left alone", func(t *testing.T) {
		updatedAt := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
		fx := makeCheckoutFixture(nil, Intent{
			ID:        "CI1757900001-0001",
			AccountID: 88,
			EventID:   "EVENT-1757900000",
			Status:    StatusExpired,
			UpdatedAt: updatedAt,
		})

		err := fx.useCase.OnExpireIntent(context.Background(), ExpireIntentEvent{ID: "CI1757900001-0001"})
		require.NoError(t, err)

		assert.Equal(t, updatedAt, fx.intentRepo.intents["CI1757900001-0001"].UpdatedAt)
	})

	t.Run("unknown intent propagates not found", func(t *testing.T) {
		fx := makeCheckoutFixture(nil)

		err := fx.useCase.OnExpireIntent(context.Background(), ExpireIntentEvent{ID: "CI0000000000-0000"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, errors.Destruct(err).HTTPStatusCode)
	})
}
