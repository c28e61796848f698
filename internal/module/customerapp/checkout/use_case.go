package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/availability"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/session"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/util"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/gctasks"
	"github.com/tsel-ticketmaster/tm-availability/pkg/pubsub"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type CheckoutUseCase interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResponse, error)
	GetManyIntent(ctx context.Context) (GetManyIntentResponse, error)
	OnExpireIntent(ctx context.Context, e ExpireIntentEvent) error
}

type checkoutUseCase struct {
	logger               *logrus.Logger
	timeout              time.Duration
	baseURL              string
	intentExpireDuration time.Duration
	intentRepository     IntentRepository
	eventRepository      event.EventRepository
	publisher            pubsub.Publisher
	cloudTask            gctasks.Client
}

type CheckoutUseCaseProperty struct {
	Logger               *logrus.Logger
	Timeout              time.Duration
	BaseURL              string
	IntentExpireDuration time.Duration
	IntentRepository     IntentRepository
	EventRepository      event.EventRepository
	Publisher            pubsub.Publisher
	CloudTask            gctasks.Client
}

func NewCheckoutUseCase(props CheckoutUseCaseProperty) CheckoutUseCase {
	return &checkoutUseCase{
		logger:               props.Logger,
		timeout:              props.Timeout,
		baseURL:              props.BaseURL,
		intentExpireDuration: props.IntentExpireDuration,
		intentRepository:     props.IntentRepository,
		eventRepository:      props.EventRepository,
		publisher:            props.Publisher,
		cloudTask:            props.CloudTask,
	}
}

// CreateIntent implements CheckoutUseCase. The purchase decision is made
// against a fresh event snapshot, so inventory taken since the customer
// last looked is already reflected.
func (u *checkoutUseCase) CreateIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	acc, err := session.GetAccountFromCtx(ctx)
	if err != nil {
		return CreateIntentResponse{}, err
	}

	tx, err := u.intentRepository.BeginTx(ctx)
	if err != nil {
		return CreateIntentResponse{}, err
	}

	e, err := u.eventRepository.FindByID(ctx, req.EventID, tx)
	if err != nil {
		u.intentRepository.Rollback(ctx, tx)
		return CreateIntentResponse{}, err
	}

	now := time.Now()

	flow := availability.NewPurchaseFlow(e)
	if !flow.AttemptPurchase(now) {
		u.intentRepository.Rollback(ctx, tx)
		if e.AvailableSeats <= 0 {
			return CreateIntentResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "event is sold out")
		}
		return CreateIntentResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "event has already started")
	}

	total, err := availability.ComputeTotal(e, req.Quantity)
	if err != nil {
		u.intentRepository.Rollback(ctx, tx)
		return CreateIntentResponse{}, err
	}

	target, err := flow.ConfirmQuantity(req.Quantity)
	if err != nil {
		u.intentRepository.Rollback(ctx, tx)
		return CreateIntentResponse{}, err
	}

	intent := Intent{
		ID:          util.GenerateTimestampWithPrefix("CI"),
		AccountID:   acc.ID,
		EventID:     e.ID,
		Quantity:    req.Quantity,
		UnitPrice:   e.Price,
		TotalAmount: total,
		CheckoutURL: target,
		Status:      StatusPending,
		ExpiresAt:   now.Add(u.intentExpireDuration),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.intentRepository.Save(ctx, intent, tx); err != nil {
		u.intentRepository.Rollback(ctx, tx)
		return CreateIntentResponse{}, err
	}

	if err := u.intentRepository.CommitTx(ctx, tx); err != nil {
		u.intentRepository.Rollback(ctx, tx)
		return CreateIntentResponse{}, err
	}

	intentBuff, _ := json.Marshal(intent)

	u.publisher.Publish(ctx, "checkout-intent-created", intent.ID, nil, intentBuff)

	tasksRequest := gctasks.Request{
		URL:    fmt.Sprintf("%s/v1/customerapp/checkout-intents/on-expire", u.baseURL),
		Method: cloudtaskspb.HttpMethod_POST,
		Body:   intentBuff,
	}
	u.cloudTask.DeferCreateTaskInTime("expire-checkout-intent", tasksRequest, intent.ExpiresAt)

	resp := CreateIntentResponse{}
	resp.PopulateFromEntity(intent)

	return resp, nil
}

// GetManyIntent implements CheckoutUseCase.
func (u *checkoutUseCase) GetManyIntent(ctx context.Context) (GetManyIntentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	acc, err := session.GetAccountFromCtx(ctx)
	if err != nil {
		return GetManyIntentResponse{}, err
	}

	intents, err := u.intentRepository.FindManyByAccountID(ctx, acc.ID, nil)
	if err != nil {
		return GetManyIntentResponse{}, err
	}

	resp := make(GetManyIntentResponse, len(intents))
	for k, i := range intents {
		resp[k].PopulateFromEntity(i)
	}

	return resp, nil
}

// OnExpireIntent implements CheckoutUseCase.
func (u *checkoutUseCase) OnExpireIntent(ctx context.Context, e ExpireIntentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	tx, err := u.intentRepository.BeginTx(ctx)
	if err != nil {
		return err
	}

	intent, err := u.intentRepository.FindByID(ctx, e.ID, tx)
	if err != nil {
		u.intentRepository.Rollback(ctx, tx)
		return err
	}

	if intent.Status != StatusPending {
		u.intentRepository.Rollback(ctx, tx)
		return nil
	}

	intent.Status = StatusExpired
	intent.UpdatedAt = time.Now()

	if err := u.intentRepository.Update(ctx, intent.ID, intent, tx); err != nil {
		u.intentRepository.Rollback(ctx, tx)
		return err
	}

	if err := u.intentRepository.CommitTx(ctx, tx); err != nil {
		return err
	}

	return nil
}
