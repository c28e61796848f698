package event

import (
	"context"
	"encoding/json"

	"github.com/tsel-ticketmaster/tm-availability/pkg/pubsub"
)

const (
	TopicOrderCreated string = "order-created"
	TopicOrderExpired string = "order-expired"
)

type SubscriberHandler struct {
	EventUseCase EventUseCase
}

func InitSubscriberHandler(subscriber pubsub.Subscriber, eventUseCase EventUseCase) {
	handler := &SubscriberHandler{
		EventUseCase: eventUseCase,
	}

	subscriber.Subscribe(TopicOrderCreated, handler.OnOrderCreated)
	subscriber.Subscribe(TopicOrderExpired, handler.OnOrderExpired)
}

func (handler SubscriberHandler) OnOrderCreated(ctx context.Context, message pubsub.Message) error {
	e := OrderCreatedEvent{}
	if err := json.Unmarshal(message.Payload, &e); err != nil {
		return err
	}

	return handler.EventUseCase.OnOrderCreated(ctx, e)
}

func (handler SubscriberHandler) OnOrderExpired(ctx context.Context, message pubsub.Message) error {
	e := OrderExpiredEvent{}
	if err := json.Unmarshal(message.Payload, &e); err != nil {
		return err
	}

	return handler.EventUseCase.OnOrderExpired(ctx, e)
}
