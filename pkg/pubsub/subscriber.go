package pubsub

import (
	"context"
	"time"

	ckafka "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
)

type Message struct {
	Topic   string
	Key     string
	Payload []byte
}

type SubscriberHandler func(ctx context.Context, message Message) error

// Subscriber consumes the event stream and dispatches messages to the
// handler registered for each topic. Register all handlers before Start.
type Subscriber interface {
	Subscribe(topic string, handler SubscriberHandler)
	Start(ctx context.Context)
	Close()
}

type kafkaSubscriber struct {
	logger   *logrus.Logger
	consumer *ckafka.Consumer
	handlers map[string]SubscriberHandler
}

func SubscriberFromConfluentKafkaConsumer(logger *logrus.Logger, consumer *ckafka.Consumer) Subscriber {
	return &kafkaSubscriber{
		logger:   logger,
		consumer: consumer,
		handlers: make(map[string]SubscriberHandler),
	}
}

// Subscribe implements Subscriber.
func (s *kafkaSubscriber) Subscribe(topic string, handler SubscriberHandler) {
	s.handlers[topic] = handler
}

// Start implements Subscriber. It blocks until the context is cancelled, so
// callers run it on its own goroutine. A failed handler only logs; the
// message is not redelivered by this service.
func (s *kafkaSubscriber) Start(ctx context.Context) {
	topics := make([]string, 0, len(s.handlers))
	for topic := range s.handlers {
		topics = append(topics, topic)
	}

	if len(topics) == 0 {
		return
	}

	if err := s.consumer.SubscribeTopics(topics, nil); err != nil {
		s.logger.WithError(err).Error("pubsub: failed to subscribe topics")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := s.consumer.ReadMessage(time.Second)
		if err != nil {
			if kerr, ok := err.(ckafka.Error); ok && kerr.Code() == ckafka.ErrTimedOut {
				continue
			}
			s.logger.WithError(err).Error("pubsub: failed to read message")
			continue
		}

		topic := ""
		if msg.TopicPartition.Topic != nil {
			topic = *msg.TopicPartition.Topic
		}

		handler, ok := s.handlers[topic]
		if !ok {
			continue
		}

		if err := handler(ctx, Message{Topic: topic, Key: string(msg.Key), Payload: msg.Value}); err != nil {
			s.logger.WithError(err).WithField("topic", topic).Error("pubsub: handler failed to process message")
		}
	}
}

// Close implements Subscriber.
func (s *kafkaSubscriber) Close() {
	if err := s.consumer.Close(); err != nil {
		s.logger.WithError(err).Error("pubsub: failed to close consumer")
	}
}
