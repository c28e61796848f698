package pubsub

import (
	"context"

	ckafka "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
)

// Publisher hands messages to the platform's event stream.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, headers map[string]string, message []byte) error
	Close()
}

type kafkaPublisher struct {
	logger   *logrus.Logger
	producer *ckafka.Producer
}

func PublisherFromConfluentKafkaProducer(logger *logrus.Logger, producer *ckafka.Producer) Publisher {
	return &kafkaPublisher{
		logger:   logger,
		producer: producer,
	}
}

// Publish implements Publisher.
func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, headers map[string]string, message []byte) error {
	var kafkaHeaders []ckafka.Header
	for k, v := range headers {
		kafkaHeaders = append(kafkaHeaders, ckafka.Header{Key: k, Value: []byte(v)})
	}

	deliveryChan := make(chan ckafka.Event, 1)

	err := p.producer.Produce(&ckafka.Message{
		TopicPartition: ckafka.TopicPartition{Topic: &topic, Partition: ckafka.PartitionAny},
		Key:            []byte(key),
		Value:          message,
		Headers:        kafkaHeaders,
	}, deliveryChan)
	if err != nil {
		p.logger.WithContext(ctx).WithError(err).WithField("topic", topic).Error("pubsub: failed to produce message")
		return err
	}

	select {
	case e := <-deliveryChan:
		if m, ok := e.(*ckafka.Message); ok && m.TopicPartition.Error != nil {
			p.logger.WithContext(ctx).WithError(m.TopicPartition.Error).WithField("topic", topic).Error("pubsub: message delivery failed")
			return m.TopicPartition.Error
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// Close implements Publisher.
func (p *kafkaPublisher) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
