package kafka

import (
	"log"

	ckafka "github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/tsel-ticketmaster/tm-availability/config"
)

func NewProducer() *ckafka.Producer {
	c := config.Get()

	producer, err := ckafka.NewProducer(&ckafka.ConfigMap{
		"bootstrap.servers": c.Kafka.BootstrapServers,
		"acks":              "all",
	})
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}

	return producer
}

func NewConsumer() *ckafka.Consumer {
	c := config.Get()

	consumer, err := ckafka.NewConsumer(&ckafka.ConfigMap{
		"bootstrap.servers":  c.Kafka.BootstrapServers,
		"group.id":           c.Kafka.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": true,
	})
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}

	return consumer
}
