package events

import (
	"fmt"

	"github.com/oggyb/matching-service/internal/config"
)

// NewPublisher builds the publisher selected by events.driver.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	switch cfg.Events.Driver {
	case "", "none":
		return Noop{}, nil
	case "memory":
		return NewMemory(), nil
	case "rabbitmq", "amqp":
		return NewRabbitMQ(cfg.Events.AMQPURL, cfg.Events.Exchange)
	case "kafka":
		if len(cfg.Events.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("events.kafka_brokers is empty")
		}
		return NewKafka(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic), nil
	default:
		return nil, fmt.Errorf("unsupported events driver %q", cfg.Events.Driver)
	}
}
