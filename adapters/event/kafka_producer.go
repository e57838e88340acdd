package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/reservafacil/reserva-api/internal/application/service"
)

const (
	TopicReservaEvents    = "reserva.events"
	TopicValoracionEvents = "valoracion.events"
)

type KafkaProducerClient struct {
	ReservaEventsWriter    *kafka.Writer
	ValoracionEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(brokers []string) (*KafkaProducerClient, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	reservaWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicReservaEvents,
		Balancer: &kafka.LeastBytes{},
	}

	valoracionWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicValoracionEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ReservaEventsWriter:    reservaWriter,
		ValoracionEventsWriter: valoracionWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishReservaEvent(ctx context.Context, evt service.ReservaEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal reserva event: %w", err)
	}
	return c.ReservaEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.ReservaID, 10)),
		Value: payload,
	})
}

func (c *KafkaProducerClient) PublishValoracionEvent(ctx context.Context, evt service.ValoracionEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal valoracion event: %w", err)
	}
	// keyed by restaurante so the worker folds ratings for one restaurant in order
	return c.ValoracionEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.RestauranteID, 10)),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ReservaEventsWriter != nil {
		c.ReservaEventsWriter.Close()
	}
	if c.ValoracionEventsWriter != nil {
		c.ValoracionEventsWriter.Close()
	}
}
