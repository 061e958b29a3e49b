package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"ms-booking/internal/logger"
	"ms-booking/internal/models"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

type bookingEvent struct {
	Type    string         `json:"type"`
	Booking models.Booking `json:"booking"`
}

// Producer streams booking lifecycle events to a single topic, keyed by
// booking ID so events for one booking stay ordered.
type Producer struct {
	Writer *kafka.Writer
	Logger *logger.Logger
}

func NewProducer(brokers []string, topic string, log *logger.Logger) *Producer {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	return &Producer{Writer: writer, Logger: log}
}

func (p *Producer) publish(eventType string, booking models.Booking) error {
	msgBytes, err := json.Marshal(bookingEvent{Type: eventType, Booking: booking})
	if err != nil {
		return err
	}

	p.Logger.LogKafka("PUBLISH", p.Writer.Topic, fmt.Sprintf("%s %s", eventType, booking.ID))

	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(booking.ID),
			Value: msgBytes,
		},
	)
}

func (p *Producer) PublishBookingCreated(booking models.Booking) error {
	return p.publish(EventBookingCreated, booking)
}

func (p *Producer) PublishBookingCancelled(booking models.Booking) error {
	return p.publish(EventBookingCancelled, booking)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}

// MockProducer logs events instead of writing to a broker. Used when
// Kafka is disabled or running in mock mode.
type MockProducer struct {
	Logger *logger.Logger
}

func NewMockProducer(log *logger.Logger) *MockProducer {
	return &MockProducer{Logger: log}
}

func (m *MockProducer) PublishBookingCreated(booking models.Booking) error {
	m.Logger.LogKafka("MOCK", "booking-events", fmt.Sprintf("%s %s", EventBookingCreated, booking.ID))
	return nil
}

func (m *MockProducer) PublishBookingCancelled(booking models.Booking) error {
	m.Logger.LogKafka("MOCK", "booking-events", fmt.Sprintf("%s %s", EventBookingCancelled, booking.ID))
	return nil
}
