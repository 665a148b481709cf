// Package kafka provides the broker-facing event adapters. The outbound
// publisher turns domain change notifications into Kafka messages without
// ever blocking a business operation on the broker.
package kafka

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"supplychain/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

const (
	publishBufferSize = 256
	publishTimeout    = 5 * time.Second
)

// MessageWriter abstracts the Kafka producer so tests can substitute a
// failing or recording writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter creates a producer connected to the given brokers. Topics
// are auto-created on first write so a fresh broker needs no provisioning.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

type event struct {
	topic   string
	message string
}

// EventPublisher implements ports.EventPublisher on top of Kafka.
//
// Publish hands the event to a bounded buffer drained by a single
// background goroutine. When the buffer is full or the broker write fails
// the event is dropped and counted; the database remains the source of
// truth, so a lost notification costs observers a refresh, never data.
type EventPublisher struct {
	writer MessageWriter
	events chan event
	logger *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewEventPublisher creates a publisher draining into the given writer and
// starts its delivery goroutine.
func NewEventPublisher(writer MessageWriter, logger *slog.Logger) *EventPublisher {
	p := &EventPublisher{
		writer: writer,
		events: make(chan event, publishBufferSize),
		logger: logger.With("component", "event_publisher"),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues a change notification for delivery to the broker. It
// never blocks: when the buffer is full the event is dropped.
func (p *EventPublisher) Publish(topic string, message string) {
	select {
	case p.events <- event{topic: topic, message: message}:
	default:
		metrics.EventsDroppedTotal.WithLabelValues(topic).Inc()
		p.logger.Warn("event buffer full, dropping event", "topic", topic)
	}
}

// Close stops accepting events, flushes the buffer and closes the
// underlying writer.
func (p *EventPublisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.events)
		<-p.done
		err = p.writer.Close()
	})
	return err
}

func (p *EventPublisher) run() {
	defer close(p.done)

	for ev := range p.events {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := p.writer.WriteMessages(ctx, kafka.Message{
			Topic: ev.topic,
			Value: []byte(ev.message),
		})
		cancel()

		if err != nil {
			metrics.EventsDroppedTotal.WithLabelValues(ev.topic).Inc()
			p.logger.Error("failed to publish event", "topic", ev.topic, "error", err)
			continue
		}

		metrics.EventsPublishedTotal.WithLabelValues(ev.topic).Inc()
	}
}
