// Package kafka provides the broker-consuming side of the notification
// pipeline: a relay that drains the change-event topics and fans each
// message out to connected subscribers.
package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// MessageReader abstracts a single-topic Kafka consumer so tests can feed
// the relay scripted messages.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// NewKafkaReaders creates one consumer per change-event topic, all in the
// same consumer group.
func NewKafkaReaders(brokers []string, groupID string) map[string]MessageReader {
	readers := make(map[string]MessageReader, len(ports.TopicDestinations()))
	for topic := range ports.TopicDestinations() {
		readers[topic] = kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		})
	}
	return readers
}

// Relay consumes the change-event topics and forwards every message
// verbatim to the topic's broadcast destination. Messages are not parsed
// or transformed: the relay is plumbing between the broker and connected
// subscribers.
type Relay struct {
	readers     map[string]MessageReader
	broadcaster ports.Broadcaster
	logger      *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRelay creates a relay draining the given per-topic readers into the
// broadcaster.
func NewRelay(readers map[string]MessageReader, broadcaster ports.Broadcaster, logger *slog.Logger) *Relay {
	return &Relay{
		readers:     readers,
		broadcaster: broadcaster,
		logger:      logger.With("component", "event_relay"),
	}
}

// Start launches one consuming goroutine per topic. Each goroutine runs
// until Stop is called or its reader is closed.
func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for topic, reader := range r.readers {
		destination, ok := ports.TopicDestinations()[topic]
		if !ok {
			r.logger.Warn("no destination mapped for topic, skipping", "topic", topic)
			continue
		}

		r.wg.Add(1)
		go r.consume(ctx, topic, destination, reader)
	}
}

// Stop shuts down all consuming goroutines and closes the readers.
func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	for topic, reader := range r.readers {
		if err := reader.Close(); err != nil {
			r.logger.Error("failed to close reader", "topic", topic, "error", err)
		}
	}
	r.wg.Wait()
}

func (r *Relay) consume(ctx context.Context, topic, destination string, reader MessageReader) {
	defer r.wg.Done()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			r.logger.Error("failed to read message", "topic", topic, "error", err)
			return
		}

		r.broadcaster.Broadcast(destination, string(msg.Value))
		metrics.EventsRelayedTotal.WithLabelValues(topic).Inc()
	}
}
