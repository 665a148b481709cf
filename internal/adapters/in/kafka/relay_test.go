package kafka_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	kafkaadapter "supplychain/internal/adapters/in/kafka"
	"supplychain/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader replays a fixed message sequence, then reports EOF.
type scriptedReader struct {
	messages chan kafka.Message
	closed   bool
	mu       sync.Mutex
}

func newScriptedReader(topic string, payloads ...string) *scriptedReader {
	r := &scriptedReader{messages: make(chan kafka.Message, len(payloads))}
	for _, payload := range payloads {
		r.messages <- kafka.Message{Topic: topic, Value: []byte(payload)}
	}
	close(r.messages)
	return r
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case msg, ok := <-r.messages:
		if !ok {
			return kafka.Message{}, io.EOF
		}
		return msg, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *scriptedReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *scriptedReader) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

type broadcastCall struct {
	destination string
	message     string
}

// recordingBroadcaster collects broadcast calls for assertions.
type recordingBroadcaster struct {
	calls chan broadcastCall
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{calls: make(chan broadcastCall, 64)}
}

func (b *recordingBroadcaster) Broadcast(destination string, message string) {
	b.calls <- broadcastCall{destination: destination, message: message}
}

func (b *recordingBroadcaster) collect(t *testing.T, n int) []broadcastCall {
	t.Helper()
	calls := make([]broadcastCall, 0, n)
	for len(calls) < n {
		select {
		case call := <-b.calls:
			calls = append(calls, call)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for broadcast %d of %d", len(calls)+1, n)
		}
	}
	return calls
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRelay_ForwardsMessagesToMappedDestination(t *testing.T) {
	broadcaster := newRecordingBroadcaster()
	readers := map[string]kafkaadapter.MessageReader{
		ports.ShipmentEventsTopic: newScriptedReader(
			ports.ShipmentEventsTopic,
			"Shipment created with ID: 42",
			"Shipment deleted with ID: 42",
		),
	}

	relay := kafkaadapter.NewRelay(readers, broadcaster, testLogger())
	relay.Start()
	defer relay.Stop()

	calls := broadcaster.collect(t, 2)
	assert.Equal(t, ports.ShipmentsDestination, calls[0].destination)
	assert.Equal(t, "Shipment created with ID: 42", calls[0].message)
	assert.Equal(t, ports.ShipmentsDestination, calls[1].destination)
	assert.Equal(t, "Shipment deleted with ID: 42", calls[1].message)
}

func TestRelay_EachTopicReachesItsOwnDestination(t *testing.T) {
	broadcaster := newRecordingBroadcaster()
	readers := map[string]kafkaadapter.MessageReader{
		ports.DeliveryEventsTopic: newScriptedReader(ports.DeliveryEventsTopic, "Delivery deleted: ID=7"),
		ports.VendorEventsTopic:   newScriptedReader(ports.VendorEventsTopic, "Vendor created: ID=9, Name=Maersk"),
	}

	relay := kafkaadapter.NewRelay(readers, broadcaster, testLogger())
	relay.Start()
	defer relay.Stop()

	calls := broadcaster.collect(t, 2)
	byDestination := map[string]string{}
	for _, call := range calls {
		byDestination[call.destination] = call.message
	}
	assert.Equal(t, "Delivery deleted: ID=7", byDestination[ports.DeliveriesDestination])
	assert.Equal(t, "Vendor created: ID=9, Name=Maersk", byDestination[ports.VendorsDestination])
}

func TestRelay_UnknownTopicIsSkipped(t *testing.T) {
	broadcaster := newRecordingBroadcaster()
	reader := newScriptedReader("unmapped-topic", "ignored")
	readers := map[string]kafkaadapter.MessageReader{
		"unmapped-topic": reader,
	}

	relay := kafkaadapter.NewRelay(readers, broadcaster, testLogger())
	relay.Start()
	relay.Stop()

	select {
	case call := <-broadcaster.calls:
		t.Fatalf("unexpected broadcast: %+v", call)
	default:
	}
}

func TestRelay_StopClosesReaders(t *testing.T) {
	broadcaster := newRecordingBroadcaster()
	reader := newScriptedReader(ports.RouteEventsTopic, "Route deleted: ID=3")
	readers := map[string]kafkaadapter.MessageReader{
		ports.RouteEventsTopic: reader,
	}

	relay := kafkaadapter.NewRelay(readers, broadcaster, testLogger())
	relay.Start()

	broadcaster.collect(t, 1)
	relay.Stop()

	require.True(t, reader.isClosed())
}
