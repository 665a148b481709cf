package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"supplychain/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const (
	hubBufferSize    = 256
	clientBufferSize = 64
	keepaliveEvery   = 30 * time.Second
)

// SSEEvent is one server-sent event: the destination it was broadcast to
// and the verbatim message text.
type SSEEvent struct {
	Destination string
	Data        string
}

// EventHub implements ports.Broadcaster over server-sent events. Each
// connected client owns a buffered channel; a slow client loses events
// rather than slowing the hub down. There is no replay: a client sees only
// what is broadcast while it is connected.
type EventHub struct {
	mu        sync.RWMutex
	clients   map[chan SSEEvent]struct{}
	broadcast chan SSEEvent
	stopChan  chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
}

// NewEventHub creates a hub. Call Start before broadcasting.
func NewEventHub() *EventHub {
	return &EventHub{
		clients:   make(map[chan SSEEvent]struct{}),
		broadcast: make(chan SSEEvent, hubBufferSize),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the fan-out goroutine.
func (h *EventHub) Start() {
	go h.run()
}

// Stop terminates the fan-out goroutine and waits for it to exit. Closing
// the channel makes the signal stick even when run is mid-fanout, unlike a
// non-blocking send which would be dropped. Connected clients are not
// closed; their handlers exit when the request context ends. Must only be
// called after Start; safe to call more than once.
func (h *EventHub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})
	<-h.done
}

func (h *EventHub) run() {
	defer close(h.done)

	keepalive := time.NewTicker(keepaliveEvery)
	defer keepalive.Stop()

	for {
		select {
		case <-h.stopChan:
			return
		case evt := <-h.broadcast:
			h.fanOut(evt)
		case <-keepalive.C:
			h.fanOut(SSEEvent{Destination: "keepalive", Data: "ping"})
		}
	}
}

func (h *EventHub) fanOut(evt SSEEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			// drop if full
		}
	}
}

// Broadcast pushes a message to every connected client. Non-blocking: when
// the hub buffer is full the message is dropped.
func (h *EventHub) Broadcast(destination string, message string) {
	select {
	case h.broadcast <- SSEEvent{Destination: destination, Data: message}:
	default:
	}
}

// AddClient registers a new subscriber and returns its event channel.
func (h *EventHub) AddClient() chan SSEEvent {
	ch := make(chan SSEEvent, clientBufferSize)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	metrics.EventSubscribersGauge.Inc()
	return ch
}

// RemoveClient unregisters a subscriber and closes its channel.
func (h *EventHub) RemoveClient(ch chan SSEEvent) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
	metrics.EventSubscribersGauge.Dec()
}

// ClientCount reports the number of connected subscribers.
func (h *EventHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// handleEvents streams hub events to one client until it disconnects.
func (h *EventHub) handleEvents(ctx echo.Context) error {
	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	ch := h.AddClient()
	defer h.RemoveClient(ch)

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", evt.Destination, evt.Data); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
