package notify

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consensus-api/internal/metrics"
)

const defaultSendBuffer = 32

// Subscriber receives encoded events matching its filter on Messages().
// The channel is closed when the subscriber is removed from the hub.
type Subscriber struct {
	ID     uuid.UUID
	UserID uuid.UUID
	filter Filter
	send   chan []byte
	hub    *Hub
	once   sync.Once
}

// Messages returns the channel of encoded events
func (s *Subscriber) Messages() <-chan []byte {
	return s.send
}

// Close removes the subscriber from its hub
func (s *Subscriber) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
	})
}

// Hub fans events out to the subscribers connected to this process
type Hub struct {
	subscribers map[*Subscriber]struct{}
	register    chan *Subscriber
	unregister  chan *Subscriber
	broadcast   chan Event
	done        chan struct{}
	stopOnce    sync.Once
	count       atomic.Int64
	bufferLen   int
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewHub creates a hub; call Run to start delivering
func NewHub(logger *zap.Logger, m *metrics.Metrics, sendBuffer int) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan Event, 256),
		done:        make(chan struct{}),
		bufferLen:   sendBuffer,
		logger:      logger,
		metrics:     m,
	}
}

// Run owns the subscriber set until ctx is cancelled or Stop is called
func (h *Hub) Run(ctx context.Context) {
	defer h.Stop()
	defer h.closeAll()
	for {
		select {
		case sub := <-h.register:
			h.subscribers[sub] = struct{}{}
			h.count.Add(1)
			h.metrics.SubscriberConnected()

		case sub := <-h.unregister:
			h.remove(sub)

		case event := <-h.broadcast:
			h.deliver(event)

		case <-ctx.Done():
			return
		case <-h.done:
			return
		}
	}
}

// Stop terminates Run and closes every subscriber
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Subscribe registers a new subscriber. It returns nil once the hub has stopped.
func (h *Hub) Subscribe(userID uuid.UUID, filter Filter) *Subscriber {
	sub := &Subscriber{
		ID:     uuid.New(),
		UserID: userID,
		filter: filter,
		send:   make(chan []byte, h.bufferLen),
		hub:    h,
	}
	select {
	case h.register <- sub:
		return sub
	case <-h.done:
		return nil
	}
}

// Publish queues event for local delivery. It never reports delivery failures.
func (h *Hub) Publish(ctx context.Context, event Event) error {
	select {
	case h.broadcast <- event:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubscriberCount returns the number of connected subscribers
func (h *Hub) SubscriberCount() int {
	return int(h.count.Load())
}

func (h *Hub) unsubscribe(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

func (h *Hub) remove(sub *Subscriber) {
	if _, ok := h.subscribers[sub]; !ok {
		return
	}
	delete(h.subscribers, sub)
	close(sub.send)
	h.count.Add(-1)
	h.metrics.SubscriberDisconnected()
}

// deliver sends to every matching subscriber without blocking; a subscriber
// whose buffer is full is dropped and has to resync over REST.
func (h *Hub) deliver(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode notification event", zap.Error(err))
		return
	}
	h.metrics.IncrementNotificationEvent(event.Type)

	for sub := range h.subscribers {
		if !sub.filter.Matches(event.FormID) {
			continue
		}
		select {
		case sub.send <- payload:
		default:
			h.logger.Warn("Dropping slow notification subscriber",
				zap.String("subscriber_id", sub.ID.String()),
				zap.String("user_id", sub.UserID.String()),
			)
			h.metrics.IncrementNotificationDropped()
			h.remove(sub)
		}
	}
}

func (h *Hub) closeAll() {
	for sub := range h.subscribers {
		h.remove(sub)
	}
}
