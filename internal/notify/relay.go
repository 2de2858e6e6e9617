package notify

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"consensus-api/internal/metrics"
)

const maxRelayBackoff = 30 * time.Second

// RedisRelay publishes events to a redis channel and feeds every event seen
// on that channel into the local hub, so all replicas reach their own subscribers.
// While the relay is not subscribed, published events go to the local hub directly.
type RedisRelay struct {
	client     *redis.Client
	channel    string
	hub        *Hub
	logger     *zap.Logger
	metrics    *metrics.Metrics
	subscribed atomic.Bool
}

// NewRedisRelay creates a relay bound to channel
func NewRedisRelay(client *redis.Client, channel string, hub *Hub, logger *zap.Logger, m *metrics.Metrics) *RedisRelay {
	return &RedisRelay{
		client:  client,
		channel: channel,
		hub:     hub,
		logger:  logger,
		metrics: m,
	}
}

// Publish sends the event through redis. Local subscribers are served directly
// when redis is unreachable or this relay is not subscribed to the channel.
func (r *RedisRelay) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		r.metrics.IncrementNotificationPublishError()
		r.logger.Warn("Redis publish failed, delivering locally only",
			zap.String("channel", r.channel),
			zap.Error(err),
		)
		return r.hub.Publish(ctx, event)
	}
	if !r.subscribed.Load() {
		r.logger.Debug("Relay not subscribed, delivering locally", zap.String("channel", r.channel))
		return r.hub.Publish(ctx, event)
	}
	return nil
}

// Subscribed reports whether events published to redis currently come back to the local hub
func (r *RedisRelay) Subscribed() bool {
	return r.subscribed.Load()
}

// Serve keeps the relay subscribed until ctx is done, retrying with
// exponential backoff starting at retryInterval
func (r *RedisRelay) Serve(ctx context.Context, retryInterval time.Duration) {
	if retryInterval <= 0 {
		retryInterval = time.Second
	}
	backoff := retryInterval
	for {
		err := r.Run(ctx)
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			// the subscription was established and then dropped
			backoff = retryInterval
		}
		r.logger.Warn("Notification relay disconnected, retrying",
			zap.String("channel", r.channel),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if err != nil {
			backoff *= 2
			if backoff > maxRelayBackoff {
				backoff = maxRelayBackoff
			}
		}
	}
}

// Run subscribes to the channel and forwards decoded events to the hub until ctx is done
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	r.subscribed.Store(true)
	defer r.subscribed.Store(false)
	r.logger.Info("Notification relay subscribed", zap.String("channel", r.channel))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.forward(ctx, msg.Payload)
		}
	}
}

func (r *RedisRelay) forward(ctx context.Context, payload string) {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		r.logger.Warn("Discarding malformed relay message", zap.Error(err))
		return
	}
	if err := r.hub.Publish(ctx, event); err != nil {
		r.logger.Debug("Relay forward aborted", zap.Error(err))
	}
}
