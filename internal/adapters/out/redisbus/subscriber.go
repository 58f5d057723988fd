package redisbus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// Subscriber opens change-feed subscriptions over Redis pub/sub.
type Subscriber struct {
	client *redis.Client
	log    *slog.Logger
}

// NewSubscriber creates a Redis-backed change-feed subscriber.
func NewSubscriber(client *redis.Client, log *slog.Logger) *Subscriber {
	return &Subscriber{
		client: client,
		log:    log.With(slog.String("component", "redisbus.subscriber")),
	}
}

// SubscribePool subscribes to the shared pool channel.
func (s *Subscriber) SubscribePool(ctx context.Context) (ports.OrderSubscription, error) {
	return s.subscribe(ctx, poolChannel)
}

// SubscribeRider subscribes to the rider's personal channel.
func (s *Subscriber) SubscribeRider(ctx context.Context, riderID kernel.UUID) (ports.OrderSubscription, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}
	return s.subscribe(ctx, riderChannel(riderID))
}

func (s *Subscriber) subscribe(ctx context.Context, channel string) (ports.OrderSubscription, error) {
	pubsub := s.client.Subscribe(ctx, channel)

	// Wait for the subscription confirmation, retrying with exponential
	// backoff while the broker is briefly unreachable.
	confirm := func() error {
		_, err := pubsub.Receive(ctx)
		return err
	}
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(confirm, backoff.WithContext(policy, ctx)); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	sub := &subscription{
		pubsub:  pubsub,
		channel: channel,
		out:     make(chan ports.OrderNotification),
		done:    make(chan struct{}),
		log:     s.log,
	}
	go sub.pump(pubsub.Channel())

	return sub, nil
}

// subscription adapts a redis.PubSub to the OrderSubscription port.
// The underlying client reconnects on its own after connection loss; cues
// published while disconnected are lost and recovered via rebroadcast.
type subscription struct {
	pubsub    *redis.PubSub
	channel   string
	out       chan ports.OrderNotification
	done      chan struct{}
	closeOnce sync.Once
	log       *slog.Logger
}

func (s *subscription) pump(messages <-chan *redis.Message) {
	defer close(s.out)

	for msg := range messages {
		notification, err := decodeNotification(msg.Payload)
		if err != nil {
			// A malformed cue carries no information a refetch would
			// not recover anyway.
			s.log.Warn("dropping malformed change cue",
				slog.String("channel", s.channel),
				slog.Any("error", err),
			)
			continue
		}

		// The consumer may have gone away with a cue still in flight;
		// done unblocks the send so the pump never outlives Close.
		select {
		case s.out <- notification:
		case <-s.done:
			return
		}
	}
}

// Notifications returns the channel change cues arrive on.
func (s *subscription) Notifications() <-chan ports.OrderNotification {
	return s.out
}

// Close terminates the subscription. The notification channel is closed once
// the pump drains; a pump blocked on an undelivered cue is released
// immediately.
func (s *subscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}
