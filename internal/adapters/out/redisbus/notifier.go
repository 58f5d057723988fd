// Package redisbus implements the order change feed over Redis pub/sub.
//
// Two channel families exist: a shared pool channel every dashboard session
// may watch, and one channel per rider carrying changes of that rider's
// assigned orders. Messages are refetch cues, not state transfer: delivery is
// at-least-once, duplicates and stale statuses are expected, and subscribers
// must re-query through a role-scoped read before acting on a cue.
package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	poolChannel        = "orders.changed"
	riderChannelPrefix = "orders.rider."
)

func riderChannel(riderID kernel.UUID) string {
	return riderChannelPrefix + riderID.String()
}

// message is the wire payload of a change cue.
type message struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	RiderID string `json:"rider_id,omitempty"`
}

func encodeNotification(n ports.OrderNotification) ([]byte, error) {
	msg := message{
		OrderID: n.OrderID.String(),
		Status:  n.Status.String(),
	}
	if n.RiderID != nil {
		msg.RiderID = n.RiderID.String()
	}
	return json.Marshal(msg)
}

func decodeNotification(payload string) (ports.OrderNotification, error) {
	var msg message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return ports.OrderNotification{}, err
	}

	orderID, err := kernel.UUIDFromString(msg.OrderID)
	if err != nil {
		return ports.OrderNotification{}, err
	}

	status, err := order.StatusFromString(msg.Status)
	if err != nil {
		return ports.OrderNotification{}, err
	}

	notification := ports.OrderNotification{
		OrderID: orderID,
		Status:  status,
	}
	if msg.RiderID != "" {
		riderID, riderErr := kernel.UUIDFromString(msg.RiderID)
		if riderErr != nil {
			return ports.OrderNotification{}, riderErr
		}
		notification.RiderID = &riderID
	}

	return notification, nil
}

// Notifier publishes order change cues to Redis.
type Notifier struct {
	client *redis.Client
	log    *slog.Logger
}

// NewNotifier creates a Redis-backed order change notifier.
func NewNotifier(client *redis.Client, log *slog.Logger) *Notifier {
	return &Notifier{
		client: client,
		log:    log.With(slog.String("component", "redisbus.notifier")),
	}
}

// PublishOrderChanged publishes the cue to the pool channel and, when a rider
// is assigned, to that rider's personal channel. Redis pub/sub is fire and
// forget; a cue published while a subscriber is disconnected is simply lost,
// which the periodic rebroadcast compensates for.
func (n *Notifier) PublishOrderChanged(ctx context.Context, notification ports.OrderNotification) error {
	payload, err := encodeNotification(notification)
	if err != nil {
		return err
	}

	if err := n.client.Publish(ctx, poolChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", poolChannel, err)
	}

	if notification.RiderID != nil {
		channel := riderChannel(*notification.RiderID)
		if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
			return fmt.Errorf("publish to %s: %w", channel, err)
		}
	}

	n.log.DebugContext(ctx, "published order change",
		slog.String("order_id", notification.OrderID.String()),
		slog.String("status", notification.Status.String()),
	)
	return nil
}
