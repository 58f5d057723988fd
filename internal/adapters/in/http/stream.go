package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"marketplace/internal/core/domain/model/viewer"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// StreamEvent is the server-sent event body pushed on the order change feed.
// It is a refetch cue, not state: clients re-query their order list on receipt.
type StreamEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	RiderID string `json:"rider_id,omitempty"`
}

func streamEventFromNotification(notification ports.OrderNotification) StreamEvent {
	event := StreamEvent{
		OrderID: notification.OrderID.String(),
		Status:  notification.Status.String(),
	}
	if notification.RiderID != nil {
		event.RiderID = notification.RiderID.String()
	}
	return event
}

// StreamOrders handles GET /api/v1/orders/stream - a server-sent event feed of
// order change cues for a rider: the shared pool channel merged with the
// rider's personal channel. The stream runs until the client disconnects.
func (s *Server) StreamOrders(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleRider)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	requestCtx := ctx.Request().Context()

	pool, err := s.subscriber.SubscribePool(requestCtx)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}
	defer func() {
		_ = pool.Close()
	}()

	personal, err := s.subscriber.SubscribeRider(requestCtx, actor.ID())
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}
	defer func() {
		_ = personal.Close()
	}()

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	for {
		select {
		case <-requestCtx.Done():
			return nil
		case notification, ok := <-pool.Notifications():
			if !ok {
				return nil
			}
			if err := writeStreamEvent(response, notification); err != nil {
				return nil
			}
		case notification, ok := <-personal.Notifications():
			if !ok {
				return nil
			}
			if err := writeStreamEvent(response, notification); err != nil {
				return nil
			}
		}
	}
}

func writeStreamEvent(response *echo.Response, notification ports.OrderNotification) error {
	payload, err := json.Marshal(streamEventFromNotification(notification))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(response, "data: %s\n\n", payload); err != nil {
		return err
	}

	response.Flush()
	return nil
}
