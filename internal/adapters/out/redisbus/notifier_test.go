package redisbus

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeNotification_WithRider(t *testing.T) {
	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()

	payload, err := encodeNotification(ports.OrderNotification{
		OrderID: orderID,
		Status:  order.Accepted,
		RiderID: &riderID,
	})
	require.NoError(t, err)

	decoded, err := decodeNotification(string(payload))
	require.NoError(t, err)
	assert.True(t, decoded.OrderID.IsEqual(orderID))
	assert.Equal(t, order.Accepted, decoded.Status)
	require.NotNil(t, decoded.RiderID)
	assert.True(t, decoded.RiderID.IsEqual(riderID))
}

func TestEncodeDecodeNotification_Unassigned(t *testing.T) {
	payload, err := encodeNotification(ports.OrderNotification{
		OrderID: kernel.NewUUID(),
		Status:  order.Pending,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "rider_id")

	decoded, err := decodeNotification(string(payload))
	require.NoError(t, err)
	assert.Equal(t, order.Pending, decoded.Status)
	assert.Nil(t, decoded.RiderID)
}

func TestDecodeNotification_Malformed(t *testing.T) {
	_, err := decodeNotification(`{"order_id":"not-a-uuid","status":"pending"}`)
	require.Error(t, err)

	_, err = decodeNotification(`{"order_id":"` + kernel.NewUUID().String() + `","status":"unknown"}`)
	require.Error(t, err)

	_, err = decodeNotification(`not json`)
	require.Error(t, err)
}

func TestRiderChannelNaming(t *testing.T) {
	riderID := kernel.NewUUID()
	assert.Equal(t, "orders.rider."+riderID.String(), riderChannel(riderID))
}
