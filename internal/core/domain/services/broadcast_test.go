package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
)

func mustOrder(t *testing.T, tableNumber int) *order.Order {
	t.Helper()

	table, err := kernel.NewTableNumber(tableNumber)
	require.NoError(t, err)
	item, err := order.NewItem("draft-ipa", 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), table, []order.Item{item})
	require.NoError(t, err)
	return o
}

func channelsOf(publications []Publication) []Channel {
	channels := make([]Channel, 0, len(publications))
	for _, p := range publications {
		channels = append(channels, p.Channel)
	}
	return channels
}

func TestTableChannel(t *testing.T) {
	table, err := kernel.NewTableNumber(7)
	require.NoError(t, err)

	assert.Equal(t, Channel("table-7"), TableChannel(table))
}

func TestAudienceRouter_RouteCreated(t *testing.T) {
	o := mustOrder(t, 4)

	publications := NewAudienceRouter().RouteCreated(o)

	assert.Equal(t, []Channel{
		ChannelGlobal, Channel("table-4"), ChannelKitchen, ChannelWaiters, ChannelAdmin,
	}, channelsOf(publications))
	for _, p := range publications {
		assert.Equal(t, EventOrderCreated, p.Event)
		payload, ok := p.Payload.(OrderPayload)
		require.True(t, ok)
		assert.Equal(t, o.ID().String(), payload.ID)
		assert.Equal(t, 4, payload.TableNumber)
		assert.Equal(t, "pending", payload.Status)
	}
}

func TestAudienceRouter_RouteStatusChanged(t *testing.T) {
	tests := []struct {
		target       order.Status
		extraChannel Channel
		extraEvent   EventName
	}{
		{order.Preparing, ChannelKitchen, EventOrderUpdated},
		{order.Ready, ChannelWaiters, EventOrderUpdated},
		{order.Delivered, Channel("table-9"), EventOrderCompleted},
		{order.Cancelled, ChannelGlobal, EventOrderCancelled},
	}

	for _, test := range tests {
		t.Run(test.target.String(), func(t *testing.T) {
			o := mustOrder(t, 9)
			previous, err := o.ChangeStatus(test.target)
			require.NoError(t, err)

			publications := NewAudienceRouter().RouteStatusChanged(o, previous)

			require.Len(t, publications, 3)

			assert.Equal(t, ChannelGlobal, publications[0].Channel)
			assert.Equal(t, EventOrderStatusChanged, publications[0].Event)
			assert.Equal(t, Channel("table-9"), publications[1].Channel)
			assert.Equal(t, EventOrderStatusChanged, publications[1].Event)

			changePayload, ok := publications[0].Payload.(StatusChangePayload)
			require.True(t, ok)
			assert.Equal(t, order.Pending.String(), changePayload.PreviousStatus)
			assert.Equal(t, test.target.String(), changePayload.NewStatus)
			assert.Equal(t, test.target.String(), changePayload.Order.Status)

			assert.Equal(t, test.extraChannel, publications[2].Channel)
			assert.Equal(t, test.extraEvent, publications[2].Event)
			orderPayload, ok := publications[2].Payload.(OrderPayload)
			require.True(t, ok)
			assert.Equal(t, o.ID().String(), orderPayload.ID)
		})
	}
}

func TestAudienceRouter_RouteStatusChanged_PendingHasNoRoleAudience(t *testing.T) {
	o := mustOrder(t, 2)
	previous, err := o.ChangeStatus(order.Preparing)
	require.NoError(t, err)
	_ = previous
	previous, err = o.ChangeStatus(order.Pending)
	require.NoError(t, err)

	publications := NewAudienceRouter().RouteStatusChanged(o, previous)

	require.Len(t, publications, 2)
	assert.Equal(t, []Channel{ChannelGlobal, Channel("table-2")}, channelsOf(publications))
}

func TestAudienceRouter_RouteRemoved(t *testing.T) {
	o := mustOrder(t, 12)

	publications := NewAudienceRouter().RouteRemoved(o)

	assert.Equal(t, []Channel{
		ChannelGlobal, Channel("table-12"), ChannelKitchen, ChannelWaiters, ChannelAdmin,
	}, channelsOf(publications))
	for _, p := range publications {
		assert.Equal(t, EventOrderCancelled, p.Event)
	}
}
