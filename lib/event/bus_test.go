package event

import (
	"testing"

	"careers-backend/models"

	"github.com/stretchr/testify/require"
)

func TestBus(t *testing.T) {
	t.Run(`handlers run in registration order`, func(t *testing.T) {
		bus := NewBus()
		got := []string{}
		bus.Subscribe(ApplicationReceived, func(e Event) {
			got = append(got, "first")
		})
		bus.Subscribe(ApplicationReceived, func(e Event) {
			got = append(got, "second")
		})

		bus.Publish(ApplicationReceived, ApplicationPayload{ApplicationID: "app-1"})
		require.Equal(t, []string{"first", "second"}, got)
	})

	t.Run(`payload reaches the handler untouched`, func(t *testing.T) {
		bus := NewBus()
		var got ApplicationPayload
		bus.Subscribe(ApplicationStatusChanged, func(e Event) {
			got = e.Payload.(ApplicationPayload)
		})

		bus.Publish(ApplicationStatusChanged, ApplicationPayload{
			ApplicationID: "app-1",
			OldStatus:     models.ApplicationStatusNew,
			NewStatus:     models.ApplicationStatusHired,
		})
		require.Equal(t, "app-1", got.ApplicationID)
		require.Equal(t, models.ApplicationStatusNew, got.OldStatus)
		require.Equal(t, models.ApplicationStatusHired, got.NewStatus)
	})

	t.Run(`other codes stay untriggered`, func(t *testing.T) {
		bus := NewBus()
		called := false
		bus.Subscribe(PositionPublished, func(e Event) {
			called = true
		})

		bus.Publish(ApplicationReceived, ApplicationPayload{})
		require.False(t, called)
	})

	t.Run(`a panicking handler does not stop the rest`, func(t *testing.T) {
		bus := NewBus()
		called := false
		bus.Subscribe(PositionPublished, func(e Event) {
			panic("boom")
		})
		bus.Subscribe(PositionPublished, func(e Event) {
			called = true
		})

		require.NotPanics(t, func() {
			bus.Publish(PositionPublished, PositionPayload{PositionID: "pos-1"})
		})
		require.True(t, called)
	})
}
