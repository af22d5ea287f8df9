package eventhandlers_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"logitrack/internal/core/application/eventhandlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParcelEventForwarder_Handle(t *testing.T) {
	ctx := t.Context()
	ev := bookingEvent(t)

	publisher := new(MockParcelEventPublisher)
	publisher.On("PublishStatusChanged", ctx, ev).Return(nil).Once()

	require.NoError(t, eventhandlers.NewParcelEventForwarder(publisher).Handle(ctx, ev))
	publisher.AssertExpectations(t)
}

func TestParcelEventForwarder_Handle_PublishError(t *testing.T) {
	ctx := t.Context()
	ev := bookingEvent(t)

	publisher := new(MockParcelEventPublisher)
	publisher.On("PublishStatusChanged", ctx, ev).Return(errors.New("broker unavailable")).Once()

	err := eventhandlers.NewParcelEventForwarder(publisher).Handle(ctx, ev)
	require.EqualError(t, err, "broker unavailable")
}

func TestEventLogger_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	require.NoError(t, eventhandlers.NewEventLogger(logger).Handle(t.Context(), bookingEvent(t)))

	out := buf.String()
	assert.Contains(t, out, `"event":"parcel.status_changed"`)
	assert.Contains(t, out, `"trackingId":"TRK-246810"`)
	assert.Contains(t, out, `"to":"BOOKED"`)
	assert.Contains(t, out, `"component":"event_logger"`)
}
