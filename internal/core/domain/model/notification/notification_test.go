package notification_test

import (
	"testing"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	trackingID, err := kernel.NewTrackingID(555111)
	require.NoError(t, err)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("builds an immutable record", func(t *testing.T) {
		parcelID := kernel.NewUUID()
		n, err := notification.NewNotification(kernel.NewUUID(), parcelID, trackingID,
			notification.Receiver, "555-0199", "Parcel TRK-555111 is now in transit.", at)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.Equal(t, "Receiver", n.Recipient().String())
		assert.Equal(t, parcelID, n.ParcelID())
		assert.Equal(t, at, n.CreatedAt())
	})

	t.Run("requires phone, message and a known recipient", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), trackingID,
			notification.UnknownRecipient, " ", "", at)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "message")
		assert.Contains(t, err.Error(), "recipient")
	})
}

func TestRecipientFromString(t *testing.T) {
	r, err := notification.RecipientFromString("Sender")
	require.NoError(t, err)
	assert.Equal(t, notification.Sender, r)

	_, err = notification.RecipientFromString("sender")
	require.Error(t, err)
}
