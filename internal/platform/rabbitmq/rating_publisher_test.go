package rabbitmq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingChangedEvent_Encoding(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	body, err := EncodeRatingChanged("item-1", at)
	require.NoError(t, err)
	assert.JSONEq(t, `{"item_id":"item-1","occurred_at":"2024-05-01T12:00:00Z"}`, string(body))

	event, err := DecodeRatingChanged(body)
	require.NoError(t, err)
	assert.Equal(t, "item-1", event.ItemID)
	assert.True(t, at.Equal(event.OccurredAt))
}

func TestRatingChangedEvent_Invalid(t *testing.T) {
	_, err := EncodeRatingChanged("", time.Now())
	assert.Error(t, err)

	for _, body := range []string{"", "not json", `{}`, `{"item_id":""}`} {
		_, err := DecodeRatingChanged([]byte(body))
		assert.Error(t, err, body)
	}
}

func TestPing_NilConnection(t *testing.T) {
	assert.Error(t, Ping(nil))
}
