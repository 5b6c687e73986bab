package streams

import (
	"testing"

	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatusEvent(t *testing.T) {
	event, err := decodeStatusEvent([]byte(`{
		"id": "T1",
		"status": "completed",
		"external_ref": "X1"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "T1", event.ID)
	assert.Equal(t, models.StatusCompleted, event.Status)
	assert.Equal(t, "X1", event.ExternalRef)
}

func TestDecodeStatusEvent_FailedCarriesError(t *testing.T) {
	event, err := decodeStatusEvent([]byte(`{
		"id": "T2",
		"status": "failed",
		"error": "INSUFFICIENT_BALANCE"
	}`))
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, event.Status)
	assert.Equal(t, "INSUFFICIENT_BALANCE", event.Error)
}

func TestDecodeStatusEvent_Invalid(t *testing.T) {
	_, err := decodeStatusEvent([]byte(`{not json`))
	assert.Error(t, err)

	_, err = decodeStatusEvent([]byte(`{"status": "completed"}`))
	assert.Error(t, err, "an event without a transaction id cannot be routed")
}
