package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
)

func TestOccupies(t *testing.T) {
	assert.True(t, Occupies(StatusScheduled))
	assert.False(t, Occupies(StatusCancelled))
	assert.False(t, Occupies(StatusCompleted))
	assert.False(t, Occupies(StatusNoShow))
}

func TestStatusTransitions(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	// Terminal states reject every further transition.
	assert.True(t, httperr.IsBusiness(Cancel(ap, now), "invalid_state"))
	assert.True(t, httperr.IsBusiness(Complete(ap, now), "invalid_state"))
	assert.True(t, httperr.IsBusiness(MarkNoShow(ap, now), "invalid_state"))

	ap = &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	ap = &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, MarkNoShow(ap, now))
	assert.Equal(t, string(StatusNoShow), ap.Status)
	require.NotNil(t, ap.NoShowAt)
}

func TestAggregateServiceSpecSingleService(t *testing.T) {
	total, procStart, procDur, err := AggregateServiceSpec([]models.Service{
		{DurationMin: 45},
	})
	require.NoError(t, err)
	assert.Equal(t, 45, total)
	assert.Zero(t, procStart)
	assert.Zero(t, procDur)
}

func TestAggregateServiceSpecProcessingWindow(t *testing.T) {
	total, procStart, procDur, err := AggregateServiceSpec([]models.Service{
		{DurationMin: 90, ProcessingStartMin: 30, ProcessingDurationMin: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, 90, total)
	assert.Equal(t, 30, procStart)
	assert.Equal(t, 30, procDur)
}

func TestAggregateServiceSpecWindowOffsetByPrecedingServices(t *testing.T) {
	// A 30-minute cut before a colour shifts the colour's window by 30.
	total, procStart, procDur, err := AggregateServiceSpec([]models.Service{
		{DurationMin: 30},
		{DurationMin: 90, ProcessingStartMin: 30, ProcessingDurationMin: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, 120, total)
	assert.Equal(t, 60, procStart)
	assert.Equal(t, 30, procDur)
}

func TestAggregateServiceSpecOnlyFirstWindowCounts(t *testing.T) {
	total, procStart, procDur, err := AggregateServiceSpec([]models.Service{
		{DurationMin: 60, ProcessingStartMin: 15, ProcessingDurationMin: 15},
		{DurationMin: 60, ProcessingStartMin: 10, ProcessingDurationMin: 40},
	})
	require.NoError(t, err)
	assert.Equal(t, 120, total)
	assert.Equal(t, 15, procStart)
	assert.Equal(t, 15, procDur)
}

func TestAggregateServiceSpecRejectsBadInput(t *testing.T) {
	_, _, _, err := AggregateServiceSpec([]models.Service{{DurationMin: 0}})
	assert.True(t, httperr.IsBusiness(err, "invalid_service_duration"))

	_, _, _, err = AggregateServiceSpec([]models.Service{
		{DurationMin: 60, ProcessingStartMin: 45, ProcessingDurationMin: 30},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_processing_window"))
}
