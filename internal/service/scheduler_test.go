package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

func TestBuildSchedule(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := BuildSchedule(42, base)

	require.Len(t, entries, 8)
	wantDays := []int{0, 1, 3, 5, 7, 10, 14, 17}
	for i, entry := range entries {
		assert.Equal(t, uint(42), entry.ContactID)
		assert.Equal(t, i+1, entry.EmailNumber)
		assert.Equal(t, entity.ScheduleStatusPending, entry.Status)
		assert.Equal(t, base.AddDate(0, 0, wantDays[i]), entry.ScheduledAt)
	}

	// Первое письмо должно быть due немедленно
	assert.True(t, entries[0].IsDue(base))
	assert.False(t, entries[1].IsDue(base))
}
