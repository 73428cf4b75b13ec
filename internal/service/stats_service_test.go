package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

func TestStatsService_CollectsAndCaches(t *testing.T) {
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)
	cacheRepo := new(MockCacheRepo)

	cacheRepo.On("GetJSON", statsCacheKey, mock.Anything).Return(apperrors.ErrNotFound)
	contactRepo.On("Count").Return(int64(120), nil)
	// CountSince зовется для "сегодня" и для рядов по дням
	contactRepo.On("CountSince", mock.Anything).Return(int64(0), nil)
	scheduleRepo.On("CountByStatus").Return(map[string]int64{"pending": 40, "sent": 60}, nil)
	contactRepo.On("CountByField", "personality_type").Return(map[string]int64{"emotional_trader": 80}, nil)
	contactRepo.On("CountByField", "experience_level").Return(map[string]int64{"beginner": 50}, nil)
	contactRepo.On("CountByField", "automation_experience").Return(map[string]int64{"automation_ready": 30}, nil)
	cacheRepo.On("SetJSON", statsCacheKey, mock.Anything, statsCacheTTL).Return(nil)

	svc := NewStatsService(contactRepo, scheduleRepo, cacheRepo)
	stats, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalContacts)
	assert.Equal(t, int64(60), stats.EmailsByStatus["sent"])
	assert.Equal(t, int64(80), stats.ByPersonality["emotional_trader"])
	assert.Len(t, stats.SubmissionsByDay, 30)
	cacheRepo.AssertCalled(t, "SetJSON", statsCacheKey, mock.Anything, statsCacheTTL)
}

func TestStatsService_ServesFromCache(t *testing.T) {
	contactRepo := new(MockContactRepo)
	cacheRepo := new(MockCacheRepo)

	cacheRepo.On("GetJSON", statsCacheKey, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(1).(*FunnelStats)
		dest.TotalContacts = 99
	}).Return(nil)

	svc := NewStatsService(contactRepo, new(MockScheduleRepo), cacheRepo)
	stats, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, int64(99), stats.TotalContacts)
	// До базы не дошли
	contactRepo.AssertNotCalled(t, "Count")
}

func TestStatsService_Invalidate(t *testing.T) {
	cacheRepo := new(MockCacheRepo)
	cacheRepo.On("Delete", statsCacheKey).Return(nil)

	svc := NewStatsService(new(MockContactRepo), new(MockScheduleRepo), cacheRepo)
	svc.Invalidate()

	cacheRepo.AssertCalled(t, "Delete", statsCacheKey)
}

func TestStatsService_WorksWithoutCache(t *testing.T) {
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)

	contactRepo.On("Count").Return(int64(1), nil)
	contactRepo.On("CountSince", mock.Anything).Return(int64(0), nil)
	scheduleRepo.On("CountByStatus").Return(map[string]int64{}, nil)
	contactRepo.On("CountByField", mock.Anything).Return(map[string]int64{}, nil)

	svc := NewStatsService(contactRepo, scheduleRepo, nil)
	stats, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalContacts)
}
