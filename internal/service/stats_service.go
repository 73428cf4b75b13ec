package service

import (
	"log"
	"time"

	"github.com/quizfortraders/funnel-api/internal/domain/repository"
)

// statsCacheKey и statsCacheTTL - кеширование агрегатов в Redis.
// Дашборд опрашивает статистику часто, агрегаты меняются редко.
const (
	statsCacheKey = "funnel:stats"
	statsCacheTTL = 60 * time.Second
)

// FunnelStats - агрегированная статистика воронки для админского дашборда
type FunnelStats struct {
	TotalContacts    int64            `json:"total_contacts"`
	ContactsToday    int64            `json:"contacts_today"`
	EmailsByStatus   map[string]int64 `json:"emails_by_status"`
	ByPersonality    map[string]int64 `json:"by_personality"`
	ByExperience     map[string]int64 `json:"by_experience"`
	ByAutomation     map[string]int64 `json:"by_automation"`
	SubmissionsByDay []DayCount       `json:"submissions_by_day"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

// DayCount - количество сабмитов за календарный день
type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// StatsService собирает статистику воронки с коротким Redis-кешем
type StatsService struct {
	contactRepo  repository.ContactRepository
	scheduleRepo repository.EmailScheduleRepository
	cacheRepo    repository.CacheRepository
}

func NewStatsService(
	contactRepo repository.ContactRepository,
	scheduleRepo repository.EmailScheduleRepository,
	cacheRepo repository.CacheRepository,
) *StatsService {
	return &StatsService{
		contactRepo:  contactRepo,
		scheduleRepo: scheduleRepo,
		cacheRepo:    cacheRepo,
	}
}

// Get возвращает статистику, из кеша когда возможно
func (s *StatsService) Get() (*FunnelStats, error) {
	if s.cacheRepo != nil {
		var cached FunnelStats
		if err := s.cacheRepo.GetJSON(statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.collect()
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(statsCacheKey, stats, statsCacheTTL); err != nil {
			log.Printf("[Stats] cache write failed: %v", err)
		}
	}
	return stats, nil
}

// Invalidate сбрасывает кеш; вызывается после сабмита квиза
func (s *StatsService) Invalidate() {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(statsCacheKey); err != nil {
		log.Printf("[Stats] cache invalidate failed: %v", err)
	}
}

func (s *StatsService) collect() (*FunnelStats, error) {
	now := time.Now().UTC()

	total, err := s.contactRepo.Count()
	if err != nil {
		return nil, err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.contactRepo.CountSince(startOfDay)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.scheduleRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	byType, err := s.contactRepo.CountByField("personality_type")
	if err != nil {
		return nil, err
	}
	byExperience, err := s.contactRepo.CountByField("experience_level")
	if err != nil {
		return nil, err
	}
	byAutomation, err := s.contactRepo.CountByField("automation_experience")
	if err != nil {
		return nil, err
	}

	byDay, err := s.submissionsByDay(now, 30)
	if err != nil {
		return nil, err
	}

	return &FunnelStats{
		TotalContacts:    total,
		ContactsToday:    today,
		EmailsByStatus:   byStatus,
		ByPersonality:    byType,
		ByExperience:     byExperience,
		ByAutomation:     byAutomation,
		SubmissionsByDay: byDay,
		GeneratedAt:      now,
	}, nil
}

// submissionsByDay считает сабмиты по дням за последние days дней.
// Дни без сабмитов присутствуют с нулем, ряд непрерывен.
func (s *StatsService) submissionsByDay(now time.Time, days int) ([]DayCount, error) {
	out := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		since, err := s.contactRepo.CountSince(start)
		if err != nil {
			return nil, err
		}
		sinceNext, err := s.contactRepo.CountSince(start.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}

		out = append(out, DayCount{
			Day:   start.Format("2006-01-02"),
			Count: since - sinceNext,
		})
	}
	return out, nil
}
