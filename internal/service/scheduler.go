package service

import (
	"time"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// NurtureDayOffsets - дни отправки nurture-последовательности относительно
// сабмита квиза. Письмо N уходит в день NurtureDayOffsets[N-1].
var NurtureDayOffsets = []int{0, 1, 3, 5, 7, 10, 14, 17}

// BuildSchedule строит полный пакет записей расписания для контакта.
// Номера писем 1-индексированы, scheduledAt = submittedAt + offset дней.
func BuildSchedule(contactID uint, submittedAt time.Time) []entity.EmailSchedule {
	entries := make([]entity.EmailSchedule, 0, len(NurtureDayOffsets))
	for i, days := range NurtureDayOffsets {
		entries = append(entries, entity.EmailSchedule{
			ContactID:   contactID,
			EmailNumber: i + 1,
			ScheduledAt: submittedAt.AddDate(0, 0, days),
			Status:      entity.ScheduleStatusPending,
		})
	}
	return entries
}
