package repository

import (
	"time"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// EmailScheduleRepository определяет методы для работы с расписанием nurture-писем
type EmailScheduleRepository interface {
	CreateBatch(entries []entity.EmailSchedule) error
	// DeletePendingByContact удаляет только pending-записи контакта;
	// история sent/failed остается нетронутой
	DeletePendingByContact(contactID uint) error
	// FindDue возвращает до limit pending-записей с наступившим scheduledAt,
	// отсортированных по scheduledAt asc, с предзагруженным контактом
	FindDue(now time.Time, limit int) ([]entity.EmailSchedule, error)
	// Claim атомарно переводит запись pending -> sending.
	// false без ошибки означает, что запись уже захвачена другим проходом.
	Claim(id uint) (bool, error)
	// Release возвращает захваченную запись sending -> pending
	Release(id uint) error
	MarkSent(id uint, messageID string, sentAt time.Time) error
	MarkFailed(id uint) error
	ListByContact(contactID uint) ([]entity.EmailSchedule, error)
	CountByStatus() (map[string]int64, error)
}
