package entity

import (
	"time"
)

// Статусы записи расписания nurture-писем.
//
// pending -> sending -> sent | failed
//
// sending - промежуточный статус-клейм: диспетчер (или немедленная отправка
// первого письма) атомарно захватывает запись перед вызовом почтового API,
// чтобы пересекающиеся проходы очереди не отправили одно письмо дважды.
// sent и failed терминальны, из них переходов нет.
const (
	ScheduleStatusPending = "pending"
	ScheduleStatusSending = "sending"
	ScheduleStatusSent    = "sent"
	ScheduleStatusFailed  = "failed"
)

// EmailSchedule - одна запланированная отправка nurture-письма для контакта.
// Создается пакетом из 8 записей при сабмите квиза; повторный сабмит удаляет
// только pending-записи, история sent/failed неприкосновенна.
type EmailSchedule struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ContactID   uint       `gorm:"not null;index" json:"contact_id"`
	Contact     *Contact   `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	EmailNumber int        `gorm:"not null" json:"email_number"`
	ScheduledAt time.Time  `gorm:"not null;index" json:"scheduled_at"`
	Status      string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	MessageID   string     `gorm:"size:255;not null;default:''" json:"message_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (EmailSchedule) TableName() string {
	return "email_schedules"
}

// IsTerminal проверяет, находится ли запись в терминальном статусе
func (s *EmailSchedule) IsTerminal() bool {
	return s.Status == ScheduleStatusSent || s.Status == ScheduleStatusFailed
}

// IsDue проверяет, наступило ли время отправки
func (s *EmailSchedule) IsDue(now time.Time) bool {
	return s.Status == ScheduleStatusPending && !s.ScheduledAt.After(now)
}
