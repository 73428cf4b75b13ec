package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// EmailScheduleRepo реализует repository.EmailScheduleRepository
type EmailScheduleRepo struct {
	db *gorm.DB
}

// NewEmailScheduleRepo создает новый репозиторий расписания писем
func NewEmailScheduleRepo(db *gorm.DB) *EmailScheduleRepo {
	return &EmailScheduleRepo{db: db}
}

// CreateBatch создает пакет записей расписания
func (r *EmailScheduleRepo) CreateBatch(entries []entity.EmailSchedule) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

// DeletePendingByContact удаляет pending-записи контакта.
// Записи в остальных статусах (история отправок) не затрагиваются.
func (r *EmailScheduleRepo) DeletePendingByContact(contactID uint) error {
	return r.db.
		Where("contact_id = ? AND status = ?", contactID, entity.ScheduleStatusPending).
		Delete(&entity.EmailSchedule{}).Error
}

// FindDue возвращает до limit pending-записей с наступившим временем отправки,
// по scheduledAt asc, с предзагруженным контактом
func (r *EmailScheduleRepo) FindDue(now time.Time, limit int) ([]entity.EmailSchedule, error) {
	var entries []entity.EmailSchedule
	err := r.db.
		Preload("Contact").
		Where("status = ? AND scheduled_at <= ?", entity.ScheduleStatusPending, now).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Claim атомарно переводит запись pending -> sending.
// RowsAffected == 0 означает, что запись уже захвачена или покинула pending.
func (r *EmailScheduleRepo) Claim(id uint) (bool, error) {
	result := r.db.Model(&entity.EmailSchedule{}).
		Where("id = ? AND status = ?", id, entity.ScheduleStatusPending).
		Update("status", entity.ScheduleStatusSending)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Release возвращает захваченную запись sending -> pending
func (r *EmailScheduleRepo) Release(id uint) error {
	return r.db.Model(&entity.EmailSchedule{}).
		Where("id = ? AND status = ?", id, entity.ScheduleStatusSending).
		Update("status", entity.ScheduleStatusPending).Error
}

// MarkSent переводит запись в терминальный статус sent
func (r *EmailScheduleRepo) MarkSent(id uint, messageID string, sentAt time.Time) error {
	result := r.db.Model(&entity.EmailSchedule{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     entity.ScheduleStatusSent,
			"message_id": messageID,
			"sent_at":    sentAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkFailed переводит запись в терминальный статус failed
func (r *EmailScheduleRepo) MarkFailed(id uint) error {
	result := r.db.Model(&entity.EmailSchedule{}).
		Where("id = ?", id).
		Update("status", entity.ScheduleStatusFailed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListByContact возвращает все записи контакта по номеру письма
func (r *EmailScheduleRepo) ListByContact(contactID uint) ([]entity.EmailSchedule, error) {
	var entries []entity.EmailSchedule
	err := r.db.
		Where("contact_id = ?", contactID).
		Order("email_number ASC").
		Find(&entries).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entity.EmailSchedule{}, nil
		}
		return nil, err
	}
	return entries, nil
}

// CountByStatus возвращает количество записей в каждом статусе
func (r *EmailScheduleRepo) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&entity.EmailSchedule{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
