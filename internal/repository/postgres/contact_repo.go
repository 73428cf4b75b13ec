package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// ContactRepo реализует repository.ContactRepository
type ContactRepo struct {
	db *gorm.DB
}

// NewContactRepo создает новый репозиторий контактов
func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Upsert вставляет контакт или обновляет существующий по email.
// ON CONFLICT по уникальному индексу email перезаписывает производные поля;
// created_at и id существующей записи сохраняются.
func (r *ContactRepo) Upsert(contact *entity.Contact) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"first_name",
			"personality_type",
			"experience_level",
			"performance",
			"automation_experience",
			"biggest_challenge",
			"decision_style",
			"scores",
			"locale",
			"updated_at",
		}),
	}).Create(contact).Error
	if err != nil {
		return err
	}

	// При конфликте gorm возвращает ID вставки, а не существующей строки:
	// перечитываем по email, чтобы ID был актуален для расписания писем.
	var saved entity.Contact
	if err := r.db.Select("id").Where("email = ?", contact.Email).First(&saved).Error; err != nil {
		return err
	}
	contact.ID = saved.ID
	return nil
}

// GetByID возвращает контакт по ID
func (r *ContactRepo) GetByID(id uint) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.db.First(&contact, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// GetByEmail возвращает контакт по email
func (r *ContactRepo) GetByEmail(email string) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.db.Where("email = ?", email).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// List возвращает страницу контактов и общее количество под фильтром
func (r *ContactRepo) List(filter repository.ContactFilter) ([]entity.Contact, int64, error) {
	query := r.db.Model(&entity.Contact{})

	if filter.PersonalityType != "" {
		query = query.Where("personality_type = ?", filter.PersonalityType)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var contacts []entity.Contact
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// ListBySegment возвращает контакты сегмента кампании
func (r *ContactRepo) ListBySegment(segmentType, segmentFilter string) ([]entity.Contact, error) {
	query := r.db.Model(&entity.Contact{})

	switch segmentType {
	case "personality_type":
		query = query.Where("personality_type = ?", segmentFilter)
	case "", "all":
		// без фильтра
	default:
		return nil, apperrors.ErrValidation
	}

	var contacts []entity.Contact
	if err := query.Order("id ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Count возвращает общее количество контактов
func (r *ContactRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Contact{}).Count(&count).Error
	return count, err
}

// CountSince возвращает количество контактов, созданных не раньше t
func (r *ContactRepo) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Contact{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

// statsFields - колонки, по которым разрешены группировки статистики.
// Значение из запроса никогда не попадает в SQL напрямую.
var statsFields = map[string]bool{
	"personality_type":      true,
	"experience_level":      true,
	"performance":           true,
	"automation_experience": true,
}

// CountByField возвращает распределение контактов по значению колонки
func (r *ContactRepo) CountByField(field string) (map[string]int64, error) {
	if !statsFields[field] {
		return nil, apperrors.ErrValidation
	}

	type row struct {
		Value string
		Count int64
	}
	var rows []row
	err := r.db.Model(&entity.Contact{}).
		Select(field + " as value, COUNT(*) as count").
		Group(field).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Value] = rw.Count
	}
	return counts, nil
}
