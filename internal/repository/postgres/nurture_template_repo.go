package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// NurtureTemplateRepo реализует repository.NurtureTemplateRepository
type NurtureTemplateRepo struct {
	db *gorm.DB
}

// NewNurtureTemplateRepo создает новый репозиторий nurture-шаблонов
func NewNurtureTemplateRepo(db *gorm.DB) *NurtureTemplateRepo {
	return &NurtureTemplateRepo{db: db}
}

// List возвращает шаблоны локали по типу личности и номеру письма
func (r *NurtureTemplateRepo) List(locale string) ([]entity.NurtureTemplate, error) {
	var templates []entity.NurtureTemplate
	query := r.db.Order("personality_type ASC, email_number ASC")
	if locale != "" {
		query = query.Where("locale = ?", locale)
	}
	if err := query.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetByID возвращает шаблон по ID
func (r *NurtureTemplateRepo) GetByID(id uint) (*entity.NurtureTemplate, error) {
	var template entity.NurtureTemplate
	err := r.db.First(&template, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// GetByKey возвращает шаблон по композитному ключу (тип, номер, локаль)
func (r *NurtureTemplateRepo) GetByKey(personalityType string, emailNumber int, locale string) (*entity.NurtureTemplate, error) {
	var template entity.NurtureTemplate
	err := r.db.
		Where("personality_type = ? AND email_number = ? AND locale = ?", personalityType, emailNumber, locale).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// Update сохраняет изменения шаблона
func (r *NurtureTemplateRepo) Update(template *entity.NurtureTemplate) error {
	return r.db.Save(template).Error
}

// Upsert вставляет шаблон или обновляет существующий по композитному ключу.
// Используется сидером для заливки зашитых шаблонов в базу.
func (r *NurtureTemplateRepo) Upsert(template *entity.NurtureTemplate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "personality_type"},
			{Name: "email_number"},
			{Name: "locale"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"subject", "body", "updated_at"}),
	}).Create(template).Error
}
