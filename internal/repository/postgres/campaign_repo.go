package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// EmailTemplateRepo реализует repository.EmailTemplateRepository
type EmailTemplateRepo struct {
	db *gorm.DB
}

// NewEmailTemplateRepo создает новый репозиторий шаблонов рассылок
func NewEmailTemplateRepo(db *gorm.DB) *EmailTemplateRepo {
	return &EmailTemplateRepo{db: db}
}

// Create создает шаблон
func (r *EmailTemplateRepo) Create(template *entity.EmailTemplate) error {
	return r.db.Create(template).Error
}

// GetByID возвращает шаблон по ID
func (r *EmailTemplateRepo) GetByID(id uint) (*entity.EmailTemplate, error) {
	var template entity.EmailTemplate
	err := r.db.First(&template, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// List возвращает все шаблоны, новые первыми
func (r *EmailTemplateRepo) List() ([]entity.EmailTemplate, error) {
	var templates []entity.EmailTemplate
	if err := r.db.Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Update сохраняет изменения шаблона
func (r *EmailTemplateRepo) Update(template *entity.EmailTemplate) error {
	return r.db.Save(template).Error
}

// Delete удаляет шаблон
func (r *EmailTemplateRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.EmailTemplate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EmailCampaignRepo реализует repository.EmailCampaignRepository
type EmailCampaignRepo struct {
	db *gorm.DB
}

// NewEmailCampaignRepo создает новый репозиторий кампаний
func NewEmailCampaignRepo(db *gorm.DB) *EmailCampaignRepo {
	return &EmailCampaignRepo{db: db}
}

// Create создает запись кампании
func (r *EmailCampaignRepo) Create(campaign *entity.EmailCampaign) error {
	return r.db.Create(campaign).Error
}

// GetByID возвращает кампанию по ID
func (r *EmailCampaignRepo) GetByID(id uint) (*entity.EmailCampaign, error) {
	var campaign entity.EmailCampaign
	err := r.db.First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// List возвращает все кампании, новые первыми
func (r *EmailCampaignRepo) List() ([]entity.EmailCampaign, error) {
	var campaigns []entity.EmailCampaign
	if err := r.db.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Update сохраняет изменения кампании
func (r *EmailCampaignRepo) Update(campaign *entity.EmailCampaign) error {
	return r.db.Save(campaign).Error
}
