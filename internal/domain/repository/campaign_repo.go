package repository

import (
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// EmailTemplateRepository определяет методы для работы с шаблонами разовых рассылок
type EmailTemplateRepository interface {
	Create(template *entity.EmailTemplate) error
	GetByID(id uint) (*entity.EmailTemplate, error)
	List() ([]entity.EmailTemplate, error)
	Update(template *entity.EmailTemplate) error
	Delete(id uint) error
}

// EmailCampaignRepository определяет методы для работы с кампаниями
type EmailCampaignRepository interface {
	Create(campaign *entity.EmailCampaign) error
	GetByID(id uint) (*entity.EmailCampaign, error)
	List() ([]entity.EmailCampaign, error)
	Update(campaign *entity.EmailCampaign) error
}
