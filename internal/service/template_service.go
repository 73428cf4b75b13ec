package service

import (
	"fmt"
	"strings"

	"github.com/quizfortraders/funnel-api/internal/content"
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// NurtureTemplateService - админские операции над nurture-шаблонами
type NurtureTemplateService struct {
	templateRepo repository.NurtureTemplateRepository
}

func NewNurtureTemplateService(templateRepo repository.NurtureTemplateRepository) *NurtureTemplateService {
	return &NurtureTemplateService{templateRepo: templateRepo}
}

// List возвращает шаблоны локали (пустая локаль - все)
func (s *NurtureTemplateService) List(locale string) ([]entity.NurtureTemplate, error) {
	return s.templateRepo.List(locale)
}

// Get возвращает шаблон по ID
func (s *NurtureTemplateService) Get(id uint) (*entity.NurtureTemplate, error) {
	return s.templateRepo.GetByID(id)
}

// Update редактирует subject и body шаблона. Ключ (тип, номер, локаль)
// неизменяем: он определяет место шаблона в последовательности.
func (s *NurtureTemplateService) Update(id uint, subject, body string) (*entity.NurtureTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: body is required", apperrors.ErrValidation)
	}

	template.Subject = subject
	template.Body = body
	if err := s.templateRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

// SeedDefaults заливает зашитые шаблоны в базу (upsert по композитному
// ключу). Повторный запуск безопасен и обновляет тексты до актуальных.
func (s *NurtureTemplateService) SeedDefaults() (int, error) {
	seeds := content.SeedTemplates()
	for _, seed := range seeds {
		template := &entity.NurtureTemplate{
			PersonalityType: seed.PersonalityType,
			EmailNumber:     seed.EmailNumber,
			Locale:          seed.Locale,
			Subject:         seed.Subject,
			Body:            seed.HTMLBody,
		}
		if err := s.templateRepo.Upsert(template); err != nil {
			return 0, fmt.Errorf("upsert template %s/%d/%s: %w",
				seed.PersonalityType, seed.EmailNumber, seed.Locale, err)
		}
	}
	return len(seeds), nil
}
