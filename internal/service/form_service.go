package service

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/quizfortraders/funnel-api/internal/content"
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// FormService управляет формами квиза: CRUD, публикация, пересоздание
// набора вопросов и выдача опубликованной формы публичному фронтенду.
type FormService struct {
	formRepo repository.QuizFormRepository
}

func NewFormService(formRepo repository.QuizFormRepository) *FormService {
	return &FormService{formRepo: formRepo}
}

// GetPublishedBySlug возвращает опубликованную форму для публичного квиза.
// Неопубликованная форма неотличима от несуществующей.
func (s *FormService) GetPublishedBySlug(slug string) (*entity.QuizForm, error) {
	form, err := s.formRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished() {
		return nil, fmt.Errorf("%w: form %q is not published", apperrors.ErrNotFound, slug)
	}
	return form, nil
}

// List возвращает все формы для админки
func (s *FormService) List() ([]entity.QuizForm, error) {
	return s.formRepo.List()
}

// Get возвращает форму с вопросами по ID
func (s *FormService) Get(id uint) (*entity.QuizForm, error) {
	return s.formRepo.GetByID(id)
}

// Create создает форму. Пустой slug генерируется из имени.
func (s *FormService) Create(form *entity.QuizForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if form.Slug == "" {
		form.Slug = Slugify(form.Name)
	}
	if err := s.validateSlug(form.Slug, 0); err != nil {
		return err
	}
	if form.Status == "" {
		form.Status = entity.FormStatusDraft
	}
	if form.Locale == "" {
		form.Locale = entity.LocaleEN
	}
	return s.formRepo.Create(form)
}

// Update обновляет метаданные формы (имя, slug, статус, описание)
func (s *FormService) Update(id uint, updates *entity.QuizForm) (*entity.QuizForm, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updates.Name != "" {
		form.Name = updates.Name
	}
	if updates.Slug != "" && updates.Slug != form.Slug {
		if err := s.validateSlug(updates.Slug, id); err != nil {
			return nil, err
		}
		form.Slug = updates.Slug
	}
	if updates.Status != "" {
		if updates.Status != entity.FormStatusDraft && updates.Status != entity.FormStatusPublished {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, updates.Status)
		}
		form.Status = updates.Status
	}
	if updates.Locale != "" {
		form.Locale = updates.Locale
	}
	if updates.Description != "" {
		form.Description = updates.Description
	}
	if updates.ResultsPath != "" {
		form.ResultsPath = updates.ResultsPath
	}

	if err := s.formRepo.Update(form); err != nil {
		return nil, err
	}
	return form, nil
}

// Delete удаляет форму вместе с вопросами
func (s *FormService) Delete(id uint) error {
	return s.formRepo.Delete(id)
}

// Clone создает копию формы в статусе draft с уникальным slug
func (s *FormService) Clone(id uint) (*entity.QuizForm, error) {
	source, err := s.formRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := source.Slug + "-copy"
	for i := 2; ; i++ {
		exists, err := s.formRepo.SlugExists(slug, 0)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
		slug = fmt.Sprintf("%s-copy-%d", source.Slug, i)
	}

	clone := &entity.QuizForm{
		Name:        source.Name + " (copy)",
		Slug:        slug,
		Locale:      source.Locale,
		Status:      entity.FormStatusDraft,
		ResultsPath: source.ResultsPath,
		Description: source.Description,
	}
	for _, q := range source.Questions {
		clone.Questions = append(clone.Questions, entity.QuizFormQuestion{
			QuestionKey:   q.QuestionKey,
			Type:          q.Type,
			Prompt:        q.Prompt,
			Placeholder:   q.Placeholder,
			Options:       q.Options,
			Position:      q.Position,
			Required:      q.Required,
			ScoringWeight: q.ScoringWeight,
			ScoringMap:    q.ScoringMap,
		})
	}

	if err := s.formRepo.Create(clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// ReplaceQuestions валидирует и целиком пересоздает набор вопросов формы.
// Позиции нормализуются по порядку переданного списка.
func (s *FormService) ReplaceQuestions(formID uint, questions []entity.QuizFormQuestion) (*entity.QuizForm, error) {
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		q.QuestionKey = strings.TrimSpace(q.QuestionKey)
		if q.QuestionKey == "" {
			return nil, fmt.Errorf("%w: question key is required", apperrors.ErrValidation)
		}
		if seen[q.QuestionKey] {
			return nil, fmt.Errorf("%w: duplicate question key %q", apperrors.ErrValidation, q.QuestionKey)
		}
		seen[q.QuestionKey] = true

		switch q.Type {
		case entity.QuestionTypeText, entity.QuestionTypeEmail:
		case entity.QuestionTypeMultipleChoice:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("%w: question %q needs options", apperrors.ErrValidation, q.QuestionKey)
			}
		default:
			return nil, fmt.Errorf("%w: unknown question type %q", apperrors.ErrValidation, q.Type)
		}

		if q.ScoringWeight < 0 {
			return nil, fmt.Errorf("%w: scoring weight cannot be negative", apperrors.ErrValidation)
		}
		q.Position = i
	}

	if err := s.formRepo.ReplaceQuestions(formID, questions); err != nil {
		return nil, err
	}

	log.Printf("[FormService] replaced questions form=%d count=%d", formID, len(questions))
	return s.formRepo.GetByID(formID)
}

// SeedDefaults создает стандартные формы из пакета content, пропуская
// уже существующие slug. Возвращает количество созданных форм.
func (s *FormService) SeedDefaults() (int, error) {
	created := 0
	for _, def := range content.DefaultForms() {
		exists, err := s.formRepo.SlugExists(def.Slug, 0)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		form := &entity.QuizForm{
			Name:        def.Name,
			Slug:        def.Slug,
			Locale:      def.Locale,
			Status:      entity.FormStatusPublished,
			Description: def.Description,
			Questions:   def.Questions,
		}
		if err := s.formRepo.Create(form); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *FormService) validateSlug(slug string, excludeID uint) error {
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("%w: invalid slug %q", apperrors.ErrValidation, slug)
	}
	exists, err := s.formRepo.SlugExists(slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: slug %q already taken", apperrors.ErrConflict, slug)
	}
	return nil
}

// Slugify приводит произвольное имя к slug-форме
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
