package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// QuizFormRepo реализует repository.QuizFormRepository
type QuizFormRepo struct {
	db *gorm.DB
}

// NewQuizFormRepo создает новый репозиторий форм квиза
func NewQuizFormRepo(db *gorm.DB) *QuizFormRepo {
	return &QuizFormRepo{db: db}
}

// Create создает форму вместе с вопросами
func (r *QuizFormRepo) Create(form *entity.QuizForm) error {
	err := r.db.Create(form).Error
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug %q already taken", apperrors.ErrConflict, form.Slug)
		}
		return err
	}
	return nil
}

// GetByID возвращает форму с вопросами, отсортированными по position
func (r *QuizFormRepo) GetByID(id uint) (*entity.QuizForm, error) {
	var form entity.QuizForm
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_form_questions.position ASC")
		}).
		First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// GetBySlug возвращает форму с вопросами по slug независимо от статуса.
// Фильтрация по published - ответственность сервисного слоя.
func (r *QuizFormRepo) GetBySlug(slug string) (*entity.QuizForm, error) {
	var form entity.QuizForm
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_form_questions.position ASC")
		}).
		Where("slug = ?", slug).
		First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// List возвращает все формы без вопросов, новые первыми
func (r *QuizFormRepo) List() ([]entity.QuizForm, error) {
	var forms []entity.QuizForm
	err := r.db.Order("created_at DESC").Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

// Update сохраняет метаданные формы, не трогая вопросы
func (r *QuizFormRepo) Update(form *entity.QuizForm) error {
	err := r.db.Omit("Questions").Save(form).Error
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug %q already taken", apperrors.ErrConflict, form.Slug)
		}
		return err
	}
	return nil
}

// Delete удаляет форму; вопросы каскадируются по FK
func (r *QuizFormRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.QuizForm{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SlugExists проверяет занятость slug, исключая форму excludeID
func (r *QuizFormRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	query := r.db.Model(&entity.QuizForm{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceQuestions транзакционно удаляет все вопросы формы и создает новые.
// Стабильной идентичности вопроса между правками нет: набор пересоздается целиком.
func (r *QuizFormRepo) ReplaceQuestions(formID uint, questions []entity.QuizFormQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var form entity.QuizForm
		if err := tx.Select("id").First(&form, formID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		if err := tx.Where("form_id = ?", formID).Delete(&entity.QuizFormQuestion{}).Error; err != nil {
			return err
		}

		if len(questions) == 0 {
			return nil
		}

		for i := range questions {
			questions[i].ID = 0
			questions[i].FormID = formID
		}
		return tx.Create(&questions).Error
	})
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
