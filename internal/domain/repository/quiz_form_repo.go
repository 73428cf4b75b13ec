package repository

import (
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// QuizFormRepository определяет методы для работы с формами квиза
type QuizFormRepository interface {
	Create(form *entity.QuizForm) error
	// GetByID возвращает форму с вопросами, отсортированными по position
	GetByID(id uint) (*entity.QuizForm, error)
	// GetBySlug возвращает форму с вопросами по slug независимо от статуса
	GetBySlug(slug string) (*entity.QuizForm, error)
	List() ([]entity.QuizForm, error)
	// Update сохраняет метаданные формы, не трогая вопросы
	Update(form *entity.QuizForm) error
	Delete(id uint) error
	// SlugExists проверяет занятость slug, исключая форму excludeID (0 - без исключений)
	SlugExists(slug string, excludeID uint) (bool, error)
	// ReplaceQuestions транзакционно удаляет все вопросы формы и создает новые
	ReplaceQuestions(formID uint, questions []entity.QuizFormQuestion) error
}
