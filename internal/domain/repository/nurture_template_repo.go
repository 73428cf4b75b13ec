package repository

import (
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// NurtureTemplateRepository определяет методы для работы с переопределениями
// nurture-шаблонов. Отсутствие записи по ключу - штатная ситуация: диспетчер
// откатывается на зашитый шаблон.
type NurtureTemplateRepository interface {
	// List возвращает шаблоны локали, отсортированные по типу и номеру письма
	List(locale string) ([]entity.NurtureTemplate, error)
	GetByID(id uint) (*entity.NurtureTemplate, error)
	GetByKey(personalityType string, emailNumber int, locale string) (*entity.NurtureTemplate, error)
	Update(template *entity.NurtureTemplate) error
	// Upsert вставляет шаблон или обновляет существующий по композитному ключу
	Upsert(template *entity.NurtureTemplate) error
}
