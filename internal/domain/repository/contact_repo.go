package repository

import (
	"time"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// ContactFilter - параметры выборки контактов в админке
type ContactFilter struct {
	PersonalityType string
	Search          string // подстрока в email или имени
	Limit           int
	Offset          int
}

// ContactRepository определяет методы для работы с контактами
type ContactRepository interface {
	// Upsert вставляет контакт или обновляет существующий по email.
	// После вызова contact.ID заполнен актуальным значением.
	Upsert(contact *entity.Contact) error
	GetByID(id uint) (*entity.Contact, error)
	GetByEmail(email string) (*entity.Contact, error)
	// List возвращает страницу контактов и общее число под фильтром
	List(filter ContactFilter) ([]entity.Contact, int64, error)
	// ListBySegment возвращает контакты сегмента кампании: все или по типу личности
	ListBySegment(segmentType, segmentFilter string) ([]entity.Contact, error)
	Count() (int64, error)
	CountSince(t time.Time) (int64, error)
	// CountByField возвращает распределение контактов по значению колонки.
	// Допустимы только перечисленные реализацией колонки-анкеты.
	CountByField(field string) (map[string]int64, error)
}
