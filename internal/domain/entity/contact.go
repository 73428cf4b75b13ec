package entity

import (
	"time"
)

// Поддерживаемые локали контактов
const (
	LocaleEN = "en"
	LocaleRU = "ru"
)

// Contact представляет респондента квиза. Один контакт на email:
// повторная отправка квиза с тем же email перезаписывает производные поля
// и пересоздает pending-расписание писем.
type Contact struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	Email                string          `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName            string          `gorm:"size:100;not null" json:"first_name"`
	PersonalityType      string          `gorm:"size:40;not null;index" json:"personality_type"`
	ExperienceLevel      string          `gorm:"size:40;not null;default:''" json:"experience_level"`
	Performance          string          `gorm:"size:40;not null;default:''" json:"performance"`
	AutomationExperience string          `gorm:"size:40;not null;default:''" json:"automation_experience"`
	BiggestChallenge     string          `gorm:"size:40;not null;default:''" json:"biggest_challenge"`
	DecisionStyle        string          `gorm:"size:40;not null;default:''" json:"decision_style"`
	Scores               ScoreVector     `gorm:"type:jsonb" json:"scores"`
	Locale               string          `gorm:"size:5;not null;default:'en'" json:"locale"`
	Emails               []EmailSchedule `gorm:"foreignKey:ContactID" json:"emails,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Contact) TableName() string {
	return "contacts"
}

// NormalizedLocale возвращает локаль контакта, сводя неизвестные значения к en
func (c *Contact) NormalizedLocale() string {
	if c.Locale == LocaleRU {
		return LocaleRU
	}
	return LocaleEN
}
