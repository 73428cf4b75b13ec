package entity

import "time"

// FirstNamePlaceholder - плейсхолдер имени получателя в subject и body шаблонов
const FirstNamePlaceholder = "{{firstName}}"

// NurtureTemplate - редактируемый оператором шаблон nurture-письма.
// Ключ - композит (personalityType, emailNumber, locale). Если для ключа
// записи нет, диспетчер использует зашитый шаблон из пакета content.
type NurtureTemplate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PersonalityType string    `gorm:"size:40;not null;uniqueIndex:idx_nurture_key" json:"personality_type"`
	EmailNumber     int       `gorm:"not null;uniqueIndex:idx_nurture_key" json:"email_number"`
	Locale          string    `gorm:"size:5;not null;default:'en';uniqueIndex:idx_nurture_key" json:"locale"`
	Subject         string    `gorm:"size:500;not null" json:"subject"`
	Body            string    `gorm:"type:text;not null" json:"body"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (NurtureTemplate) TableName() string {
	return "nurture_templates"
}
