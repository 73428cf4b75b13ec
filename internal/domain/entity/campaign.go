package entity

import "time"

// Статусы email-шаблонов админки
const (
	TemplateStatusDraft  = "draft"
	TemplateStatusActive = "active"
)

// Статусы разовых кампаний
const (
	CampaignStatusSending = "sending"
	CampaignStatusSent    = "sent"
	CampaignStatusFailed  = "failed"
)

// EmailTemplate - произвольный шаблон письма для разовых рассылок из админки.
// Не путать с NurtureTemplate: здесь нет привязки к типу личности и номеру письма.
type EmailTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Subject   string    `gorm:"size:500;not null" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Category  string    `gorm:"size:100;not null;default:''" json:"category"`
	Status    string    `gorm:"size:20;not null;default:'draft'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (EmailTemplate) TableName() string {
	return "email_templates"
}

// EmailCampaign - запись о разовой кампании по сегменту контактов
type EmailCampaign struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Subject        string     `gorm:"size:500;not null" json:"subject"`
	Body           string     `gorm:"type:text;not null" json:"body"`
	SegmentType    string     `gorm:"size:40;not null;default:''" json:"segment_type"`
	SegmentFilter  string     `gorm:"type:text;not null;default:''" json:"segment_filter"`
	RecipientCount int        `gorm:"not null;default:0" json:"recipient_count"`
	SentCount      int        `gorm:"not null;default:0" json:"sent_count"`
	Status         string     `gorm:"size:20;not null;default:'sending'" json:"status"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (EmailCampaign) TableName() string {
	return "email_campaigns"
}
