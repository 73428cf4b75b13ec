package dto

import (
	"time"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// ContactResponse представляет контакт в формате для админки
type ContactResponse struct {
	ID                   uint               `json:"id"`
	Email                string             `json:"email"`
	FirstName            string             `json:"first_name"`
	PersonalityType      string             `json:"personality_type"`
	ExperienceLevel      string             `json:"experience_level"`
	Performance          string             `json:"performance"`
	AutomationExperience string             `json:"automation_experience"`
	BiggestChallenge     string             `json:"biggest_challenge"`
	DecisionStyle        string             `json:"decision_style"`
	Scores               entity.ScoreVector `json:"scores"`
	Locale               string             `json:"locale"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// ScheduleResponse - запись расписания nurture-писем контакта
type ScheduleResponse struct {
	ID          uint       `json:"id"`
	EmailNumber int        `json:"email_number"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      string     `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	MessageID   string     `json:"message_id,omitempty"`
}

// ContactDetailResponse - контакт вместе с историей его писем
type ContactDetailResponse struct {
	ContactResponse
	Emails []ScheduleResponse `json:"emails"`
}

// PaginatedContactResponse представляет пагинированный список контактов
type PaginatedContactResponse struct {
	Contacts []*ContactResponse `json:"contacts"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
}

// NewContactResponse создает DTO для контакта
func NewContactResponse(contact *entity.Contact) *ContactResponse {
	if contact == nil {
		return nil
	}
	return &ContactResponse{
		ID:                   contact.ID,
		Email:                contact.Email,
		FirstName:            contact.FirstName,
		PersonalityType:      contact.PersonalityType,
		ExperienceLevel:      contact.ExperienceLevel,
		Performance:          contact.Performance,
		AutomationExperience: contact.AutomationExperience,
		BiggestChallenge:     contact.BiggestChallenge,
		DecisionStyle:        contact.DecisionStyle,
		Scores:               contact.Scores,
		Locale:               contact.Locale,
		CreatedAt:            contact.CreatedAt,
		UpdatedAt:            contact.UpdatedAt,
	}
}

// NewScheduleResponse создает DTO для записи расписания
func NewScheduleResponse(s *entity.EmailSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID,
		EmailNumber: s.EmailNumber,
		ScheduledAt: s.ScheduledAt,
		Status:      s.Status,
		SentAt:      s.SentAt,
		MessageID:   s.MessageID,
	}
}

// NewContactDetailResponse создает DTO контакта с историей писем
func NewContactDetailResponse(contact *entity.Contact, emails []entity.EmailSchedule) *ContactDetailResponse {
	schedules := make([]ScheduleResponse, len(emails))
	for i := range emails {
		schedules[i] = NewScheduleResponse(&emails[i])
	}
	return &ContactDetailResponse{
		ContactResponse: *NewContactResponse(contact),
		Emails:          schedules,
	}
}

// NewPaginatedContactResponse создает DTO для пагинированного списка контактов
func NewPaginatedContactResponse(contacts []entity.Contact, total int64, page, perPage int) *PaginatedContactResponse {
	list := make([]*ContactResponse, len(contacts))
	for i := range contacts {
		list[i] = NewContactResponse(&contacts[i])
	}
	return &PaginatedContactResponse{
		Contacts: list,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}
}
