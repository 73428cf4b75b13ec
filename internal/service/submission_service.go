package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
	"github.com/quizfortraders/funnel-api/internal/scoring"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LegacySubmission - сабмит фиксированного квиза из семи вопросов
type LegacySubmission struct {
	FirstName            string
	Email                string
	ExperienceLevel      string
	Performance          string
	BiggestChallenge     string
	DecisionStyle        string
	AutomationExperience string
	Locale               string
}

// DynamicSubmission - сабмит динамической формы: ответы по ключам вопросов
type DynamicSubmission struct {
	FormID  uint
	Answers map[string]string
	Locale  string
}

// SubmissionResult возвращается фронтенду после успешного сабмита
type SubmissionResult struct {
	ContactID       uint               `json:"contactId"`
	PersonalityType string             `json:"personalityType"`
	Scores          entity.ScoreVector `json:"scores"`
}

// SubmissionService обрабатывает сабмиты квиза: скоринг, upsert контакта,
// пересоздание расписания писем, немедленная отправка первого письма и
// best-effort синхронизация маркетинговых аудиторий.
type SubmissionService struct {
	contactRepo  repository.ContactRepository
	scheduleRepo repository.EmailScheduleRepository
	formRepo     repository.QuizFormRepository
	resolver     *TemplateResolver
	emailSender  EmailSender
	marketing    MarketingSync
	// sendFirstImmediately включает отправку письма #1 прямо в сабмите,
	// не дожидаясь первого прохода диспетчера
	sendFirstImmediately bool
}

func NewSubmissionService(
	contactRepo repository.ContactRepository,
	scheduleRepo repository.EmailScheduleRepository,
	formRepo repository.QuizFormRepository,
	resolver *TemplateResolver,
	emailSender EmailSender,
	marketing MarketingSync,
	sendFirstImmediately bool,
) *SubmissionService {
	return &SubmissionService{
		contactRepo:          contactRepo,
		scheduleRepo:         scheduleRepo,
		formRepo:             formRepo,
		resolver:             resolver,
		emailSender:          emailSender,
		marketing:            marketing,
		sendFirstImmediately: sendFirstImmediately,
	}
}

// SubmitLegacy обрабатывает сабмит фиксированного квиза
func (s *SubmissionService) SubmitLegacy(ctx context.Context, sub LegacySubmission) (*SubmissionResult, error) {
	sub.FirstName = strings.TrimSpace(sub.FirstName)
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))

	if err := validateLegacy(sub); err != nil {
		return nil, err
	}

	result := scoring.Calculate(sub.BiggestChallenge, sub.DecisionStyle)

	contact := &entity.Contact{
		Email:                sub.Email,
		FirstName:            sub.FirstName,
		PersonalityType:      result.Type,
		ExperienceLevel:      sub.ExperienceLevel,
		Performance:          sub.Performance,
		AutomationExperience: sub.AutomationExperience,
		BiggestChallenge:     sub.BiggestChallenge,
		DecisionStyle:        sub.DecisionStyle,
		Scores:               result.Scores,
		Locale:               normalizeLocale(sub.Locale),
	}

	return s.enroll(ctx, contact)
}

// SubmitDynamic обрабатывает сабмит динамической формы
func (s *SubmissionService) SubmitDynamic(ctx context.Context, sub DynamicSubmission) (*SubmissionResult, error) {
	form, err := s.formRepo.GetByID(sub.FormID)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished() {
		return nil, fmt.Errorf("%w: form %d is not published", apperrors.ErrNotFound, sub.FormID)
	}

	answers := make(map[string]string, len(sub.Answers))
	for key, value := range sub.Answers {
		answers[key] = strings.TrimSpace(value)
	}

	for _, q := range form.Questions {
		answer := answers[q.QuestionKey]
		if q.Required && answer == "" {
			return nil, fmt.Errorf("%w: answer for %q is required", apperrors.ErrValidation, q.QuestionKey)
		}
		if q.Type == entity.QuestionTypeEmail && answer != "" && !emailRegex.MatchString(answer) {
			return nil, fmt.Errorf("%w: invalid email", apperrors.ErrValidation)
		}
	}

	email := strings.ToLower(answers["email"])
	if email == "" || !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", apperrors.ErrValidation)
	}

	result := scoring.CalculateFromForm(answers, form.Questions)

	locale := sub.Locale
	if locale == "" {
		locale = form.Locale
	}

	contact := &entity.Contact{
		Email:                email,
		FirstName:            answers["first_name"],
		PersonalityType:      result.Type,
		ExperienceLevel:      answers["experience_level"],
		Performance:          answers["performance"],
		AutomationExperience: answers["automation_experience"],
		BiggestChallenge:     answers["biggest_challenge"],
		DecisionStyle:        answers["decision_style"],
		Scores:               result.Scores,
		Locale:               normalizeLocale(locale),
	}

	return s.enroll(ctx, contact)
}

// enroll - общий хвост обоих сабмитов: upsert контакта и пересоздание
// расписания. Повторный сабмит того же email идемпотентен: pending-записи
// удаляются и создаются заново, история sent/failed не трогается.
func (s *SubmissionService) enroll(ctx context.Context, contact *entity.Contact) (*SubmissionResult, error) {
	if err := s.contactRepo.Upsert(contact); err != nil {
		return nil, fmt.Errorf("upsert contact: %w", err)
	}

	if err := s.scheduleRepo.DeletePendingByContact(contact.ID); err != nil {
		return nil, fmt.Errorf("reset pending schedules: %w", err)
	}

	now := time.Now().UTC()
	entries := BuildSchedule(contact.ID, now)
	if err := s.scheduleRepo.CreateBatch(entries); err != nil {
		return nil, fmt.Errorf("create schedules: %w", err)
	}

	// Дальше только best-effort: сабмит уже успешен
	if s.marketing != nil {
		if err := s.marketing.SyncContact(ctx, contact); err != nil {
			log.Printf("[Submission] marketing sync failed for contact=%d: %v", contact.ID, err)
		}
	}

	if s.sendFirstImmediately {
		s.sendWelcomeEmail(ctx, contact, entries)
	}

	return &SubmissionResult{
		ContactID:       contact.ID,
		PersonalityType: contact.PersonalityType,
		Scores:          contact.Scores,
	}, nil
}

// sendWelcomeEmail отправляет письмо #1 сразу после сабмита. Запись сначала
// захватывается (pending -> sending), чтобы пересекающийся проход диспетчера
// не отправил ее вторым разом; при любой неудаче запись возвращается в
// pending и уходит штатным проходом очереди.
func (s *SubmissionService) sendWelcomeEmail(ctx context.Context, contact *entity.Contact, entries []entity.EmailSchedule) {
	var first *entity.EmailSchedule
	for i := range entries {
		if entries[i].EmailNumber == 1 {
			first = &entries[i]
			break
		}
	}
	if first == nil || first.ID == 0 {
		return
	}

	claimed, err := s.scheduleRepo.Claim(first.ID)
	if err != nil || !claimed {
		return
	}

	subject, html, err := s.resolver.Resolve(contact, 1)
	if err != nil {
		log.Printf("[Submission] welcome template resolve failed for contact=%d: %v", contact.ID, err)
		_ = s.scheduleRepo.Release(first.ID)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	messageID, err := s.emailSender.SendEmail(sendCtx, OutboundEmail{
		To:             contact.Email,
		Subject:        subject,
		HTML:           html,
		IdempotencyKey: fmt.Sprintf("nurture-%d", first.ID),
	})
	if err != nil {
		log.Printf("[Submission] welcome send failed for contact=%d: %v", contact.ID, err)
		_ = s.scheduleRepo.Release(first.ID)
		return
	}

	if err := s.scheduleRepo.MarkSent(first.ID, messageID, time.Now().UTC()); err != nil {
		log.Printf("[Submission] mark sent failed for schedule=%d: %v", first.ID, err)
	}
}

func validateLegacy(sub LegacySubmission) error {
	required := map[string]string{
		"firstName":            sub.FirstName,
		"email":                sub.Email,
		"experienceLevel":      sub.ExperienceLevel,
		"performance":          sub.Performance,
		"biggestChallenge":     sub.BiggestChallenge,
		"decisionStyle":        sub.DecisionStyle,
		"automationExperience": sub.AutomationExperience,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
		}
	}
	if !emailRegex.MatchString(sub.Email) {
		return fmt.Errorf("%w: invalid email", apperrors.ErrValidation)
	}
	return nil
}

func normalizeLocale(locale string) string {
	if locale == entity.LocaleRU {
		return entity.LocaleRU
	}
	return entity.LocaleEN
}
