package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizfortraders/funnel-api/internal/content"
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// CampaignRequest - запрос на разовую рассылку по сегменту
type CampaignRequest struct {
	Name          string
	Subject       string
	Body          string
	SegmentType   string // "all" | "personality_type"
	SegmentFilter string // значение фильтра, для personality_type - тип
}

// CampaignService отправляет разовые рассылки по сегментам контактов.
// В отличие от nurture-очереди рассылка синхронная: один вызов - одна
// кампания целиком, с записью итогов в email_campaigns.
type CampaignService struct {
	campaignRepo repository.EmailCampaignRepository
	contactRepo  repository.ContactRepository
	emailSender  EmailSender
}

func NewCampaignService(
	campaignRepo repository.EmailCampaignRepository,
	contactRepo repository.ContactRepository,
	emailSender EmailSender,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		contactRepo:  contactRepo,
		emailSender:  emailSender,
	}
}

// List возвращает историю кампаний
func (s *CampaignService) List() ([]entity.EmailCampaign, error) {
	return s.campaignRepo.List()
}

// Get возвращает кампанию по ID
func (s *CampaignService) Get(id uint) (*entity.EmailCampaign, error) {
	return s.campaignRepo.GetByID(id)
}

// CountRecipients возвращает размер сегмента без отправки
func (s *CampaignService) CountRecipients(segmentType, segmentFilter string) (int, error) {
	contacts, err := s.contactRepo.ListBySegment(segmentType, segmentFilter)
	if err != nil {
		return 0, err
	}
	return len(contacts), nil
}

// Send запускает кампанию: создает запись, отправляет письмо каждому
// контакту сегмента с подстановкой плейсхолдеров и фиксирует итоги.
// Ошибка отправки одному получателю не останавливает рассылку.
func (s *CampaignService) Send(ctx context.Context, req CampaignRequest) (*entity.EmailCampaign, error) {
	if err := validateCampaign(req); err != nil {
		return nil, err
	}

	contacts, err := s.contactRepo.ListBySegment(req.SegmentType, req.SegmentFilter)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, fmt.Errorf("%w: segment is empty", apperrors.ErrValidation)
	}

	campaign := &entity.EmailCampaign{
		Name:           req.Name,
		Subject:        req.Subject,
		Body:           req.Body,
		SegmentType:    req.SegmentType,
		SegmentFilter:  req.SegmentFilter,
		RecipientCount: len(contacts),
		Status:         entity.CampaignStatusSending,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	// Ключ кампании входит в idempotency key каждого получателя, чтобы
	// повторный запуск той же кампании был отдельной рассылкой
	runKey := uuid.NewString()

	sent := 0
	for i := range contacts {
		contact := &contacts[i]

		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		_, err := s.emailSender.SendEmail(sendCtx, OutboundEmail{
			To:             contact.Email,
			Subject:        personalizeCampaign(req.Subject, contact),
			HTML:           personalizeCampaign(req.Body, contact),
			IdempotencyKey: fmt.Sprintf("campaign-%d-%s-%d", campaign.ID, runKey, contact.ID),
		})
		cancel()

		if err != nil {
			log.Printf("[Campaign] send failed campaign=%d contact=%d: %v", campaign.ID, contact.ID, err)
			continue
		}
		sent++
	}

	now := time.Now().UTC()
	campaign.SentCount = sent
	campaign.SentAt = &now
	if sent > 0 {
		campaign.Status = entity.CampaignStatusSent
	} else {
		campaign.Status = entity.CampaignStatusFailed
	}
	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, fmt.Errorf("finalize campaign: %w", err)
	}

	log.Printf("[Campaign] finished campaign=%d recipients=%d sent=%d", campaign.ID, len(contacts), sent)
	return campaign, nil
}

func validateCampaign(req CampaignRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return fmt.Errorf("%w: subject is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("%w: body is required", apperrors.ErrValidation)
	}
	switch req.SegmentType {
	case "", "all":
	case "personality_type":
		if !entity.IsValidPersonalityType(req.SegmentFilter) {
			return fmt.Errorf("%w: unknown personality type %q", apperrors.ErrValidation, req.SegmentFilter)
		}
	default:
		return fmt.Errorf("%w: unknown segment type %q", apperrors.ErrValidation, req.SegmentType)
	}
	return nil
}

// personalizeCampaign подставляет плейсхолдеры получателя в текст кампании
func personalizeCampaign(text string, contact *entity.Contact) string {
	replacements := map[string]string{
		entity.FirstNamePlaceholder: contact.FirstName,
		"{{email}}":                 contact.Email,
		"{{personalityType}}":       personalityDisplayName(contact.PersonalityType),
	}
	for placeholder, value := range replacements {
		text = strings.ReplaceAll(text, placeholder, value)
	}
	return text
}

// personalityDisplayName возвращает человекочитаемое имя типа
func personalityDisplayName(personalityType string) string {
	if p := content.Profile(personalityType); p != nil {
		return p.Name
	}
	return personalityType
}
