package service

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// MarketingSync зеркалирует контакты в маркетинговые аудитории провайдера.
// Синхронизация всегда best-effort: любая ошибка логируется и не влияет
// на обработку сабмита.
type MarketingSync interface {
	SyncContact(ctx context.Context, contact *entity.Contact) error
}

// NoopMarketingSync используется, когда аудитории не сконфигурированы.
type NoopMarketingSync struct{}

func (s *NoopMarketingSync) SyncContact(ctx context.Context, contact *entity.Contact) error {
	return nil
}

// ResendMarketingSync кладет контакт в аудиторию Resend его типа личности.
// Contacts API сам дедуплицирует по email внутри аудитории.
type ResendMarketingSync struct {
	client *resend.Client
	// audiences: personalityType -> audience id; пустая карта валидна
	audiences map[string]string
	// defaultAudience принимает контакты типов без собственной аудитории
	defaultAudience string
}

func NewResendMarketingSync(apiKey string, audiences map[string]string, defaultAudience string) (*ResendMarketingSync, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	return &ResendMarketingSync{
		client:          resend.NewClient(apiKey),
		audiences:       audiences,
		defaultAudience: defaultAudience,
	}, nil
}

func (s *ResendMarketingSync) SyncContact(ctx context.Context, contact *entity.Contact) error {
	audienceID := s.audiences[contact.PersonalityType]
	if audienceID == "" {
		audienceID = s.defaultAudience
	}
	if audienceID == "" {
		return nil
	}

	_, err := s.client.Contacts.CreateWithContext(ctx, &resend.CreateContactRequest{
		AudienceId: audienceID,
		Email:      contact.Email,
		FirstName:  contact.FirstName,
	})
	if err != nil {
		return fmt.Errorf("resend contact sync failed: %w", err)
	}

	log.Printf("[MarketingSync] synced contact email=%s audience=%s", contact.Email, audienceID)
	return nil
}
