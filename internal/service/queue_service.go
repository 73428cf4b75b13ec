package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
)

// QueueBatchSize - максимум записей за один проход очереди
const QueueBatchSize = 50

// sendTimeout ограничивает время одной отправки
const sendTimeout = 30 * time.Second

// QueueResult - итог одного прохода очереди
type QueueResult struct {
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

// QueueService - диспетчер очереди nurture-писем. Вызывается внешним кроном
// через HTTP-эндпоинт; один вызов обрабатывает один батч.
type QueueService struct {
	scheduleRepo repository.EmailScheduleRepository
	contactRepo  repository.ContactRepository
	resolver     *TemplateResolver
	emailSender  EmailSender
}

func NewQueueService(
	scheduleRepo repository.EmailScheduleRepository,
	contactRepo repository.ContactRepository,
	resolver *TemplateResolver,
	emailSender EmailSender,
) *QueueService {
	return &QueueService{
		scheduleRepo: scheduleRepo,
		contactRepo:  contactRepo,
		resolver:     resolver,
		emailSender:  emailSender,
	}
}

// ProcessQueue обрабатывает до QueueBatchSize просроченных pending-записей,
// старые первыми. Ошибка одной записи не прерывает остальные: запись
// помечается failed, проход продолжается. Параллельные проходы безопасны -
// каждая запись атомарно захватывается перед отправкой.
func (s *QueueService) ProcessQueue(ctx context.Context) (QueueResult, error) {
	var result QueueResult

	due, err := s.scheduleRepo.FindDue(time.Now().UTC(), QueueBatchSize)
	if err != nil {
		return result, fmt.Errorf("find due schedules: %w", err)
	}

	log.Printf("[Queue] processing batch size=%d", len(due))

	for i := range due {
		entry := &due[i]

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		claimed, err := s.scheduleRepo.Claim(entry.ID)
		if err != nil {
			log.Printf("[Queue] claim failed schedule=%d: %v", entry.ID, err)
			result.Errors++
			continue
		}
		if !claimed {
			// Запись увел другой проход, это не ошибка
			continue
		}

		if err := s.sendOne(ctx, entry); err != nil {
			log.Printf("[Queue] send failed schedule=%d contact=%d email=%d: %v",
				entry.ID, entry.ContactID, entry.EmailNumber, err)
			if markErr := s.scheduleRepo.MarkFailed(entry.ID); markErr != nil {
				log.Printf("[Queue] mark failed error schedule=%d: %v", entry.ID, markErr)
			}
			result.Errors++
			continue
		}

		result.Processed++
	}

	log.Printf("[Queue] batch done processed=%d errors=%d", result.Processed, result.Errors)
	return result, nil
}

// sendOne разрешает шаблон, отправляет письмо и помечает запись sent
func (s *QueueService) sendOne(ctx context.Context, entry *entity.EmailSchedule) error {
	contact := entry.Contact
	if contact == nil {
		loaded, err := s.contactRepo.GetByID(entry.ContactID)
		if err != nil {
			return fmt.Errorf("load contact: %w", err)
		}
		contact = loaded
	}

	subject, html, err := s.resolver.Resolve(contact, entry.EmailNumber)
	if err != nil {
		if errors.Is(err, ErrTemplateMissing) {
			// Постоянная ошибка: ретраи бессмысленны
			return err
		}
		return fmt.Errorf("resolve template: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	messageID, err := s.emailSender.SendEmail(sendCtx, OutboundEmail{
		To:             contact.Email,
		Subject:        subject,
		HTML:           html,
		IdempotencyKey: fmt.Sprintf("nurture-%d", entry.ID),
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	if err := s.scheduleRepo.MarkSent(entry.ID, messageID, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}
	return nil
}
