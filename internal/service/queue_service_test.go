package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

func dueEntry(id, contactID uint, emailNumber int, contact *entity.Contact) entity.EmailSchedule {
	return entity.EmailSchedule{
		ID:          id,
		ContactID:   contactID,
		Contact:     contact,
		EmailNumber: emailNumber,
		ScheduledAt: time.Now().Add(-time.Hour),
		Status:      entity.ScheduleStatusPending,
	}
}

func testContact(id uint) *entity.Contact {
	return &entity.Contact{
		ID:              id,
		Email:           "ana@example.com",
		FirstName:       "Ana",
		PersonalityType: entity.TypeEmotionalTrader,
		Locale:          entity.LocaleEN,
	}
}

func newQueueService(scheduleRepo *MockScheduleRepo, contactRepo *MockContactRepo, templateRepo *MockNurtureTemplateRepo, sender *MockEmailSender) *QueueService {
	return NewQueueService(scheduleRepo, contactRepo, NewTemplateResolver(templateRepo), sender)
}

func TestProcessQueue_SendsDueEntries(t *testing.T) {
	scheduleRepo := new(MockScheduleRepo)
	contactRepo := new(MockContactRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	contact := testContact(7)
	due := []entity.EmailSchedule{
		dueEntry(1, 7, 1, contact),
		dueEntry(2, 7, 2, contact),
	}

	scheduleRepo.On("FindDue", mock.Anything, QueueBatchSize).Return(due, nil)
	scheduleRepo.On("Claim", uint(1)).Return(true, nil)
	scheduleRepo.On("Claim", uint(2)).Return(true, nil)
	// Переопределений в базе нет - используются зашитые шаблоны
	templateRepo.On("GetByKey", entity.TypeEmotionalTrader, 1, entity.LocaleEN).Return(nil, apperrors.ErrNotFound)
	templateRepo.On("GetByKey", entity.TypeEmotionalTrader, 2, entity.LocaleEN).Return(nil, apperrors.ErrNotFound)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(e OutboundEmail) bool {
		return e.To == "ana@example.com" && e.IdempotencyKey == "nurture-1"
	})).Return("msg-1", nil)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(e OutboundEmail) bool {
		return e.IdempotencyKey == "nurture-2"
	})).Return("msg-2", nil)
	scheduleRepo.On("MarkSent", uint(1), "msg-1", mock.Anything).Return(nil)
	scheduleRepo.On("MarkSent", uint(2), "msg-2", mock.Anything).Return(nil)

	svc := newQueueService(scheduleRepo, contactRepo, templateRepo, sender)
	result, err := svc.ProcessQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Errors)
	scheduleRepo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestProcessQueue_SendsOldestFirst(t *testing.T) {
	// Батч обходится в порядке FindDue (scheduledAt asc): самое старое
	// письмо уходит первым
	scheduleRepo := new(MockScheduleRepo)
	contactRepo := new(MockContactRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	contact := testContact(7)
	now := time.Now()
	due := []entity.EmailSchedule{
		{ID: 40, ContactID: 7, Contact: contact, EmailNumber: 1, ScheduledAt: now.Add(-3 * time.Hour), Status: entity.ScheduleStatusPending},
		{ID: 41, ContactID: 7, Contact: contact, EmailNumber: 2, ScheduledAt: now.Add(-2 * time.Hour), Status: entity.ScheduleStatusPending},
		{ID: 42, ContactID: 7, Contact: contact, EmailNumber: 3, ScheduledAt: now.Add(-time.Hour), Status: entity.ScheduleStatusPending},
	}

	scheduleRepo.On("FindDue", mock.Anything, QueueBatchSize).Return(due, nil)
	for _, id := range []uint{40, 41, 42} {
		scheduleRepo.On("Claim", id).Return(true, nil)
	}
	templateRepo.On("GetByKey", entity.TypeEmotionalTrader, mock.Anything, entity.LocaleEN).Return(nil, apperrors.ErrNotFound)

	var sendOrder []string
	sender.On("SendEmail", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		email := args.Get(1).(OutboundEmail)
		sendOrder = append(sendOrder, email.IdempotencyKey)
	}).Return("msg", nil)
	scheduleRepo.On("MarkSent", mock.Anything, "msg", mock.Anything).Return(nil)

	svc := newQueueService(scheduleRepo, contactRepo, templateRepo, sender)
	result, err := svc.ProcessQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, []string{"nurture-40", "nurture-41", "nurture-42"}, sendOrder)
}

func TestProcessQueue_FailureIsolation(t *testing.T) {
	// Ошибка отправки одной записи не срывает остальные
	scheduleRepo := new(MockScheduleRepo)
	contactRepo := new(MockContactRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	contact := testContact(7)
	due := []entity.EmailSchedule{
		dueEntry(10, 7, 1, contact),
		dueEntry(11, 7, 2, contact),
		dueEntry(12, 7, 3, contact),
	}

	scheduleRepo.On("FindDue", mock.Anything, QueueBatchSize).Return(due, nil)
	for _, id := range []uint{10, 11, 12} {
		scheduleRepo.On("Claim", id).Return(true, nil)
	}
	templateRepo.On("GetByKey", entity.TypeEmotionalTrader, mock.Anything, entity.LocaleEN).Return(nil, apperrors.ErrNotFound)

	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(e OutboundEmail) bool {
		return e.IdempotencyKey == "nurture-10"
	})).Return("msg-10", nil)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(e OutboundEmail) bool {
		return e.IdempotencyKey == "nurture-11"
	})).Return("", errors.New("provider down"))
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(e OutboundEmail) bool {
		return e.IdempotencyKey == "nurture-12"
	})).Return("msg-12", nil)

	scheduleRepo.On("MarkSent", uint(10), "msg-10", mock.Anything).Return(nil)
	scheduleRepo.On("MarkFailed", uint(11)).Return(nil)
	scheduleRepo.On("MarkSent", uint(12), "msg-12", mock.Anything).Return(nil)

	svc := newQueueService(scheduleRepo, contactRepo, templateRepo, sender)
	result, err := svc.ProcessQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Errors)
	scheduleRepo.AssertExpectations(t)
}

func TestProcessQueue_MissingTemplateIsPermanentFailure(t *testing.T) {
	scheduleRepo := new(MockScheduleRepo)
	contactRepo := new(MockContactRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	// Контакт с типом вне закрытого набора: шаблона нет ни в базе, ни в зашитых
	contact := &entity.Contact{
		ID:              3,
		Email:           "ghost@example.com",
		FirstName:       "Ghost",
		PersonalityType: "retired_type",
		Locale:          entity.LocaleEN,
	}
	due := []entity.EmailSchedule{dueEntry(5, 3, 1, contact)}

	scheduleRepo.On("FindDue", mock.Anything, QueueBatchSize).Return(due, nil)
	scheduleRepo.On("Claim", uint(5)).Return(true, nil)
	templateRepo.On("GetByKey", "retired_type", 1, entity.LocaleEN).Return(nil, apperrors.ErrNotFound)
	scheduleRepo.On("MarkFailed", uint(5)).Return(nil)

	svc := newQueueService(scheduleRepo, contactRepo, templateRepo, sender)
	result, err := svc.ProcessQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 1, result.Errors)
	// Отправки не было
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	scheduleRepo.AssertExpectations(t)
}

func TestProcessQueue_LostClaimSkipsSilently(t *testing.T) {
	// Запись, захваченную параллельным проходом, пропускаем без ошибки
	scheduleRepo := new(MockScheduleRepo)
	contactRepo := new(MockContactRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	contact := testContact(7)
	due := []entity.EmailSchedule{
		dueEntry(20, 7, 1, contact),
		dueEntry(21, 7, 2, contact),
	}

	scheduleRepo.On("FindDue", mock.Anything, QueueBatchSize).Return(due, nil)
	scheduleRepo.On("Claim", uint(20)).Return(false, nil) // увел другой проход
	scheduleRepo.On("Claim", uint(21)).Return(true, nil)
	templateRepo.On("GetByKey", entity.TypeEmotionalTrader, 2, entity.LocaleEN).Return(nil, apperrors.ErrNotFound)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return("msg-21", nil)
	scheduleRepo.On("MarkSent", uint(21), "msg-21", mock.Anything).Return(nil)

	svc := newQueueService(scheduleRepo, contactRepo, templateRepo, sender)
	result, err := svc.ProcessQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Errors)
	sender.AssertNumberOfCalls(t, "SendEmail", 1)
}

func TestProcessQueue_OverrideTemplateWins(t *testing.T) {
	scheduleRepo := new(MockScheduleRepo)
	contactRepo := new(MockContactRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	contact := testContact(9)
	due := []entity.EmailSchedule{dueEntry(30, 9, 2, contact)}

	scheduleRepo.On("FindDue", mock.Anything, QueueBatchSize).Return(due, nil)
	scheduleRepo.On("Claim", uint(30)).Return(true, nil)
	templateRepo.On("GetByKey", entity.TypeEmotionalTrader, 2, entity.LocaleEN).Return(&entity.NurtureTemplate{
		PersonalityType: entity.TypeEmotionalTrader,
		EmailNumber:     2,
		Locale:          entity.LocaleEN,
		Subject:         "Hi {{firstName}}, custom subject",
		Body:            "<p>Custom body for {{firstName}}</p>",
	}, nil)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(e OutboundEmail) bool {
		return e.Subject == "Hi Ana, custom subject" && e.HTML == "<p>Custom body for Ana</p>"
	})).Return("msg-30", nil)
	scheduleRepo.On("MarkSent", uint(30), "msg-30", mock.Anything).Return(nil)

	svc := newQueueService(scheduleRepo, contactRepo, templateRepo, sender)
	result, err := svc.ProcessQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	sender.AssertExpectations(t)
}

func TestProcessQueue_EmptyQueue(t *testing.T) {
	scheduleRepo := new(MockScheduleRepo)
	scheduleRepo.On("FindDue", mock.Anything, QueueBatchSize).Return([]entity.EmailSchedule{}, nil)

	svc := newQueueService(scheduleRepo, new(MockContactRepo), new(MockNurtureTemplateRepo), new(MockEmailSender))
	result, err := svc.ProcessQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Errors)
}
