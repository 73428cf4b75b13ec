package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

func legacyAna() LegacySubmission {
	return LegacySubmission{
		FirstName:            "Ana",
		Email:                "ana@example.com",
		ExperienceLevel:      "intermediate",
		Performance:          "breaking_even",
		BiggestChallenge:     "emotional_decisions",
		DecisionStyle:        "gut_feeling",
		AutomationExperience: "automation_ready",
	}
}

func newSubmissionService(contactRepo *MockContactRepo, scheduleRepo *MockScheduleRepo, formRepo *MockFormRepo, templateRepo *MockNurtureTemplateRepo, sender *MockEmailSender, marketing MarketingSync, sendFirst bool) *SubmissionService {
	return NewSubmissionService(contactRepo, scheduleRepo, formRepo,
		NewTemplateResolver(templateRepo), sender, marketing, sendFirst)
}

func TestSubmitLegacy_AnaEndToEnd(t *testing.T) {
	// Сквозной сценарий: emotional_decisions + gut_feeling -> emotional_trader, 5 очков
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)
	marketing := new(MockMarketingSync)

	contactRepo.On("Upsert", mock.MatchedBy(func(c *entity.Contact) bool {
		return c.Email == "ana@example.com" &&
			c.PersonalityType == entity.TypeEmotionalTrader &&
			c.Scores[entity.TypeEmotionalTrader] == 5
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Contact).ID = 42
	}).Return(nil)
	scheduleRepo.On("DeletePendingByContact", uint(42)).Return(nil)
	scheduleRepo.On("CreateBatch", mock.MatchedBy(func(entries []entity.EmailSchedule) bool {
		return len(entries) == len(NurtureDayOffsets)
	})).Return(nil)
	marketing.On("SyncContact", mock.Anything, mock.Anything).Return(nil)

	svc := newSubmissionService(contactRepo, scheduleRepo, new(MockFormRepo), new(MockNurtureTemplateRepo), new(MockEmailSender), marketing, false)
	result, err := svc.SubmitLegacy(context.Background(), legacyAna())

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.ContactID)
	assert.Equal(t, entity.TypeEmotionalTrader, result.PersonalityType)
	assert.Equal(t, 5, result.Scores[entity.TypeEmotionalTrader])
	contactRepo.AssertExpectations(t)
	scheduleRepo.AssertExpectations(t)
}

func TestSubmitLegacy_ScheduleOffsets(t *testing.T) {
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)

	var captured []entity.EmailSchedule
	contactRepo.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Contact).ID = 1
	}).Return(nil)
	scheduleRepo.On("DeletePendingByContact", uint(1)).Return(nil)
	scheduleRepo.On("CreateBatch", mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(0).([]entity.EmailSchedule)
	}).Return(nil)

	svc := newSubmissionService(contactRepo, scheduleRepo, new(MockFormRepo), new(MockNurtureTemplateRepo), new(MockEmailSender), nil, false)
	before := time.Now().UTC()
	_, err := svc.SubmitLegacy(context.Background(), legacyAna())
	after := time.Now().UTC()

	require.NoError(t, err)
	require.Len(t, captured, 8)
	for i, entry := range captured {
		assert.Equal(t, i+1, entry.EmailNumber)
		assert.Equal(t, entity.ScheduleStatusPending, entry.Status)

		wantMin := before.AddDate(0, 0, NurtureDayOffsets[i])
		wantMax := after.AddDate(0, 0, NurtureDayOffsets[i])
		assert.False(t, entry.ScheduledAt.Before(wantMin), "письмо %d раньше смещения", i+1)
		assert.False(t, entry.ScheduledAt.After(wantMax), "письмо %d позже смещения", i+1)
	}
}

func TestSubmitLegacy_Validation(t *testing.T) {
	svc := newSubmissionService(new(MockContactRepo), new(MockScheduleRepo), new(MockFormRepo), new(MockNurtureTemplateRepo), new(MockEmailSender), nil, false)

	tests := []struct {
		name   string
		mutate func(*LegacySubmission)
	}{
		{"empty first name", func(s *LegacySubmission) { s.FirstName = " " }},
		{"empty email", func(s *LegacySubmission) { s.Email = "" }},
		{"invalid email", func(s *LegacySubmission) { s.Email = "not-an-email" }},
		{"email with space", func(s *LegacySubmission) { s.Email = "a b@example.com" }},
		{"missing challenge", func(s *LegacySubmission) { s.BiggestChallenge = "" }},
		{"missing decision style", func(s *LegacySubmission) { s.DecisionStyle = "" }},
		{"missing automation", func(s *LegacySubmission) { s.AutomationExperience = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := legacyAna()
			tt.mutate(&sub)
			_, err := svc.SubmitLegacy(context.Background(), sub)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestSubmitLegacy_ResubmissionIsIdempotent(t *testing.T) {
	// Повторный сабмит: pending удаляются, создается свежий пакет
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)

	contactRepo.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Contact).ID = 42
	}).Return(nil).Twice()
	scheduleRepo.On("DeletePendingByContact", uint(42)).Return(nil).Twice()
	scheduleRepo.On("CreateBatch", mock.Anything).Return(nil).Twice()

	svc := newSubmissionService(contactRepo, scheduleRepo, new(MockFormRepo), new(MockNurtureTemplateRepo), new(MockEmailSender), nil, false)

	first, err := svc.SubmitLegacy(context.Background(), legacyAna())
	require.NoError(t, err)

	// Второй сабмит с другими ответами перезаписывает тип
	resub := legacyAna()
	resub.BiggestChallenge = "too_much_info"
	resub.DecisionStyle = "still_figuring_out"
	second, err := svc.SubmitLegacy(context.Background(), resub)
	require.NoError(t, err)

	assert.Equal(t, first.ContactID, second.ContactID)
	assert.Equal(t, entity.TypeOverwhelmedAnalyst, second.PersonalityType)
	scheduleRepo.AssertExpectations(t)
}

func TestSubmitLegacy_ImmediateWelcomeSend(t *testing.T) {
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	contactRepo.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Contact).ID = 42
	}).Return(nil)
	scheduleRepo.On("DeletePendingByContact", uint(42)).Return(nil)
	scheduleRepo.On("CreateBatch", mock.Anything).Run(func(args mock.Arguments) {
		entries := args.Get(0).([]entity.EmailSchedule)
		for i := range entries {
			entries[i].ID = uint(100 + i)
		}
	}).Return(nil)
	scheduleRepo.On("Claim", uint(100)).Return(true, nil)
	templateRepo.On("GetByKey", entity.TypeEmotionalTrader, 1, entity.LocaleEN).Return(nil, apperrors.ErrNotFound)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(e OutboundEmail) bool {
		return e.To == "ana@example.com" && e.IdempotencyKey == "nurture-100"
	})).Return("msg-w", nil)
	scheduleRepo.On("MarkSent", uint(100), "msg-w", mock.Anything).Return(nil)

	svc := newSubmissionService(contactRepo, scheduleRepo, new(MockFormRepo), templateRepo, sender, nil, true)
	_, err := svc.SubmitLegacy(context.Background(), legacyAna())

	require.NoError(t, err)
	sender.AssertExpectations(t)
	scheduleRepo.AssertExpectations(t)
}

func TestSubmitLegacy_WelcomeSendFailureDoesNotFailSubmission(t *testing.T) {
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)
	templateRepo := new(MockNurtureTemplateRepo)
	sender := new(MockEmailSender)

	contactRepo.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Contact).ID = 42
	}).Return(nil)
	scheduleRepo.On("DeletePendingByContact", uint(42)).Return(nil)
	scheduleRepo.On("CreateBatch", mock.Anything).Run(func(args mock.Arguments) {
		entries := args.Get(0).([]entity.EmailSchedule)
		for i := range entries {
			entries[i].ID = uint(100 + i)
		}
	}).Return(nil)
	scheduleRepo.On("Claim", uint(100)).Return(true, nil)
	templateRepo.On("GetByKey", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return("", assert.AnError)
	// Неудача возвращает запись в pending, письмо уйдет штатной очередью
	scheduleRepo.On("Release", uint(100)).Return(nil)

	svc := newSubmissionService(contactRepo, scheduleRepo, new(MockFormRepo), templateRepo, sender, nil, true)
	result, err := svc.SubmitLegacy(context.Background(), legacyAna())

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.ContactID)
	scheduleRepo.AssertCalled(t, "Release", uint(100))
}

func TestSubmitLegacy_MarketingSyncFailureIsBestEffort(t *testing.T) {
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)
	marketing := new(MockMarketingSync)

	contactRepo.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Contact).ID = 1
	}).Return(nil)
	scheduleRepo.On("DeletePendingByContact", uint(1)).Return(nil)
	scheduleRepo.On("CreateBatch", mock.Anything).Return(nil)
	marketing.On("SyncContact", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := newSubmissionService(contactRepo, scheduleRepo, new(MockFormRepo), new(MockNurtureTemplateRepo), new(MockEmailSender), marketing, false)
	_, err := svc.SubmitLegacy(context.Background(), legacyAna())

	require.NoError(t, err)
}

// ============================================================================
// Динамическая форма
// ============================================================================

func publishedForm() *entity.QuizForm {
	return &entity.QuizForm{
		ID:     5,
		Slug:   "trading-personality",
		Locale: entity.LocaleEN,
		Status: entity.FormStatusPublished,
		Questions: []entity.QuizFormQuestion{
			{QuestionKey: "first_name", Type: entity.QuestionTypeText, Required: true},
			{QuestionKey: "email", Type: entity.QuestionTypeEmail, Required: true},
			{
				QuestionKey: "biggest_challenge", Type: entity.QuestionTypeMultipleChoice, Required: true,
				ScoringWeight: 3,
				ScoringMap: entity.ScoringMap{
					"too_much_info": {entity.TypeOverwhelmedAnalyst: 3},
				},
			},
		},
	}
}

func TestSubmitDynamic_ScoresFromFormMaps(t *testing.T) {
	contactRepo := new(MockContactRepo)
	scheduleRepo := new(MockScheduleRepo)
	formRepo := new(MockFormRepo)

	formRepo.On("GetByID", uint(5)).Return(publishedForm(), nil)
	contactRepo.On("Upsert", mock.MatchedBy(func(c *entity.Contact) bool {
		return c.PersonalityType == entity.TypeOverwhelmedAnalyst &&
			c.Email == "marc@example.com" &&
			c.Locale == entity.LocaleEN
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Contact).ID = 8
	}).Return(nil)
	scheduleRepo.On("DeletePendingByContact", uint(8)).Return(nil)
	scheduleRepo.On("CreateBatch", mock.Anything).Return(nil)

	svc := newSubmissionService(contactRepo, scheduleRepo, formRepo, new(MockNurtureTemplateRepo), new(MockEmailSender), nil, false)
	result, err := svc.SubmitDynamic(context.Background(), DynamicSubmission{
		FormID: 5,
		Answers: map[string]string{
			"first_name":        "Marc",
			"email":             "Marc@Example.com",
			"biggest_challenge": "too_much_info",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TypeOverwhelmedAnalyst, result.PersonalityType)
	assert.Equal(t, 3, result.Scores[entity.TypeOverwhelmedAnalyst])
}

func TestSubmitDynamic_UnpublishedFormIsNotFound(t *testing.T) {
	formRepo := new(MockFormRepo)
	draft := publishedForm()
	draft.Status = entity.FormStatusDraft
	formRepo.On("GetByID", uint(5)).Return(draft, nil)

	svc := newSubmissionService(new(MockContactRepo), new(MockScheduleRepo), formRepo, new(MockNurtureTemplateRepo), new(MockEmailSender), nil, false)
	_, err := svc.SubmitDynamic(context.Background(), DynamicSubmission{
		FormID:  5,
		Answers: map[string]string{"first_name": "A", "email": "a@b.co", "biggest_challenge": "too_much_info"},
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSubmitDynamic_MissingRequiredAnswer(t *testing.T) {
	formRepo := new(MockFormRepo)
	formRepo.On("GetByID", uint(5)).Return(publishedForm(), nil)

	svc := newSubmissionService(new(MockContactRepo), new(MockScheduleRepo), formRepo, new(MockNurtureTemplateRepo), new(MockEmailSender), nil, false)
	_, err := svc.SubmitDynamic(context.Background(), DynamicSubmission{
		FormID: 5,
		Answers: map[string]string{
			"first_name": "Marc",
			"email":      "marc@example.com",
			// biggest_challenge отсутствует
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSubmitDynamic_UnknownFormPropagatesNotFound(t *testing.T) {
	formRepo := new(MockFormRepo)
	formRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	svc := newSubmissionService(new(MockContactRepo), new(MockScheduleRepo), formRepo, new(MockNurtureTemplateRepo), new(MockEmailSender), nil, false)
	_, err := svc.SubmitDynamic(context.Background(), DynamicSubmission{FormID: 99})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
