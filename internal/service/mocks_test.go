package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
)

// ============================================================================
// Общие моки репозиториев и отправителей для тестов сервисного слоя
// ============================================================================

// MockContactRepo реализует repository.ContactRepository
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Upsert(contact *entity.Contact) error {
	args := m.Called(contact)
	return args.Error(0)
}

func (m *MockContactRepo) GetByID(id uint) (*entity.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepo) GetByEmail(email string) (*entity.Contact, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepo) List(filter repository.ContactFilter) ([]entity.Contact, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepo) ListBySegment(segmentType, segmentFilter string) ([]entity.Contact, error) {
	args := m.Called(segmentType, segmentFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockContactRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepo) CountSince(t time.Time) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepo) CountByField(field string) (map[string]int64, error) {
	args := m.Called(field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockScheduleRepo реализует repository.EmailScheduleRepository
type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) CreateBatch(entries []entity.EmailSchedule) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockScheduleRepo) DeletePendingByContact(contactID uint) error {
	args := m.Called(contactID)
	return args.Error(0)
}

func (m *MockScheduleRepo) FindDue(now time.Time, limit int) ([]entity.EmailSchedule, error) {
	args := m.Called(now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmailSchedule), args.Error(1)
}

func (m *MockScheduleRepo) Claim(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockScheduleRepo) Release(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockScheduleRepo) MarkSent(id uint, messageID string, sentAt time.Time) error {
	args := m.Called(id, messageID, sentAt)
	return args.Error(0)
}

func (m *MockScheduleRepo) MarkFailed(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockScheduleRepo) ListByContact(contactID uint) ([]entity.EmailSchedule, error) {
	args := m.Called(contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmailSchedule), args.Error(1)
}

func (m *MockScheduleRepo) CountByStatus() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockFormRepo реализует repository.QuizFormRepository
type MockFormRepo struct {
	mock.Mock
}

func (m *MockFormRepo) Create(form *entity.QuizForm) error {
	args := m.Called(form)
	return args.Error(0)
}

func (m *MockFormRepo) GetByID(id uint) (*entity.QuizForm, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuizForm), args.Error(1)
}

func (m *MockFormRepo) GetBySlug(slug string) (*entity.QuizForm, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuizForm), args.Error(1)
}

func (m *MockFormRepo) List() ([]entity.QuizForm, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QuizForm), args.Error(1)
}

func (m *MockFormRepo) Update(form *entity.QuizForm) error {
	args := m.Called(form)
	return args.Error(0)
}

func (m *MockFormRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFormRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFormRepo) ReplaceQuestions(formID uint, questions []entity.QuizFormQuestion) error {
	args := m.Called(formID, questions)
	return args.Error(0)
}

// MockNurtureTemplateRepo реализует repository.NurtureTemplateRepository
type MockNurtureTemplateRepo struct {
	mock.Mock
}

func (m *MockNurtureTemplateRepo) List(locale string) ([]entity.NurtureTemplate, error) {
	args := m.Called(locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.NurtureTemplate), args.Error(1)
}

func (m *MockNurtureTemplateRepo) GetByID(id uint) (*entity.NurtureTemplate, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NurtureTemplate), args.Error(1)
}

func (m *MockNurtureTemplateRepo) GetByKey(personalityType string, emailNumber int, locale string) (*entity.NurtureTemplate, error) {
	args := m.Called(personalityType, emailNumber, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NurtureTemplate), args.Error(1)
}

func (m *MockNurtureTemplateRepo) Update(template *entity.NurtureTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

func (m *MockNurtureTemplateRepo) Upsert(template *entity.NurtureTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

// MockCampaignRepo реализует repository.EmailCampaignRepository
type MockCampaignRepo struct {
	mock.Mock
}

func (m *MockCampaignRepo) Create(campaign *entity.EmailCampaign) error {
	args := m.Called(campaign)
	return args.Error(0)
}

func (m *MockCampaignRepo) GetByID(id uint) (*entity.EmailCampaign, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailCampaign), args.Error(1)
}

func (m *MockCampaignRepo) List() ([]entity.EmailCampaign, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmailCampaign), args.Error(1)
}

func (m *MockCampaignRepo) Update(campaign *entity.EmailCampaign) error {
	args := m.Called(campaign)
	return args.Error(0)
}

// MockEmailSender реализует EmailSender и пишет журнал отправок
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, email OutboundEmail) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// MockMarketingSync реализует MarketingSync
type MockMarketingSync struct {
	mock.Mock
}

func (m *MockMarketingSync) SyncContact(ctx context.Context, contact *entity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// MockCacheRepo реализует repository.CacheRepository
type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Set(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepo) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheRepo) Exists(key string) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}
