package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
	"github.com/quizfortraders/funnel-api/internal/service"
)

// Стабы репозиториев: ровно столько поведения, сколько нужно, чтобы
// прогнать сабмит через настоящий SubmissionService

type stubContactRepo struct {
	saved *entity.Contact
}

func (s *stubContactRepo) Upsert(contact *entity.Contact) error {
	contact.ID = 42
	s.saved = contact
	return nil
}
func (s *stubContactRepo) GetByID(uint) (*entity.Contact, error) { return nil, apperrors.ErrNotFound }
func (s *stubContactRepo) GetByEmail(string) (*entity.Contact, error) {
	return nil, apperrors.ErrNotFound
}
func (s *stubContactRepo) List(repository.ContactFilter) ([]entity.Contact, int64, error) {
	return nil, 0, nil
}
func (s *stubContactRepo) ListBySegment(string, string) ([]entity.Contact, error) {
	return nil, nil
}
func (s *stubContactRepo) Count() (int64, error)              { return 0, nil }
func (s *stubContactRepo) CountSince(time.Time) (int64, error) { return 0, nil }
func (s *stubContactRepo) CountByField(string) (map[string]int64, error) {
	return map[string]int64{}, nil
}

type stubScheduleRepo struct {
	created []entity.EmailSchedule
}

func (s *stubScheduleRepo) CreateBatch(entries []entity.EmailSchedule) error {
	s.created = append(s.created, entries...)
	return nil
}
func (s *stubScheduleRepo) DeletePendingByContact(uint) error { return nil }
func (s *stubScheduleRepo) FindDue(time.Time, int) ([]entity.EmailSchedule, error) {
	return nil, nil
}
func (s *stubScheduleRepo) Claim(uint) (bool, error)                     { return true, nil }
func (s *stubScheduleRepo) Release(uint) error                           { return nil }
func (s *stubScheduleRepo) MarkSent(uint, string, time.Time) error       { return nil }
func (s *stubScheduleRepo) MarkFailed(uint) error                        { return nil }
func (s *stubScheduleRepo) ListByContact(uint) ([]entity.EmailSchedule, error) {
	return nil, nil
}
func (s *stubScheduleRepo) CountByStatus() (map[string]int64, error) {
	return map[string]int64{}, nil
}

type stubFormRepo struct{}

func (s *stubFormRepo) Create(*entity.QuizForm) error           { return nil }
func (s *stubFormRepo) GetByID(uint) (*entity.QuizForm, error)  { return nil, apperrors.ErrNotFound }
func (s *stubFormRepo) GetBySlug(string) (*entity.QuizForm, error) {
	return nil, apperrors.ErrNotFound
}
func (s *stubFormRepo) List() ([]entity.QuizForm, error)  { return nil, nil }
func (s *stubFormRepo) Update(*entity.QuizForm) error     { return nil }
func (s *stubFormRepo) Delete(uint) error                 { return nil }
func (s *stubFormRepo) SlugExists(string, uint) (bool, error) { return false, nil }
func (s *stubFormRepo) ReplaceQuestions(uint, []entity.QuizFormQuestion) error { return nil }

type stubNurtureRepo struct{}

func (s *stubNurtureRepo) List(string) ([]entity.NurtureTemplate, error) { return nil, nil }
func (s *stubNurtureRepo) GetByID(uint) (*entity.NurtureTemplate, error) {
	return nil, apperrors.ErrNotFound
}
func (s *stubNurtureRepo) GetByKey(string, int, string) (*entity.NurtureTemplate, error) {
	return nil, apperrors.ErrNotFound
}
func (s *stubNurtureRepo) Update(*entity.NurtureTemplate) error { return nil }
func (s *stubNurtureRepo) Upsert(*entity.NurtureTemplate) error { return nil }

func quizRouter() (*gin.Engine, *stubContactRepo, *stubScheduleRepo) {
	gin.SetMode(gin.TestMode)
	contactRepo := &stubContactRepo{}
	scheduleRepo := &stubScheduleRepo{}
	formRepo := &stubFormRepo{}

	submissionService := service.NewSubmissionService(
		contactRepo,
		scheduleRepo,
		formRepo,
		service.NewTemplateResolver(&stubNurtureRepo{}),
		&service.NoopEmailSender{},
		&service.NoopMarketingSync{},
		false,
	)
	h := NewQuizHandler(submissionService, service.NewFormService(formRepo), nil)

	r := gin.New()
	r.POST("/api/quiz/submit", h.SubmitQuiz)
	return r, contactRepo, scheduleRepo
}

func TestSubmitQuiz_LegacyPayload(t *testing.T) {
	r, contactRepo, scheduleRepo := quizRouter()

	payload := `{
		"first_name": "Ana",
		"email": "ana@x.com",
		"experience_level": "beginner",
		"performance": "struggling",
		"biggest_challenge": "emotional_decisions",
		"decision_style": "gut_feeling",
		"automation_experience": "automation_newbie"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(42), resp["contactId"])
	assert.Equal(t, entity.TypeEmotionalTrader, resp["personalityType"])

	scores, ok := resp["scores"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), scores[entity.TypeEmotionalTrader])

	require.NotNil(t, contactRepo.saved)
	assert.Equal(t, "Ana", contactRepo.saved.FirstName)
	assert.Equal(t, "ana@x.com", contactRepo.saved.Email)
	assert.Equal(t, entity.TypeEmotionalTrader, contactRepo.saved.PersonalityType)
	assert.Len(t, scheduleRepo.created, 8)
}

func TestSubmitQuiz_LegacyMissingFieldRejected(t *testing.T) {
	r, _, _ := quizRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit",
		strings.NewReader(`{"first_name": "Ana", "email": "ana@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitQuiz_MalformedJSON(t *testing.T) {
	r, _, _ := quizRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(`{"first_name":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseSubmitRequest_LegacyFields(t *testing.T) {
	req, err := parseSubmitRequest([]byte(`{
		"first_name": "Ana",
		"email": "ana@x.com",
		"experience_level": "beginner",
		"performance": "struggling",
		"biggest_challenge": "emotional_decisions",
		"decision_style": "gut_feeling",
		"automation_experience": "automation_newbie",
		"locale": "ru"
	}`))

	require.NoError(t, err)
	assert.Zero(t, req.FormID)
	assert.Equal(t, "Ana", req.FirstName)
	assert.Equal(t, "emotional_decisions", req.BiggestChallenge)
	assert.Equal(t, "gut_feeling", req.DecisionStyle)
	assert.Equal(t, "ru", req.Locale)
}

func TestParseSubmitRequest_DynamicFlatAnswers(t *testing.T) {
	// Ответы динамической формы лежат плоско рядом с form_id
	req, err := parseSubmitRequest([]byte(`{
		"form_id": 3,
		"first_name": "Ana",
		"email": "ana@x.com",
		"risk_appetite": "high",
		"locale": "en"
	}`))

	require.NoError(t, err)
	assert.Equal(t, uint(3), req.FormID)
	assert.Equal(t, map[string]string{
		"first_name":    "Ana",
		"email":         "ana@x.com",
		"risk_appetite": "high",
	}, req.Answers)
	assert.Equal(t, "en", req.Locale)
}

func TestParseSubmitRequest_DynamicNestedAnswers(t *testing.T) {
	// Вложенный объект answers и алиас formId тоже принимаются
	req, err := parseSubmitRequest([]byte(`{
		"formId": 7,
		"answers": {"first_name": "Ana", "email": "ana@x.com"}
	}`))

	require.NoError(t, err)
	assert.Equal(t, uint(7), req.FormID)
	assert.Equal(t, "Ana", req.Answers["first_name"])
	assert.Equal(t, "ana@x.com", req.Answers["email"])
}
