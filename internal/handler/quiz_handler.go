package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizfortraders/funnel-api/internal/handler/dto"
	"github.com/quizfortraders/funnel-api/internal/service"
)

// QuizHandler обрабатывает публичные запросы воронки: сабмит квиза и
// получение опубликованных форм
type QuizHandler struct {
	submissionService *service.SubmissionService
	formService       *service.FormService
	statsService      *service.StatsService
}

// NewQuizHandler создает новый обработчик квиза
func NewQuizHandler(
	submissionService *service.SubmissionService,
	formService *service.FormService,
	statsService *service.StatsService,
) *QuizHandler {
	return &QuizHandler{
		submissionService: submissionService,
		formService:       formService,
		statsService:      statsService,
	}
}

// SubmitQuizRequest - разобранный сабмит квиза. Наличие form_id (или formId)
// выбирает ветку: динамическая форма с ответами по ключам вопросов либо
// legacy-квиз с фиксированными snake_case полями.
type SubmitQuizRequest struct {
	FormID  uint
	Answers map[string]string

	FirstName            string
	Email                string
	ExperienceLevel      string
	Performance          string
	BiggestChallenge     string
	DecisionStyle        string
	AutomationExperience string

	Locale string
}

// Служебные ключи тела сабмита, не являющиеся ответами на вопросы
var submitReservedKeys = map[string]bool{
	"form_id": true,
	"formId":  true,
	"answers": true,
	"locale":  true,
}

// parseSubmitRequest разбирает тело сабмита. Ответы динамической формы
// принимаются и вложенным объектом answers, и плоскими полями
// questionKey -> answer рядом с form_id.
func parseSubmitRequest(body []byte) (*SubmitQuizRequest, error) {
	var fields struct {
		FormID    uint              `json:"form_id"`
		FormIDAlt uint              `json:"formId"`
		Answers   map[string]string `json:"answers"`

		FirstName            string `json:"first_name"`
		Email                string `json:"email"`
		ExperienceLevel      string `json:"experience_level"`
		Performance          string `json:"performance"`
		BiggestChallenge     string `json:"biggest_challenge"`
		DecisionStyle        string `json:"decision_style"`
		AutomationExperience string `json:"automation_experience"`

		Locale string `json:"locale"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}

	req := &SubmitQuizRequest{
		FormID:               fields.FormID,
		Answers:              fields.Answers,
		FirstName:            fields.FirstName,
		Email:                fields.Email,
		ExperienceLevel:      fields.ExperienceLevel,
		Performance:          fields.Performance,
		BiggestChallenge:     fields.BiggestChallenge,
		DecisionStyle:        fields.DecisionStyle,
		AutomationExperience: fields.AutomationExperience,
		Locale:               fields.Locale,
	}
	if req.FormID == 0 {
		req.FormID = fields.FormIDAlt
	}
	if req.FormID == 0 {
		return req, nil
	}

	// Динамический сабмит: плоские строковые поля тела - это ответы
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if req.Answers == nil {
		req.Answers = make(map[string]string, len(raw))
	}
	for key, value := range raw {
		if submitReservedKeys[key] {
			continue
		}
		if _, ok := req.Answers[key]; ok {
			continue
		}
		var answer string
		if err := json.Unmarshal(value, &answer); err != nil {
			// Не строка - не ответ на вопрос
			continue
		}
		req.Answers[key] = answer
	}
	return req, nil
}

// SubmitQuiz обрабатывает сабмит квиза
// POST /api/quiz/submit
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	req, err := parseSubmitRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	var result *service.SubmissionResult
	if req.FormID != 0 {
		result, err = h.submissionService.SubmitDynamic(c.Request.Context(), service.DynamicSubmission{
			FormID:  req.FormID,
			Answers: req.Answers,
			Locale:  req.Locale,
		})
	} else {
		result, err = h.submissionService.SubmitLegacy(c.Request.Context(), service.LegacySubmission{
			FirstName:            req.FirstName,
			Email:                req.Email,
			ExperienceLevel:      req.ExperienceLevel,
			Performance:          req.Performance,
			BiggestChallenge:     req.BiggestChallenge,
			DecisionStyle:        req.DecisionStyle,
			AutomationExperience: req.AutomationExperience,
			Locale:               req.Locale,
		})
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Агрегаты дашборда устарели
	if h.statsService != nil {
		h.statsService.Invalidate()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"contactId":       result.ContactID,
		"personalityType": result.PersonalityType,
		"scores":          result.Scores,
	})
}

// GetPublishedForm возвращает опубликованную форму по slug.
// Черновики для публичной страницы не существуют (404).
// GET /api/forms/:slug
func (h *QuizHandler) GetPublishedForm(c *gin.Context) {
	form, err := h.formService.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPublicFormResponse(form))
}
