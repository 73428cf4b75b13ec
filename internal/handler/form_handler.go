package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/service"
)

// FormHandler обрабатывает админские запросы к конструктору форм квиза
type FormHandler struct {
	formService *service.FormService
}

// NewFormHandler создает новый обработчик форм
func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// ListForms возвращает все формы без вопросов
// GET /api/admin/forms
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.formService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forms": forms, "total": len(forms)})
}

// GetForm возвращает форму с вопросами, включая скоринговые данные
// GET /api/admin/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	formID := c.MustGet("formID").(uint)

	form, err := h.formService.Get(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// FormRequest представляет запрос на создание или обновление формы
type FormRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Locale      string `json:"locale" binding:"omitempty,max=5"`
	Status      string `json:"status" binding:"omitempty"`
	ResultsPath string `json:"results_path" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// CreateForm создает новую форму; slug генерируется из имени, если не задан
// POST /api/admin/forms
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := &entity.QuizForm{
		Name:        req.Name,
		Slug:        req.Slug,
		Locale:      req.Locale,
		Status:      req.Status,
		ResultsPath: req.ResultsPath,
		Description: req.Description,
	}
	if err := h.formService.Create(form); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, form)
}

// UpdateForm обновляет метаданные формы, не трогая вопросы
// PUT /api/admin/forms/:id
func (h *FormHandler) UpdateForm(c *gin.Context) {
	formID := c.MustGet("formID").(uint)

	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := h.formService.Update(formID, &entity.QuizForm{
		Name:        req.Name,
		Slug:        req.Slug,
		Locale:      req.Locale,
		Status:      req.Status,
		ResultsPath: req.ResultsPath,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// DeleteForm удаляет форму вместе с вопросами
// DELETE /api/admin/forms/:id
func (h *FormHandler) DeleteForm(c *gin.Context) {
	formID := c.MustGet("formID").(uint)

	if err := h.formService.Delete(formID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Form deleted successfully"})
}

// CloneForm создает черновик-копию формы с уникальным slug
// POST /api/admin/forms/:id/clone
func (h *FormHandler) CloneForm(c *gin.Context) {
	formID := c.MustGet("formID").(uint)

	clone, err := h.formService.Clone(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, clone)
}

// QuestionPayload - один вопрос в запросе на замену набора вопросов
type QuestionPayload struct {
	QuestionKey   string                  `json:"question_key" binding:"required,max=100"`
	Type          string                  `json:"type" binding:"required"`
	Question      string                  `json:"question" binding:"required,max=500"`
	Placeholder   string                  `json:"placeholder" binding:"omitempty,max=255"`
	Options       []entity.QuestionOption `json:"options" binding:"omitempty"`
	Position      int                     `json:"position"`
	Required      *bool                   `json:"required"`
	ScoringWeight int                     `json:"scoring_weight"`
	ScoringMap    entity.ScoringMap       `json:"scoring_map"`
}

// ReplaceQuestionsRequest представляет запрос на полную замену вопросов формы
type ReplaceQuestionsRequest struct {
	Questions []QuestionPayload `json:"questions" binding:"required"`
}

// ReplaceQuestions заменяет весь набор вопросов формы
// PUT /api/admin/forms/:id/questions
func (h *FormHandler) ReplaceQuestions(c *gin.Context) {
	formID := c.MustGet("formID").(uint)

	var req ReplaceQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions := make([]entity.QuizFormQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		required := true
		if q.Required != nil {
			required = *q.Required
		}
		questions = append(questions, entity.QuizFormQuestion{
			QuestionKey:   q.QuestionKey,
			Type:          q.Type,
			Prompt:        q.Question,
			Placeholder:   q.Placeholder,
			Options:       q.Options,
			Position:      q.Position,
			Required:      required,
			ScoringWeight: q.ScoringWeight,
			ScoringMap:    q.ScoringMap,
		})
	}

	form, err := h.formService.ReplaceQuestions(formID, questions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// SeedForms создает дефолтные формы квиза, пропуская уже существующие
// POST /api/admin/forms/seed
func (h *FormHandler) SeedForms(c *gin.Context) {
	created, err := h.formService.SeedDefaults()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Default forms seeded", "created": created})
}
