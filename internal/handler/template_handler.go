package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	"github.com/quizfortraders/funnel-api/internal/service"
)

// TemplateHandler обрабатывает админские запросы к шаблонам писем:
// nurture-шаблонам серии и произвольным шаблонам разовых рассылок
type TemplateHandler struct {
	nurtureService    *service.NurtureTemplateService
	emailTemplateRepo repository.EmailTemplateRepository
}

// NewTemplateHandler создает новый обработчик шаблонов
func NewTemplateHandler(
	nurtureService *service.NurtureTemplateService,
	emailTemplateRepo repository.EmailTemplateRepository,
) *TemplateHandler {
	return &TemplateHandler{
		nurtureService:    nurtureService,
		emailTemplateRepo: emailTemplateRepo,
	}
}

// ListNurtureTemplates возвращает nurture-шаблоны локали
// GET /api/admin/nurture-templates?locale=en
func (h *TemplateHandler) ListNurtureTemplates(c *gin.Context) {
	locale := c.DefaultQuery("locale", entity.LocaleEN)

	templates, err := h.nurtureService.List(locale)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates, "total": len(templates)})
}

// GetNurtureTemplate возвращает один nurture-шаблон
// GET /api/admin/nurture-templates/:id
func (h *TemplateHandler) GetNurtureTemplate(c *gin.Context) {
	templateID := c.MustGet("templateID").(uint)

	template, err := h.nurtureService.Get(templateID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateNurtureTemplateRequest представляет запрос на правку nurture-шаблона.
// Ключ шаблона (тип, номер письма, локаль) неизменяем.
type UpdateNurtureTemplateRequest struct {
	Subject string `json:"subject" binding:"required,max=500"`
	Body    string `json:"body" binding:"required"`
}

// UpdateNurtureTemplate обновляет subject и body nurture-шаблона
// PUT /api/admin/nurture-templates/:id
func (h *TemplateHandler) UpdateNurtureTemplate(c *gin.Context) {
	templateID := c.MustGet("templateID").(uint)

	var req UpdateNurtureTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.nurtureService.Update(templateID, req.Subject, req.Body)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// SeedNurtureTemplates заполняет таблицу зашитыми шаблонами серии.
// Существующие записи перезаписываются.
// POST /api/admin/nurture-templates/seed
func (h *TemplateHandler) SeedNurtureTemplates(c *gin.Context) {
	seeded, err := h.nurtureService.SeedDefaults()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nurture templates seeded", "seeded": seeded})
}

// ListEmailTemplates возвращает все шаблоны разовых рассылок
// GET /api/admin/templates
func (h *TemplateHandler) ListEmailTemplates(c *gin.Context) {
	templates, err := h.emailTemplateRepo.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates, "total": len(templates)})
}

// EmailTemplateRequest представляет запрос на создание/обновление шаблона рассылки
type EmailTemplateRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Subject  string `json:"subject" binding:"required,max=500"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category" binding:"omitempty,max=100"`
	Status   string `json:"status" binding:"omitempty,oneof=draft active"`
}

// CreateEmailTemplate создает шаблон рассылки
// POST /api/admin/templates
func (h *TemplateHandler) CreateEmailTemplate(c *gin.Context) {
	var req EmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template := &entity.EmailTemplate{
		Name:     req.Name,
		Subject:  req.Subject,
		Body:     req.Body,
		Category: req.Category,
		Status:   req.Status,
	}
	if template.Status == "" {
		template.Status = entity.TemplateStatusDraft
	}

	if err := h.emailTemplateRepo.Create(template); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

// UpdateEmailTemplate обновляет шаблон рассылки
// PUT /api/admin/templates/:id
func (h *TemplateHandler) UpdateEmailTemplate(c *gin.Context) {
	templateID := c.MustGet("templateID").(uint)

	var req EmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.emailTemplateRepo.GetByID(templateID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	template.Name = req.Name
	template.Subject = req.Subject
	template.Body = req.Body
	template.Category = req.Category
	if req.Status != "" {
		template.Status = req.Status
	}

	if err := h.emailTemplateRepo.Update(template); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteEmailTemplate удаляет шаблон рассылки
// DELETE /api/admin/templates/:id
func (h *TemplateHandler) DeleteEmailTemplate(c *gin.Context) {
	templateID := c.MustGet("templateID").(uint)

	if err := h.emailTemplateRepo.Delete(templateID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}
