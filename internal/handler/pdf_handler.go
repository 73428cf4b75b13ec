package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizfortraders/funnel-api/internal/content"
	"github.com/quizfortraders/funnel-api/internal/report"
)

// PDFHandler отдает персональный PDF-отчет по типу личности.
// Эндпоинт публичный: ссылка на него уходит в nurture-письмах.
type PDFHandler struct{}

// NewPDFHandler создает новый обработчик PDF-отчетов
func NewPDFHandler() *PDFHandler {
	return &PDFHandler{}
}

// GetReport генерирует и отдает PDF-отчет.
// GET /api/pdf/:type?name=<firstName>
// :type - slug типа личности (emotional-trader, time-starved-trader, ...)
func (h *PDFHandler) GetReport(c *gin.Context) {
	slug := c.Param("type")
	profile := content.ProfileBySlug(slug)
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown personality type %q", slug)})
		return
	}

	data, err := report.Generate(profile, c.Query("name"))
	if err != nil {
		log.Printf("[PDFHandler] generate failed for type=%s: %v", profile.Type, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	filename := fmt.Sprintf("%s-report.pdf", profile.Slug())
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
