package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	"github.com/quizfortraders/funnel-api/internal/handler/dto"
	"github.com/quizfortraders/funnel-api/internal/service"
)

// ContactHandler обрабатывает админские запросы к собранным контактам:
// список с фильтрами, карточка с историей писем, экспорт и статистика
type ContactHandler struct {
	contactRepo  repository.ContactRepository
	scheduleRepo repository.EmailScheduleRepository
	statsService *service.StatsService
}

// NewContactHandler создает новый обработчик контактов
func NewContactHandler(
	contactRepo repository.ContactRepository,
	scheduleRepo repository.EmailScheduleRepository,
	statsService *service.StatsService,
) *ContactHandler {
	return &ContactHandler{
		contactRepo:  contactRepo,
		scheduleRepo: scheduleRepo,
		statsService: statsService,
	}
}

// ListContacts возвращает пагинированный список контактов
// GET /api/admin/submissions?page=1&page_size=20&type=...&search=...
func (h *ContactHandler) ListContacts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := repository.ContactFilter{
		PersonalityType: c.Query("type"),
		Search:          c.Query("search"),
		Limit:           pageSize,
		Offset:          (page - 1) * pageSize,
	}

	contacts, total, err := h.contactRepo.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedContactResponse(contacts, total, page, pageSize))
}

// GetContact возвращает контакт вместе с историей nurture-писем
// GET /api/admin/submissions/:id
func (h *ContactHandler) GetContact(c *gin.Context) {
	contactID := c.MustGet("contactID").(uint)

	contact, err := h.contactRepo.GetByID(contactID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	emails, err := h.scheduleRepo.ListByContact(contactID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewContactDetailResponse(contact, emails))
}

// ExportContacts выгружает контакты под текущим фильтром в Excel
// GET /api/admin/submissions/export?type=...&search=...
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	filter := repository.ContactFilter{
		PersonalityType: c.Query("type"),
		Search:          c.Query("search"),
	}

	contacts, _, err := h.contactRepo.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("contacts_%s", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Contacts"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ContactHandler] stream writer failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID", "Email", "First Name", "Personality Type", "Experience", "Performance", "Automation", "Challenge", "Decision Style", "Locale", "Created At"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ContactHandler] header row failed: %v", err)
	}

	for i, contact := range contacts {
		rowNum := i + 2
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{
			contact.ID,
			sanitizeForExcel(contact.Email),
			sanitizeForExcel(contact.FirstName),
			contact.PersonalityType,
			contact.ExperienceLevel,
			contact.Performance,
			contact.AutomationExperience,
			contact.BiggestChallenge,
			contact.DecisionStyle,
			contact.Locale,
			contact.CreatedAt.Format(time.RFC3339),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ContactHandler] row %d failed: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ContactHandler] flush failed: %v", err)
	}
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ContactHandler] write response failed: %v", err)
	}
}

// GetStats возвращает агрегированную статистику воронки
// GET /api/admin/stats
func (h *ContactHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.Get()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
