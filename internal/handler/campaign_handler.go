package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizfortraders/funnel-api/internal/service"
)

// CampaignHandler обрабатывает админские запросы к разовым рассылкам
type CampaignHandler struct {
	campaignService *service.CampaignService
}

// NewCampaignHandler создает новый обработчик кампаний
func NewCampaignHandler(campaignService *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// ListCampaigns возвращает историю кампаний
// GET /api/admin/campaigns
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "total": len(campaigns)})
}

// GetCampaign возвращает одну кампанию
// GET /api/admin/campaigns/:id
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaignID := c.MustGet("campaignID").(uint)

	campaign, err := h.campaignService.Get(campaignID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// SendCampaignRequest представляет запрос на отправку кампании
type SendCampaignRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Subject       string `json:"subject" binding:"required,max=500"`
	Body          string `json:"body" binding:"required"`
	SegmentType   string `json:"segment_type" binding:"required"`
	SegmentFilter string `json:"segment_filter" binding:"omitempty"`
}

// SendCampaign синхронно отправляет кампанию по сегменту.
// Отправка идет по одному контакту; частичные сбои не останавливают рассылку.
// POST /api/admin/campaigns/send
func (h *CampaignHandler) SendCampaign(c *gin.Context) {
	var req SendCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignService.Send(c.Request.Context(), service.CampaignRequest{
		Name:          req.Name,
		Subject:       req.Subject,
		Body:          req.Body,
		SegmentType:   req.SegmentType,
		SegmentFilter: req.SegmentFilter,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// CountRecipients возвращает размер сегмента перед отправкой
// GET /api/admin/campaigns/recipients?segment_type=...&segment_filter=...
func (h *CampaignHandler) CountRecipients(c *gin.Context) {
	segmentType := c.DefaultQuery("segment_type", "all")
	segmentFilter := c.Query("segment_filter")

	count, err := h.campaignService.CountRecipients(segmentType, segmentFilter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipients": count})
}
