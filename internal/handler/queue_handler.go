package handler

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quizfortraders/funnel-api/internal/service"
)

// QueueHandler - HTTP-вход диспетчера очереди nurture-писем.
// Эндпоинт дергается внешним кроном, поэтому защищен отдельным секретом,
// а не админской сессией.
type QueueHandler struct {
	queueService *service.QueueService
	cronSecret   string
}

// NewQueueHandler создает новый обработчик очереди
func NewQueueHandler(queueService *service.QueueService, cronSecret string) *QueueHandler {
	return &QueueHandler{
		queueService: queueService,
		cronSecret:   cronSecret,
	}
}

// ProcessQueue обрабатывает один батч очереди писем.
// GET|POST /api/emails/process-queue
// Секрет принимается как Authorization: Bearer <secret> или ?secret=<secret>.
func (h *QueueHandler) ProcessQueue(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.queueService.ProcessQueue(c.Request.Context())
	if err != nil {
		log.Printf("[QueueHandler] queue run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": result.Processed,
		"errors":    result.Errors,
	})
}

// authorized сверяет cron-секрет за константное время. Секрет опционален:
// без него эндпоинт открыт (dev-режим; в release конфиг требует CRON_SECRET).
func (h *QueueHandler) authorized(c *gin.Context) bool {
	if h.cronSecret == "" {
		return true
	}

	provided := c.Query("secret")
	if provided == "" {
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			provided = strings.TrimPrefix(header, "Bearer ")
		}
	}

	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.cronSecret)) == 1
}
