package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizfortraders/funnel-api/internal/service"
)

func queueRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	queueService := service.NewQueueService(
		&stubScheduleRepo{},
		&stubContactRepo{},
		service.NewTemplateResolver(&stubNurtureRepo{}),
		&service.NoopEmailSender{},
	)
	h := NewQueueHandler(queueService, secret)
	r := gin.New()
	r.GET("/api/emails/process-queue", h.ProcessQueue)
	r.POST("/api/emails/process-queue", h.ProcessQueue)
	return r
}

func TestProcessQueue_RejectsMissingSecret(t *testing.T) {
	r := queueRouter("topsecret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/emails/process-queue", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProcessQueue_RejectsWrongSecret(t *testing.T) {
	r := queueRouter("topsecret")

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{"wrong query secret", func(req *http.Request) {
			q := req.URL.Query()
			q.Set("secret", "guess")
			req.URL.RawQuery = q.Encode()
		}},
		{"wrong bearer token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer guess")
		}},
		{"malformed auth header", func(req *http.Request) {
			req.Header.Set("Authorization", "topsecret")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/emails/process-queue", nil)
			tt.prepare(req)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestProcessQueue_AcceptsValidSecret(t *testing.T) {
	r := queueRouter("topsecret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/emails/process-queue", nil)
	req.Header.Set("Authorization", "Bearer topsecret")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(0), resp["processed"])
}

// Секрет не задан - эндпоинт открыт; в release конфиг требует CRON_SECRET
func TestProcessQueue_UnconfiguredSecretLeavesEndpointOpen(t *testing.T) {
	r := queueRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/emails/process-queue", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
