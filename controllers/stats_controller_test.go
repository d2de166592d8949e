package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-api/apierrors"
	"payment-api/controllers"
	"payment-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockStatsSvc struct {
	stats *models.Stats
	err   *apierrors.Error
}

func (m *mockStatsSvc) Collect(_ context.Context) (*models.Stats, *apierrors.Error) {
	return m.stats, m.err
}

func setupStatsRouter(svc *mockStatsSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sc := controllers.NewStatsController(svc)
	r.GET("/stats", sc.GetStats)
	return r
}

func TestStatsEndpoint_EmptyStoreShape(t *testing.T) {
	svc := &mockStatsSvc{
		stats: &models.Stats{
			Totals:       map[string]int64{"ALL": 0},
			SettledTotal: 0,
			RecentOrders: []models.Order{},
		},
	}
	r := setupStatsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var stats models.Stats
	_ = json.Unmarshal(w.Body.Bytes(), &stats)
	assert.Equal(t, int64(0), stats.Totals["ALL"])
	assert.Equal(t, 0.0, stats.SettledTotal)
	assert.Empty(t, stats.RecentOrders)
}

func TestStatsEndpoint_StorageErrorIs500(t *testing.T) {
	svc := &mockStatsSvc{err: &apierrors.Error{Kind: apierrors.KindStorage, Code: 500, Message: "db down"}}
	r := setupStatsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
