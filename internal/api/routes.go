package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kspsusmitha/fitness-app/internal/metrics"
	"github.com/kspsusmitha/fitness-app/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes регистрирует все маршруты API
func SetupRoutes(r *gin.Engine, services *service.Services, m *metrics.Metrics, gatherer prometheus.Gatherer) {
	h := &Handlers{services: services, metrics: m}

	r.Use(MetricsMiddleware(m))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api", SessionMiddleware())

	// Навигация
	api.GET("/tabs", h.ListTabs)
	api.PUT("/tabs/active", h.SelectTab)
	api.GET("/screens/:tab", h.GetScreen)

	// Профиль и калькуляторы
	api.GET("/profile", h.GetProfile)
	api.PUT("/profile/distance", h.SetDistance)
	api.PUT("/profile/protein", h.SetFoodProtein)
	api.POST("/profile/calories", h.CalculateCalories)
	api.POST("/profile/protein", h.AddProtein)
}
