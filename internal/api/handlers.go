package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kspsusmitha/fitness-app/internal/calculator"
	"github.com/kspsusmitha/fitness-app/internal/metrics"
	"github.com/kspsusmitha/fitness-app/internal/navigation"
	"github.com/kspsusmitha/fitness-app/internal/screens"
	"github.com/kspsusmitha/fitness-app/internal/service"
	log "github.com/sirupsen/logrus"
)

const frontend = "api"

// Handlers содержит зависимости от сервисов
type Handlers struct {
	services *service.Services
	metrics  *metrics.Metrics
}

type tabsResponse struct {
	Tabs   []tabInfo      `json:"tabs"`
	Active navigation.Tab `json:"active"`
}

type tabInfo struct {
	ID    navigation.Tab `json:"id"`
	Label string         `json:"label"`
	Icon  string         `json:"icon"`
}

type selectTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

type inputRequest struct {
	Value *string `json:"value" binding:"required"`
}

type outcomeResponse struct {
	Updated bool               `json:"updated"`
	Result  string             `json:"result"`
	Profile calculator.Profile `json:"profile"`
}

func (h *Handlers) ListTabs(c *gin.Context) {
	active, err := h.services.Navigation.Active(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, err)
		return
	}

	resp := tabsResponse{Active: active}
	for _, tab := range h.services.Navigation.Tabs() {
		resp.Tabs = append(resp.Tabs, tabInfo{ID: tab, Label: tab.Label(), Icon: tab.Icon()})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) SelectTab(c *gin.Context) {
	var req selectTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tab, err := navigation.ParseTab(req.Tab)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.services.Navigation.Select(c.Request.Context(), sessionID(c), tab)
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.metrics.ScreenView(string(tab), frontend)
	c.JSON(http.StatusOK, s)
}

func (h *Handlers) GetScreen(c *gin.Context) {
	tab, err := navigation.ParseTab(c.Param("tab"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	s, err := h.services.Navigation.Render(c.Request.Context(), sessionID(c), tab)
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.metrics.ScreenView(string(tab), frontend)
	c.JSON(http.StatusOK, s)
}

func (h *Handlers) GetProfile(c *gin.Context) {
	p, err := h.services.Profile.Profile(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) SetDistance(c *gin.Context) {
	var req inputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.services.Profile.SetDistance(c.Request.Context(), sessionID(c), *req.Value)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) SetFoodProtein(c *gin.Context) {
	var req inputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.services.Profile.SetFoodProtein(c.Request.Context(), sessionID(c), *req.Value)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CalculateCalories: нечисловой ввод не ошибка, отвечаем 200 с updated=false
func (h *Handlers) CalculateCalories(c *gin.Context) {
	out, err := h.services.Profile.CalculateCalories(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.metrics.Calculation("calories", out.Updated)
	c.JSON(http.StatusOK, outcomeResponse{
		Updated: out.Updated,
		Result:  screens.CaloriesResult(out.Profile),
		Profile: out.Profile,
	})
}

func (h *Handlers) AddProtein(c *gin.Context) {
	out, err := h.services.Profile.AddProtein(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.metrics.Calculation("protein", out.Updated)
	c.JSON(http.StatusOK, outcomeResponse{
		Updated: out.Updated,
		Result:  screens.ProteinResult(out.Profile),
		Profile: out.Profile,
	})
}

func (h *Handlers) internalError(c *gin.Context, err error) {
	if errors.Is(err, navigation.ErrUnknownTab) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.metrics.ErrorsTotal.Inc()
	log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
