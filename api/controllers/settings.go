package controllers

import (
	"net/http"
	"strings"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/models"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/transport"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/auth"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/storage"
	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	configs  storage.EventConfigStorage
	sessions storage.SessionStorage
}

func NewSettingsController(configs storage.EventConfigStorage, sessions storage.SessionStorage) *SettingsController {
	return &SettingsController{
		configs:  configs,
		sessions: sessions,
	}
}

func (c *SettingsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/settings/events",
		transport.SessionAuthMiddleware(c.sessions),
		transport.RequirePermission(auth.PermEditSheet))

	group.GET("", c.listConfigs)
	group.GET("/:initiative", c.getConfig)
	group.PUT("/:initiative", c.putConfig)
	group.DELETE("/:initiative", c.deleteConfig)
}

// listConfigs godoc
// @Summary List all per-initiative configs
// @Tags settings
// @Produce json
// @Security SessionToken
// @Success 200 {array} models.EventConfigResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 403 {object} models.ErrorResponse "Role may not edit settings"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/settings/events [get]
func (c *SettingsController) listConfigs(g *gin.Context) {
	configs, err := c.configs.GetAll(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not read configs"})
		return
	}

	response := make([]models.EventConfigResponse, 0, len(configs))
	for _, config := range configs {
		response = append(response, models.TransformEventConfigToResponse(config))
	}
	g.JSON(http.StatusOK, response)
}

// getConfig godoc
// @Summary Read the config for one initiative
// @Description Unconfigured initiatives return a zero-value entry rather than 404 so the settings form can prefill
// @Tags settings
// @Produce json
// @Security SessionToken
// @Param initiative path string true "Initiative name"
// @Success 200 {object} models.EventConfigResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 403 {object} models.ErrorResponse "Role may not edit settings"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/settings/events/{initiative} [get]
func (c *SettingsController) getConfig(g *gin.Context) {
	initiative := strings.TrimSpace(g.Param("initiative"))
	if initiative == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "initiative is required"})
		return
	}

	config, err := c.configs.Get(g.Request.Context(), initiative)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not read config"})
		return
	}
	if config == nil {
		config = &storage.EventConfig{Initiative: initiative}
	}
	g.JSON(http.StatusOK, models.TransformEventConfigToResponse(config))
}

// putConfig godoc
// @Summary Create or update the config for one initiative
// @Tags settings
// @Accept json
// @Produce json
// @Security SessionToken
// @Param initiative path string true "Initiative name"
// @Param config body models.EventConfigUpdateRequest true "Config values"
// @Success 200 {object} models.EventConfigResponse
// @Failure 400 {object} models.ErrorResponse "Invalid config values"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 403 {object} models.ErrorResponse "Role may not edit settings"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/settings/events/{initiative} [put]
func (c *SettingsController) putConfig(g *gin.Context) {
	initiative := strings.TrimSpace(g.Param("initiative"))
	if initiative == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "initiative is required"})
		return
	}

	var req models.EventConfigUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.RegistrationTarget < 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "registration target cannot be negative"})
		return
	}

	config := &storage.EventConfig{
		Initiative:         initiative,
		DashboardLink:      strings.TrimSpace(req.DashboardLink),
		AdminUsername:      req.AdminUsername,
		AdminPassword:      req.AdminPassword,
		RegistrationTarget: req.RegistrationTarget,
	}
	if err := c.configs.Put(g.Request.Context(), config); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save config"})
		return
	}

	logging.Log.Infof("SETTINGS: updated config for %s (target=%d)", initiative, req.RegistrationTarget)
	g.JSON(http.StatusOK, models.TransformEventConfigToResponse(config))
}

// deleteConfig godoc
// @Summary Delete the config for one initiative
// @Tags settings
// @Produce json
// @Security SessionToken
// @Param initiative path string true "Initiative name"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Missing initiative name"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 403 {object} models.ErrorResponse "Role may not edit settings"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/settings/events/{initiative} [delete]
func (c *SettingsController) deleteConfig(g *gin.Context) {
	initiative := strings.TrimSpace(g.Param("initiative"))
	if initiative == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "initiative is required"})
		return
	}

	if err := c.configs.Delete(g.Request.Context(), initiative); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete config"})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "config deleted"})
}
