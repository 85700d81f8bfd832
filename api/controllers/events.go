package controllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/analytics"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/models"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/transport"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/sheets"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/storage"
	"github.com/gin-gonic/gin"
)

type EventsController struct {
	cache    *sheets.Cache
	pins     storage.PinStorage
	sessions storage.SessionStorage
}

func NewEventsController(cache *sheets.Cache, pins storage.PinStorage, sessions storage.SessionStorage) *EventsController {
	return &EventsController{
		cache:    cache,
		pins:     pins,
		sessions: sessions,
	}
}

func (c *EventsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/events", transport.SessionAuthMiddleware(c.sessions))

	group.GET("", c.listEvents)
	group.POST("/connect", transport.RequireSheetEditor(), c.connect)
	group.POST("/pins", c.pin)
	group.DELETE("/pins/:initiative", c.unpin)
}

// listEvents godoc
// @Summary List initiatives found in the connected sheet
// @Description Returns the unique initiative names with pinned ones first
// @Tags events
// @Produce json
// @Security SessionToken
// @Success 200 {array} models.EventListEntry
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 502 {object} models.ErrorResponse "Sheet could not be loaded"
// @Router /api/events [get]
func (c *EventsController) listEvents(g *gin.Context) {
	rows, err := c.cache.Rows(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "could not load sheet"})
		return
	}

	pinnedNames, err := c.pins.List(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load pins"})
		return
	}
	pinned := make(map[string]bool, len(pinnedNames))
	for _, name := range pinnedNames {
		pinned[name] = true
	}

	seen := map[string]bool{}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(analytics.NormalizeLabel(row[analytics.ColInitiativeName]))
		if name == "" || name == analytics.UnknownLabel || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]models.EventListEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, models.EventListEntry{Name: name, Pinned: pinned[name]})
	}
	// Pinned initiatives float to the top, keeping alphabetical order inside
	// each group.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Pinned && !entries[j].Pinned
	})

	g.JSON(http.StatusOK, entries)
}

// connect godoc
// @Summary Connect to a different Google Sheet
// @Description Switches the dashboard to the given sheet URL or ID and loads it
// @Tags events
// @Accept json
// @Produce json
// @Security SessionToken
// @Param sheet body models.ConnectRequest true "Sheet URL or ID"
// @Success 200 {object} models.ConnectResponse
// @Failure 400 {object} models.ErrorResponse "Not a sheet URL or ID"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 403 {object} models.ErrorResponse "Role may not connect sheets"
// @Failure 502 {object} models.ErrorResponse "Sheet could not be loaded"
// @Router /api/events/connect [post]
func (c *EventsController) connect(g *gin.Context) {
	var req models.ConnectRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	sheetID := sheets.ExtractSheetID(req.Sheet)
	if sheetID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "not a Google Sheet URL or ID"})
		return
	}

	rows, err := c.cache.Connect(g.Request.Context(), sheetID)
	if err != nil {
		logging.Log.Errorf("EVENTS: failed to connect to sheet %s: %v", sheetID, err)
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "could not load sheet"})
		return
	}

	g.JSON(http.StatusOK, &models.ConnectResponse{SheetID: sheetID, Rows: len(rows)})
}

// pin godoc
// @Summary Pin an initiative
// @Description Pinned initiatives are listed first in the event list
// @Tags events
// @Accept json
// @Produce json
// @Security SessionToken
// @Param pin body models.PinRequest true "Initiative to pin"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Missing initiative name"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/events/pins [post]
func (c *EventsController) pin(g *gin.Context) {
	var req models.PinRequest
	if err := g.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Initiative) == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "initiative is required"})
		return
	}

	if err := c.pins.Put(g.Request.Context(), strings.TrimSpace(req.Initiative)); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save pin"})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "pinned"})
}

// unpin godoc
// @Summary Unpin an initiative
// @Tags events
// @Produce json
// @Security SessionToken
// @Param initiative path string true "Initiative name"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Missing initiative name"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/events/pins/{initiative} [delete]
func (c *EventsController) unpin(g *gin.Context) {
	initiative := g.Param("initiative")
	if initiative == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "initiative is required"})
		return
	}

	if err := c.pins.Delete(g.Request.Context(), initiative); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete pin"})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "unpinned"})
}
