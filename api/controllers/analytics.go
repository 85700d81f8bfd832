package controllers

import (
	"net/http"
	"strings"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/analytics"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/models"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/transport"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/sheets"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/storage"
	"github.com/gin-gonic/gin"
)

// geoChartLimit caps the country/state/city bar charts to the biggest buckets
// so a worldwide event does not render a 200-bar chart.
const geoChartLimit = 15

type AnalyticsController struct {
	cache    *sheets.Cache
	configs  storage.EventConfigStorage
	sessions storage.SessionStorage
}

func NewAnalyticsController(cache *sheets.Cache, configs storage.EventConfigStorage, sessions storage.SessionStorage) *AnalyticsController {
	return &AnalyticsController{
		cache:    cache,
		configs:  configs,
		sessions: sessions,
	}
}

func (c *AnalyticsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/analytics", transport.SessionAuthMiddleware(c.sessions))

	group.GET("/:initiative", c.getAnalytics)
}

// getAnalytics godoc
// @Summary Aggregate analytics for one initiative
// @Description Sums KPI columns, merges the distribution and daily-registration cells across the initiative's rows and computes the registration pace forecast
// @Tags analytics
// @Produce json
// @Security SessionToken
// @Param initiative path string true "Initiative name as it appears in the sheet"
// @Success 200 {object} models.AnalyticsResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "No rows for that initiative"
// @Failure 502 {object} models.ErrorResponse "Sheet could not be loaded"
// @Router /api/analytics/{initiative} [get]
func (c *AnalyticsController) getAnalytics(g *gin.Context) {
	initiative := strings.TrimSpace(g.Param("initiative"))
	if initiative == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "initiative is required"})
		return
	}

	allRows, err := c.cache.Rows(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "could not load sheet"})
		return
	}

	rows := make([]analytics.EventRecord, 0, len(allRows))
	for _, row := range allRows {
		name := strings.TrimSpace(analytics.NormalizeLabel(row[analytics.ColInitiativeName]))
		if name == initiative {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "initiative not found in sheet"})
		return
	}

	distributions := map[string]analytics.DistributionMap{}
	for _, column := range analytics.DistributionColumns {
		parsed := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			parsed = append(parsed, analytics.ParseObjectOrNull(row[column]))
		}
		distributions[column] = analytics.MergeDistributions(parsed)
	}

	dailyCells := make([]any, 0, len(rows))
	for _, row := range rows {
		dailyCells = append(dailyCells, row[analytics.ColDailyRegistrations])
	}
	series := analytics.ToSortedSeries(analytics.MergeDailySeries(dailyCells))

	response := &models.AnalyticsResponse{
		Initiative: initiative,
		KPIs:       analytics.SummarizeKPIs(rows, analytics.KPIColumns),
		Gender:     models.TransformDistribution(distributions[analytics.ColGender], 0),
		Occupation: models.TransformDistribution(distributions[analytics.ColOccupation], 0),
		Country:    models.TransformDistribution(distributions[analytics.ColCountry], geoChartLimit),
		State:      models.TransformDistribution(distributions[analytics.ColState], geoChartLimit),
		City:       models.TransformDistribution(distributions[analytics.ColCity], geoChartLimit),
		DailyRegistrations: models.TimeSeriesResponse{
			Dates:  series.Dates,
			Counts: series.Counts,
		},
	}

	// The per-initiative config is optional; without it there is no target and
	// no dashboard link, but the charts still render.
	config, err := c.configs.Get(g.Request.Context(), initiative)
	if err != nil {
		logging.Log.Errorf("ANALYTICS: failed to read config for %s: %v", initiative, err)
	}
	if config != nil {
		response.DashboardLink = config.DashboardLink
		forecast := analytics.ForecastPace(config.RegistrationTarget, series, analytics.WindowFromRows(rows))
		response.Forecast = models.TransformForecast(config.RegistrationTarget, forecast)
	}

	g.JSON(http.StatusOK, response)
}
