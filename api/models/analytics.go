package models

import (
	"sort"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/analytics"
)

type DistributionEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type TimeSeriesResponse struct {
	Dates  []string `json:"dates"`
	Counts []int    `json:"counts"`
}

type ForecastResponse struct {
	AverageDaily    *float64 `json:"average_daily"`
	WindowDays      int      `json:"window_days"`
	WindowFromSheet bool     `json:"window_from_sheet"`
	RequiredDaily   *float64 `json:"required_daily"`
	Target          int      `json:"target"`
	TotalSoFar      int      `json:"total_so_far"`
	DaysRemaining   int      `json:"days_remaining"`
	PeriodEnded     bool     `json:"period_ended"`
}

type AnalyticsResponse struct {
	Initiative         string              `json:"initiative"`
	KPIs               map[string]int      `json:"kpis"`
	Gender             []DistributionEntry `json:"gender"`
	Occupation         []DistributionEntry `json:"occupation"`
	Country            []DistributionEntry `json:"country"`
	State              []DistributionEntry `json:"state"`
	City               []DistributionEntry `json:"city"`
	DailyRegistrations TimeSeriesResponse  `json:"daily_registrations"`
	Forecast           *ForecastResponse   `json:"forecast,omitempty"`
	DashboardLink      string              `json:"dashboard_link,omitempty"`
}

// TransformDistribution sorts a merged distribution by count descending
// (ties by label) and keeps at most limit entries. A limit of 0 keeps all.
func TransformDistribution(dist analytics.DistributionMap, limit int) []DistributionEntry {
	entries := make([]DistributionEntry, 0, len(dist))
	for label, count := range dist {
		entries = append(entries, DistributionEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func TransformForecast(target int, forecast *analytics.PaceForecast) *ForecastResponse {
	if forecast == nil {
		return nil
	}
	return &ForecastResponse{
		AverageDaily:    forecast.AverageDaily,
		WindowDays:      forecast.WindowDays,
		WindowFromSheet: forecast.WindowFromSheet,
		RequiredDaily:   forecast.RequiredDaily,
		Target:          target,
		TotalSoFar:      forecast.TotalSoFar,
		DaysRemaining:   forecast.DaysRemaining,
		PeriodEnded:     forecast.PeriodEnded,
	}
}
