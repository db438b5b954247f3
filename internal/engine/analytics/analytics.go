// Package analytics is the route table of the Analytics Engine.
//
// Every handler returns a fixed payload; only the timestamps change between
// requests.
package analytics

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"finengine/internal/engine"
	"finengine/internal/model"
)

const (
	Name    = "Analytics Engine"
	Slug    = "analytics-engine"
	Version = "1.0.0"

	engineTag = "Analytics Engine v1.0"
)

// New builds the Analytics Engine. now supplies the timestamps stamped into
// payloads; pass time.Now outside of tests.
func New(now func() time.Time) *engine.Engine {
	if now == nil {
		now = time.Now
	}
	return &engine.Engine{
		Name:           Name,
		Slug:           Slug,
		Version:        Version,
		Tagline:        "Ready to process financial analytics requests",
		DocsInstance:   "analytics",
		DefaultWorkers: 64,
		Routes: []engine.Route{
			{Method: http.MethodGet, Path: "/health", Name: "health", Summary: "Health check", Handler: health(now)},
			{Method: http.MethodGet, Path: "/", Name: "root", Summary: "Service description", Handler: root()},
			{Method: http.MethodGet, Path: "/spending-analysis", Name: "spending_analysis", Summary: "Spending analysis", Handler: spendingAnalysis(now)},
			{Method: http.MethodGet, Path: "/trends", Name: "trends", Summary: "Spending trends", Handler: trends(now)},
			{Method: http.MethodGet, Path: "/predictions", Name: "predictions", Summary: "Spending predictions", Handler: predictions(now)},
		},
	}
}

// health godoc
// @Summary Health check
// @Tags analytics
// @Produce json
// @Success 200 {object} model.Health
// @Router /health [get]
func health(now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Health{
			Status:    "healthy",
			Service:   Name,
			Version:   Version,
			Timestamp: engine.Timestamp(now()),
		})
	}
}

// root godoc
// @Summary Service description
// @Tags analytics
// @Produce json
// @Success 200 {object} model.AnalyticsInfo
// @Router / [get]
func root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.AnalyticsInfo{
			Service:     "Finance Analytics Engine",
			Version:     Version,
			Description: "High-performance C++ analytics engine for financial calculations",
			Endpoints: model.AnalyticsEndpoints{
				Health:           "GET /health",
				SpendingAnalysis: "GET /spending-analysis",
				Trends:           "GET /trends",
				Predictions:      "GET /predictions",
			},
			Capabilities: []string{
				"Real-time expense analysis",
				"Trend detection",
				"Statistical calculations",
				"Predictive modeling",
			},
		})
	}
}

// spendingAnalysis godoc
// @Summary Spending analysis
// @Tags analytics
// @Produce json
// @Success 200 {object} model.SpendingAnalysisResponse
// @Router /spending-analysis [get]
func spendingAnalysis(now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.SpendingAnalysisResponse{
			Analysis: model.SpendingAnalysis{
				TotalExpenses:        2847.32,
				AverageDailySpending: 94.91,
				SpendingTrend:        "increasing",
				TopCategories: []model.CategorySpend{
					{Category: "Food & Dining", Amount: 856.23, Percentage: 30.1},
					{Category: "Transportation", Amount: 445.67, Percentage: 15.6},
					{Category: "Shopping", Amount: 398.12, Percentage: 14.0},
				},
				Insights: []string{
					"Spending increased by 12% compared to last month",
					"Food expenses are above average",
					"Transportation costs are stable",
				},
			},
			GeneratedAt: engine.Timestamp(now()),
			Engine:      engineTag,
		})
	}
}

// trends godoc
// @Summary Spending trends
// @Tags analytics
// @Produce json
// @Success 200 {object} model.TrendsResponse
// @Router /trends [get]
func trends(now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.TrendsResponse{
			Trends: model.Trends{
				MonthlyTrend: model.MonthlyTrend{
					Direction:        "upward",
					PercentageChange: 8.5,
					Confidence:       0.87,
				},
				CategoryTrends: []model.CategoryTrend{
					{Category: "Food & Dining", Trend: "increasing", Change: 15.2},
					{Category: "Transportation", Trend: "stable", Change: -2.1},
					{Category: "Entertainment", Trend: "decreasing", Change: -8.7},
				},
				SeasonalPatterns: model.SeasonalPatterns{
					PeakMonths: []string{"December", "January"},
					LowMonths:  []string{"February", "March"},
				},
			},
			AnalysisPeriod: "last_12_months",
			GeneratedAt:    engine.Timestamp(now()),
		})
	}
}

// predictions godoc
// @Summary Spending predictions
// @Tags analytics
// @Produce json
// @Success 200 {object} model.PredictionsResponse
// @Router /predictions [get]
func predictions(now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.PredictionsResponse{
			Predictions: model.Predictions{
				NextMonthSpending: model.SpendingForecast{
					EstimatedTotal: 3150.50,
					ConfidenceInterval: model.ConfidenceInterval{
						Lower: 2890.00,
						Upper: 3410.00,
					},
					ConfidenceLevel: 0.85,
				},
				BudgetAlerts: []model.BudgetAlert{
					{Category: "Food & Dining", RiskLevel: "high", PredictedOverspend: 156.78},
				},
				Recommendations: []string{
					"Consider reducing dining out expenses",
					"Transportation costs are well managed",
					"Set a stricter budget for shopping",
				},
			},
			ModelVersion: "1.0",
			GeneratedAt:  engine.Timestamp(now()),
		})
	}
}
