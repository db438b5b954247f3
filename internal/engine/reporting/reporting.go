// Package reporting is the route table of the Reporting Engine.
package reporting

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"finengine/internal/engine"
	"finengine/internal/model"
)

const (
	Name    = "Reporting Engine"
	Slug    = "reporting-engine"
	Version = "1.0.0"
)

// New builds the Reporting Engine. It serves one connection at a time by default.
func New() *engine.Engine {
	return &engine.Engine{
		Name:           Name,
		Slug:           Slug,
		Version:        Version,
		Tagline:        "Ready to generate financial reports",
		DocsInstance:   "reporting",
		DefaultWorkers: 1,
		Routes: []engine.Route{
			{Method: http.MethodGet, Path: "/health", Name: "health", Summary: "Health check", Handler: health},
			{Method: http.MethodGet, Path: "/", Name: "root", Summary: "Service description", Handler: root},
			{Method: http.MethodGet, Path: "/reports", Name: "reports", Summary: "Available reports", Handler: reports},
		},
	}
}

// health godoc
// @Summary Health check
// @Tags reporting
// @Produce json
// @Success 200 {object} model.Health
// @Router /health [get]
func health(c *fiber.Ctx) error {
	return c.JSON(model.Health{Status: "healthy", Service: Name, Version: Version})
}

// root godoc
// @Summary Service description
// @Tags reporting
// @Produce json
// @Success 200 {object} model.ReportingInfo
// @Router / [get]
func root(c *fiber.Ctx) error {
	return c.JSON(model.ReportingInfo{
		Service: "Finance Reporting Engine",
		Version: Version,
		Status:  "running",
		Endpoints: model.ReportingEndpoints{
			Health:  "Health check",
			Reports: "Generate reports",
		},
	})
}

// reports godoc
// @Summary Available reports
// @Tags reporting
// @Produce json
// @Success 200 {object} model.ReportsResponse
// @Router /reports [get]
func reports(c *fiber.Ctx) error {
	items := catalog()
	return c.JSON(model.ReportsResponse{Reports: items, Total: len(items)})
}

func catalog() []model.Report {
	return []model.Report{
		{
			ID:          "monthly-summary",
			Title:       "Monthly Expense Summary",
			Description: "Totals and category breakdown for the previous month",
			Period:      "last_month",
			Format:      "json",
			Status:      "ready",
		},
		{
			ID:          "category-breakdown",
			Title:       "Category Breakdown",
			Description: "Spending per category with month over month change",
			Period:      "last_3_months",
			Format:      "json",
			Status:      "ready",
		},
		{
			ID:          "annual-overview",
			Title:       "Annual Overview",
			Description: "Yearly spending, savings rate and seasonal highlights",
			Period:      "last_12_months",
			Format:      "json",
			Status:      "ready",
		},
	}
}
