package model

// AnalyticsInfo describes the analytics engine at its root path.
type AnalyticsInfo struct {
	Service      string             `json:"service"`
	Version      string             `json:"version"`
	Description  string             `json:"description"`
	Endpoints    AnalyticsEndpoints `json:"endpoints"`
	Capabilities []string           `json:"capabilities"`
}

// AnalyticsEndpoints maps endpoint names to "METHOD /path" strings.
type AnalyticsEndpoints struct {
	Health           string `json:"health"`
	SpendingAnalysis string `json:"spending_analysis"`
	Trends           string `json:"trends"`
	Predictions      string `json:"predictions"`
}

// SpendingAnalysisResponse is the body of GET /spending-analysis.
type SpendingAnalysisResponse struct {
	Analysis    SpendingAnalysis `json:"analysis"`
	GeneratedAt string           `json:"generated_at"`
	Engine      string           `json:"engine"`
}

type SpendingAnalysis struct {
	TotalExpenses        float64         `json:"total_expenses"`
	AverageDailySpending float64         `json:"average_daily_spending"`
	SpendingTrend        string          `json:"spending_trend"`
	TopCategories        []CategorySpend `json:"top_categories"`
	Insights             []string        `json:"insights"`
}

type CategorySpend struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// TrendsResponse is the body of GET /trends.
type TrendsResponse struct {
	Trends         Trends `json:"trends"`
	AnalysisPeriod string `json:"analysis_period"`
	GeneratedAt    string `json:"generated_at"`
}

type Trends struct {
	MonthlyTrend     MonthlyTrend     `json:"monthly_trend"`
	CategoryTrends   []CategoryTrend  `json:"category_trends"`
	SeasonalPatterns SeasonalPatterns `json:"seasonal_patterns"`
}

type MonthlyTrend struct {
	Direction        string  `json:"direction"`
	PercentageChange float64 `json:"percentage_change"`
	Confidence       float64 `json:"confidence"`
}

type CategoryTrend struct {
	Category string  `json:"category"`
	Trend    string  `json:"trend"`
	Change   float64 `json:"change"`
}

type SeasonalPatterns struct {
	PeakMonths []string `json:"peak_months"`
	LowMonths  []string `json:"low_months"`
}

// PredictionsResponse is the body of GET /predictions.
type PredictionsResponse struct {
	Predictions  Predictions `json:"predictions"`
	ModelVersion string      `json:"model_version"`
	GeneratedAt  string      `json:"generated_at"`
}

type Predictions struct {
	NextMonthSpending SpendingForecast `json:"next_month_spending"`
	BudgetAlerts      []BudgetAlert    `json:"budget_alerts"`
	Recommendations   []string         `json:"recommendations"`
}

type SpendingForecast struct {
	EstimatedTotal     float64            `json:"estimated_total"`
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
	ConfidenceLevel    float64            `json:"confidence_level"`
}

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type BudgetAlert struct {
	Category           string  `json:"category"`
	RiskLevel          string  `json:"risk_level"`
	PredictedOverspend float64 `json:"predicted_overspend"`
}
