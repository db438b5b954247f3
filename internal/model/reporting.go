package model

// ReportingInfo describes the reporting engine at its root path.
type ReportingInfo struct {
	Service   string             `json:"service"`
	Version   string             `json:"version"`
	Status    string             `json:"status"`
	Endpoints ReportingEndpoints `json:"endpoints"`
}

// ReportingEndpoints is keyed by path, as the reporting engine has always published it.
type ReportingEndpoints struct {
	Health  string `json:"/health"`
	Reports string `json:"/reports"`
}

// ReportsResponse is the body of GET /reports.
type ReportsResponse struct {
	Reports []Report `json:"reports"`
	Total   int      `json:"total"`
}

// Report is one entry of the report catalog.
type Report struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Period      string `json:"period"`
	Format      string `json:"format"`
	Status      string `json:"status"`
}
