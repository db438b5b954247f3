package model

// Health is the body returned by every engine's /health endpoint.
// Timestamp is only populated by engines that stamp their responses.
type Health struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NotFound is the body returned for any path outside the route table.
type NotFound struct {
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// NotFoundMessage is the fixed error string of NotFound.
const NotFoundMessage = "Endpoint not found"
