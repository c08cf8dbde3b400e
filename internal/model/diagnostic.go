package model

// Diagnostic is the body of GET /test.  Every field is a human-readable
// status string except Collections.
type Diagnostic struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ValidationIssue describes one rejected part of a request body.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is the 422 body for malformed requests.
type ValidationError struct {
	Detail []ValidationIssue `json:"detail"`
}
