package presenter

// StatusResponse is the status/message envelope shared by the activity
// and license endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Success creates a bare success acknowledgment.
func Success() StatusResponse {
	return StatusResponse{Status: "success"}
}

// SuccessMessage creates a success acknowledgment with a message.
func SuccessMessage(message string) StatusResponse {
	return StatusResponse{Status: "success", Message: message}
}

// Error creates an error envelope with a client-facing message.
func Error(message string) StatusResponse {
	return StatusResponse{Status: "error", Message: message}
}

// LogResponse acknowledges a log submission. Stored and duplicate
// submissions both acknowledge with Success true.
type LogResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LogError is the error envelope specific to the log endpoint.
type LogError struct {
	Error string `json:"error"`
}

// HealthResponse reports service and store status.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	Database         string `json:"database"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// UnhealthyResponse reports a failed store probe.
type UnhealthyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error"`
}
