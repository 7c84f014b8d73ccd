package models

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// ToolsResponse wraps the ordered tool list.
type ToolsResponse struct {
	Tools []Tool `json:"tools"`
}

// StatisticsResponse wraps aggregated usage statistics.
type StatisticsResponse struct {
	Statistics []ToolStatistics `json:"statistics"`
}

// StatusResponse is returned by the root endpoint.
type StatusResponse struct {
	Message        string      `json:"message"`
	Version        string      `json:"version"`
	DatabaseStatus StorageMode `json:"databaseStatus"`
}

// HealthResponse is returned by the health endpoint.
// Timestamp is formatted as RFC 3339.
type HealthResponse struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Database  StorageMode `json:"database"`
}

// DataResponse is returned by the generic data endpoint.
type DataResponse struct {
	Message        string      `json:"message"`
	Timestamp      string      `json:"timestamp"`
	DatabaseStatus StorageMode `json:"databaseStatus"`
}

// SaveResponse is returned by the generic save endpoint.
type SaveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
