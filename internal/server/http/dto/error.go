package dto

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PageCountResponse carries the exact page count of an uploaded PDF.
type PageCountResponse struct {
	PageCount int `json:"pageCount"`
}

// HealthResponse reports storage availability.
type HealthResponse struct {
	Status string `json:"status"`
}
