package models

// ErrorResponse is the uniform body written for every failed request,
// whether the failure was raised by a request guard or by a handler.
type ErrorResponse struct {
	// CustomMessage is a fixed, human-friendly summary of the failing router.
	CustomMessage string `json:"customMessage"`

	// Message is the message of the underlying error.
	Message string `json:"message"`

	// Stack is the call stack captured where the error was reported.
	// Empty when stack exposure is disabled in the server configuration.
	Stack string `json:"stack"`
}

// HealthResponse is returned by the health endpoint when storage is reachable.
type HealthResponse struct {
	Status string `json:"status"`
}
