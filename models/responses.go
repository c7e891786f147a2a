package models

// ErrorResponse is the JSON body of every non-2xx API response produced by
// the team endpoints.
type ErrorResponse struct {
	// Error is a stable error kind, e.g. "InvalidRequestError".
	Error string `json:"error"`

	// Message explains the failure to a person.
	Message string `json:"message"`
}
