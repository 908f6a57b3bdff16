package model

// Error is the single structured failure shape returned by client
// operations: configuration, resolution, transport and provider failures
// all use it. It is always returned, never panicked across the client
// boundary, and marshals to the same {"error": ..., "details": ...} object
// the json command prints.
type Error struct {
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
