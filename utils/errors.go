package utils

// CustomError is an error carrying the HTTP status code it should map to.
// Message is safe to return to a client; Cause, when set, preserves the
// underlying failure for logs.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Cause      error  `json:"-"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *CustomError) Unwrap() error {
	return e.Cause
}

// NewCustomError is a helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// WrapError builds a CustomError that keeps the triggering error attached.
func WrapError(statusCode int, message string, cause error) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message, Cause: cause}
}
