package utils

import "net/http"

// AppError is the handler-boundary error: a message the client may see and
// the HTTP status it maps to. Anything else that reaches the boundary is
// treated as an internal error.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string { return e.Message }

func ValidationError(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

// AuthenticationError is deliberately generic: the client must not learn
// whether the email or the password was wrong.
func AuthenticationError() *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: msg}
}

func ConflictError(msg string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: msg}
}

func ForbiddenError(msg string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: msg}
}
