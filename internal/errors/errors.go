package errors

import (
	"errors"
	"net/http"
	"time"
)

var (
	// ErrAuthentication is returned when the email is unknown or the password
	// does not match the stored credential.
	ErrAuthentication = errors.New("invalid email or password")
	// ErrNotArticleOwner is returned when an authenticated user tries to
	// mutate an article they do not own.
	ErrNotArticleOwner = errors.New("not the article owner")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrDuplicateEmail is returned when registration hits the unique email
	// index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Time       time.Time `json:"time"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	RequestURI string    `json:"requestURI"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, status, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Message:    message,
	}
}

// ToErrorResponse builds the envelope for the request being answered.
func (e *HTTPError) ToErrorResponse(requestURI string) ErrorResponse {
	return ErrorResponse{
		Time:       time.Now(),
		Status:     e.Status,
		Message:    e.Message,
		RequestURI: requestURI,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// an internal error.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAuthentication):
		return NewHTTPError(http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, ErrNotArticleOwner):
		return NewHTTPError(http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrArticleNotFound),
		errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, "CONFLICT", err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
	}
}
