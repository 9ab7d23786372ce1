package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailAlreadyRegistered is returned when an OTP is requested for a registered email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrOTPNotFound is returned when no OTP record exists for an email.
	ErrOTPNotFound = errors.New("otp not found or expired")
	// ErrOTPInvalid is returned when the code does not match or has expired.
	ErrOTPInvalid = errors.New("invalid or expired otp")
	// ErrEmailNotVerified is returned when registering an email without prior OTP verification.
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrUserAlreadyExists is returned when the name or email is already taken.
	ErrUserAlreadyExists = errors.New("name or email already exists")
	// ErrInvalidCredentials is returned for any failed login, without revealing which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProjectNotFound is returned when a project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNotProjectOwner is returned when a project is accessed by a non-owner.
	ErrNotProjectOwner = errors.New("not authorized to access this project")
	// ErrProjectCompleted is returned when editing a completed project.
	ErrProjectCompleted = errors.New("cannot edit a completed project")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrOTPNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "OTP_NOT_FOUND")
	case errors.Is(err, ErrOTPInvalid):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "OTP_INVALID")
	case errors.Is(err, ErrEmailNotVerified):
		return NewHTTPError(http.StatusForbidden, err.Error(), "EMAIL_NOT_VERIFIED")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrNotProjectOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_PROJECT_OWNER")
	case errors.Is(err, ErrProjectCompleted):
		return NewHTTPError(http.StatusForbidden, err.Error(), "PROJECT_COMPLETED")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
