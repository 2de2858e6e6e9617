package response

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Error codes shared by services and handlers
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"

	ErrCodeInvalidCode          = "INVALID_CODE"
	ErrCodeEmptyQuestionSet     = "EMPTY_QUESTION_SET"
	ErrCodeNoActiveRound        = "NO_ACTIVE_ROUND"
	ErrCodeRoundClosedOrMissing = "ROUND_CLOSED_OR_MISSING"
	ErrCodeGenerationFailure    = "GENERATION_FAILURE"
	ErrCodeSynthesisConflict    = "SYNTHESIS_CONFLICT"
)

// AppError is a typed failure returned by the service layer
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}

func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, "")
}

// IsCode reports whether err is an AppError carrying code
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// SuccessResponse wraps successful payloads
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId,omitempty"`
}

// ErrorBody is the error object inside ErrorResponse
type ErrorBody struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"Resource not found"`
}

// ErrorResponse wraps failures
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"requestId,omitempty"`
}

// SendSuccess writes data inside the success envelope
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
	})
}

// ErrorCodeKey holds the code of the last error envelope written for the request
const ErrorCodeKey = "errorCode"

// SendError writes the error envelope
func SendError(c *gin.Context, status int, code, message string) {
	c.Set(ErrorCodeKey, code)
	c.JSON(status, ErrorResponse{
		Error:     ErrorBody{Code: code, Message: message},
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	if v, ok := c.Get("requestId"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}
