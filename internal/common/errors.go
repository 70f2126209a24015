package common

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Input-rejection kinds. These cross the pipeline boundary and map to
// client-facing 4xx-class responses.
var (
	ErrEmptyImage        = errors.New("empty image")
	ErrImageTooLarge     = errors.New("image too large")
	ErrImageTooSmall     = errors.New("image too small")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrMaliciousContent  = errors.New("malicious content detected")
	ErrInvalidFileType   = errors.New("invalid file type")
	ErrImageValidation   = errors.New("image validation failed")
)

// Processing and capability kinds.
var (
	ErrOCRProcessingFailed = errors.New("ocr processing failed")
	ErrOCRUnavailable      = errors.New("ocr engine unavailable")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrDatabase            = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsValidationError reports whether err is an input-rejection kind, i.e. the
// caller sent something we refuse to process (as opposed to us failing).
func IsValidationError(err error) bool {
	for _, kind := range []error{
		ErrEmptyImage, ErrImageTooLarge, ErrImageTooSmall,
		ErrUnsupportedFormat, ErrMaliciousContent, ErrInvalidFileType,
		ErrImageValidation,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func UnavailableError(message string) error {
	return status.Error(codes.Unavailable, message)
}

// ResourceExhaustedError carries the retry hint in the message so clients
// without detail-decoding still see it.
func ResourceExhaustedError(reason string, retryAfter time.Duration) error {
	return status.Errorf(codes.ResourceExhausted, "%s: retry after %.0fs", reason, retryAfter.Seconds())
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
