package common

import (
	"errors"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("IMAGE_TOO_LARGE", "image is 12MB", ErrImageTooLarge)

	if !errors.Is(err, ErrImageTooLarge) {
		t.Error("AppError does not unwrap to its kind")
	}
	if msg := err.Error(); !strings.Contains(msg, "IMAGE_TOO_LARGE") || !strings.Contains(msg, "image is 12MB") {
		t.Errorf("Error() = %q, want code and message", msg)
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As failed")
	}
	if appErr.Code != "IMAGE_TOO_LARGE" {
		t.Errorf("Code = %q", appErr.Code)
	}
}

func TestIsValidationError(t *testing.T) {
	validation := []error{
		ErrEmptyImage, ErrImageTooLarge, ErrImageTooSmall, ErrUnsupportedFormat,
		ErrMaliciousContent, ErrInvalidFileType, ErrImageValidation,
	}
	for _, kind := range validation {
		if !IsValidationError(NewAppError("X", "wrapped", kind)) {
			t.Errorf("%v not classified as validation", kind)
		}
	}

	notValidation := []error{ErrOCRProcessingFailed, ErrOCRUnavailable, ErrRateLimited, ErrInternal, ErrDatabase}
	for _, kind := range notValidation {
		if IsValidationError(kind) {
			t.Errorf("%v wrongly classified as validation", kind)
		}
	}
}

func TestResourceExhaustedError(t *testing.T) {
	err := ResourceExhaustedError("window_exceeded", 90*time.Second)

	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("not a gRPC status error")
	}
	if st.Code() != codes.ResourceExhausted {
		t.Errorf("code = %v, want ResourceExhausted", st.Code())
	}
	if !strings.Contains(st.Message(), "90s") {
		t.Errorf("message = %q, want the retry hint", st.Message())
	}
}
