package validate

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/cookify/receipt-ocr-service/constants"
	"github.com/cookify/receipt-ocr-service/internal/common"
)

func testConfig() common.ImageConfig {
	return common.ImageConfig{
		MaxBytes:  1 << 20,
		MinWidth:  100,
		MaxWidth:  8000,
		MinHeight: 100,
		MaxHeight: 8000,
	}
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestValidateAcceptsPNG(t *testing.T) {
	v := NewValidator(testConfig(), NewMagicSniffer(), nil)

	res, err := v.Validate(pngImage(t, 200, 300))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.Width != 200 || res.Height != 300 {
		t.Errorf("dimensions = %dx%d, want 200x300", res.Width, res.Height)
	}
	if res.Format != constants.PNG {
		t.Errorf("format = %q, want %q", res.Format, constants.PNG)
	}
}

func TestValidateRejections(t *testing.T) {
	v := NewValidator(testConfig(), NewMagicSniffer(), nil)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty payload", nil, common.ErrEmptyImage},
		{"oversized payload", make([]byte, (1<<20)+1), common.ErrImageTooLarge},
		{"script in payload", []byte("GIF89a <script>alert(1)</script>"), common.ErrMaliciousContent},
		{"php in payload", []byte("\x89PNG\r\n\x1a\n<?php system($_GET['c']); ?>"), common.ErrMaliciousContent},
		{"not an image", []byte("hello, this is plain text and long enough to sniff"), common.ErrInvalidFileType},
		{"below minimum dimensions", pngImage(t, 50, 50), common.ErrImageTooSmall},
		{"above maximum dimensions", pngImage(t, 9000, 200), common.ErrImageTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.data)
			if err == nil {
				t.Fatal("Validate accepted the payload")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want kind %v", err, tc.want)
			}
			if !common.IsValidationError(err) {
				t.Errorf("error %v not classified as a validation error", err)
			}
		})
	}
}

func TestValidateTruncatedHeader(t *testing.T) {
	v := NewValidator(testConfig(), nil, nil)

	// A valid PNG signature with no data behind it must fail cleanly.
	data := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	_, err := v.Validate(data)
	if !errors.Is(err, common.ErrImageValidation) {
		t.Errorf("error = %v, want kind %v", err, common.ErrImageValidation)
	}
}

func TestScanSuspicious(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"clean", "just pixel data here", false},
		{"php tag", "xx<?php echo 1 ?>", true},
		{"eval call", "payload EVAL(atob(x))", true},
		{"js scheme", "href=javascript:alert(1)", true},
		{"base64 decode", "x=base64_decode(y)", true},
	}
	for _, tc := range tests {
		_, found := ScanSuspicious([]byte(tc.data))
		if found != tc.want {
			t.Errorf("%s: ScanSuspicious = %v, want %v", tc.name, found, tc.want)
		}
	}
}
