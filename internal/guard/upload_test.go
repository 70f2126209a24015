package guard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/cookify/receipt-ocr-service/internal/common"
	"github.com/cookify/receipt-ocr-service/internal/validate"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 50, 50))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestCheckUpload(t *testing.T) {
	g := NewUploadGuard(1<<20, validate.NewMagicSniffer(), nil)
	img := pngBytes(t)

	tests := []struct {
		name     string
		data     []byte
		declared string
		want     error // nil means accepted
	}{
		{"valid png, no declaration", img, "", nil},
		{"valid png, matching declaration", img, "image/png", nil},
		{"valid png, uppercase declaration", img, "IMAGE/PNG", nil},
		{"empty upload", nil, "image/png", common.ErrEmptyImage},
		{"oversized upload", make([]byte, (1<<20)+1), "", common.ErrImageTooLarge},
		{"declaration mismatch", img, "image/jpeg", common.ErrInvalidFileType},
		{"script payload", []byte("<script>alert(1)</script>"), "", common.ErrMaliciousContent},
		{"text declared as image", []byte("plain text body long enough to sniff properly"), "text/plain", common.ErrInvalidFileType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.CheckUpload(tc.data, tc.declared)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("CheckUpload rejected a valid upload: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want kind %v", err, tc.want)
			}
		})
	}
}
