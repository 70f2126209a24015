package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/cookify/receipt-ocr-service/internal/common"
)

// TesseractBackend recognizes text with an in-process Tesseract client.
// A fresh client is created per attempt; gosseract clients are not safe for
// concurrent reuse.
type TesseractBackend struct {
	language    string
	tessdataDir string
}

func NewTesseractBackend(language, tessdataDir string) *TesseractBackend {
	if language == "" {
		language = "eng"
	}
	return &TesseractBackend{language: language, tessdataDir: tessdataDir}
}

// Probe resolves Tesseract availability once at startup. Construction after a
// successful probe is expected to work; a failed probe surfaces as the
// service-unavailable error kind.
func (t *TesseractBackend) Probe() error {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()
	if t.tessdataDir != "" {
		if err := client.SetTessdataPrefix(t.tessdataDir); err != nil {
			return common.NewAppError("OCR_UNAVAILABLE", "tessdata directory not usable", common.ErrOCRUnavailable)
		}
	}
	if err := client.SetLanguage(t.language); err != nil {
		return common.NewAppError("OCR_UNAVAILABLE",
			fmt.Sprintf("language %q not available", t.language), common.ErrOCRUnavailable)
	}
	return nil
}

// Recognize runs one pass with the given profile, returning the full text and
// word-level tokens with confidences.
func (t *TesseractBackend) Recognize(ctx context.Context, image []byte, profile Profile) (string, []Token, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if t.tessdataDir != "" {
		if err := client.SetTessdataPrefix(t.tessdataDir); err != nil {
			return "", nil, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(t.language); err != nil {
		return "", nil, fmt.Errorf("set language: %w", err)
	}
	if profile.PSM > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(profile.PSM)); err != nil {
			return "", nil, fmt.Errorf("set psm %d: %w", profile.PSM, err)
		}
	}
	if profile.Whitelist != "" {
		if err := client.SetWhitelist(profile.Whitelist); err != nil {
			return "", nil, fmt.Errorf("set whitelist: %w", err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", nil, fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", nil, fmt.Errorf("recognize text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Text without confidences is still a valid low-confidence result.
		return text, nil, nil
	}

	tokens := make([]Token, 0, len(boxes))
	for _, b := range boxes {
		tokens = append(tokens, Token{Text: b.Word, Confidence: b.Confidence})
	}
	return text, tokens, nil
}
