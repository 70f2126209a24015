package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cookify/receipt-ocr-service/constants"
	"github.com/cookify/receipt-ocr-service/internal/async"
	"github.com/cookify/receipt-ocr-service/internal/common"
	"github.com/cookify/receipt-ocr-service/internal/extract"
	"github.com/cookify/receipt-ocr-service/internal/match"
	"github.com/cookify/receipt-ocr-service/internal/ocr"
	"github.com/cookify/receipt-ocr-service/internal/parsefields"
	"github.com/cookify/receipt-ocr-service/internal/preprocess"
	"github.com/cookify/receipt-ocr-service/internal/securetmp"
	"github.com/cookify/receipt-ocr-service/internal/validate"
)

const stubReceiptText = `FRESH MART
Bananas (6 lbs) $3.98
Organic Spinach $2.99
SUBTOTAL $6.97
Thank you for shopping!`

// stubRecognizer replaces the OCR stage with scripted output.
type stubRecognizer struct {
	text       string
	confidence float64
	err        error
	calls      int
}

func (s *stubRecognizer) Recognize(context.Context, []byte) (ocr.Result, error) {
	s.calls++
	if s.err != nil {
		return ocr.Result{}, s.err
	}
	return ocr.Result{Text: s.text, Confidence: s.confidence, ProcessingTime: time.Millisecond}, nil
}

// memoryRecorder captures scan-job lifecycle calls.
type memoryRecorder struct {
	id       uuid.UUID
	started  int
	startErr error
	outcome  *ScanOutcome
}

func (m *memoryRecorder) StartScan(_ context.Context, hashPrefix string, byteSize int) (uuid.UUID, error) {
	m.started++
	if m.startErr != nil {
		return uuid.Nil, m.startErr
	}
	if hashPrefix == "" || byteSize == 0 {
		return uuid.Nil, errors.New("missing scan metadata")
	}
	m.id = uuid.New()
	return m.id, nil
}

func (m *memoryRecorder) FinishScan(_ context.Context, id uuid.UUID, outcome ScanOutcome) error {
	if id != m.id {
		return errors.New("unknown scan id")
	}
	m.outcome = &outcome
	return nil
}

func testImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 300, 400))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestProcessor(t *testing.T, rec Recognizer, scans ScanRecorder) (*Processor, string) {
	t.Helper()
	tmpDir := t.TempDir()

	imgCfg := common.ImageConfig{MaxBytes: 1 << 20, MinWidth: 100, MaxWidth: 8000, MinHeight: 100, MaxHeight: 8000}
	validator := validate.NewValidator(imgCfg, validate.NewMagicSniffer(), nil)
	tmp := securetmp.NewManager(tmpDir, nil)
	pre := preprocess.NewPreprocessor(200, nil)
	extractor := extract.NewExtractor(nil, nil, nil)
	parser := parsefields.NewParser(parsefields.Config{})
	matcher := match.NewMatcher(nil, nil, common.MatchConfig{}, nil)
	pool := async.NewPool(2, nil)

	return NewProcessor(validator, tmp, pre, rec, extractor, parser, matcher, pool, scans, nil), tmpDir
}

func assertTempDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir not empty after pipeline run: %d files", len(entries))
	}
}

func TestProcessReceipt(t *testing.T) {
	rec := &stubRecognizer{text: stubReceiptText, confidence: 87.5}
	scans := &memoryRecorder{}
	p, tmpDir := newTestProcessor(t, rec, scans)

	res, err := p.ProcessReceipt(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("ProcessReceipt: %v", err)
	}

	if res.RawText != stubReceiptText {
		t.Errorf("RawText not preserved")
	}
	if res.TotalItemsDetected != 2 || len(res.Items) != 2 {
		t.Fatalf("detected %d items %v, want 2", len(res.Items), res.Items)
	}

	bananas := res.Items[0]
	if bananas.DetectedText != "Bananas" {
		t.Errorf("item 0 = %q, want Bananas", bananas.DetectedText)
	}
	if bananas.Quantity == nil || *bananas.Quantity != 6 {
		t.Error("bananas quantity not parsed")
	}
	if bananas.Unit == nil || *bananas.Unit != "lb" {
		t.Error("bananas unit not parsed")
	}
	if bananas.Price == nil || *bananas.Price != 3.98 {
		t.Error("bananas price not parsed")
	}

	if spinach := res.Items[1]; spinach.DetectedText != "Organic Spinach" {
		t.Errorf("item 1 = %q, want Organic Spinach", spinach.DetectedText)
	}

	if scans.started != 1 || scans.outcome == nil {
		t.Fatal("scan job lifecycle not recorded")
	}
	if scans.outcome.Status != constants.ScanStatusSucceeded {
		t.Errorf("scan status = %q, want %q", scans.outcome.Status, constants.ScanStatusSucceeded)
	}
	if scans.outcome.ItemCount != 2 {
		t.Errorf("scan item count = %d, want 2", scans.outcome.ItemCount)
	}

	assertTempDirEmpty(t, tmpDir)
}

type bananaLister struct{}

func (bananaLister) ListIngredients(context.Context) ([]match.Entry, error) {
	return []match.Entry{
		{ID: uuid.New(), Name: "Banana"},
		{ID: uuid.New(), Name: "Spinach"},
	}, nil
}

func TestProcessReceiptSuggestsFromIngredientPool(t *testing.T) {
	rec := &stubRecognizer{text: "Bananas (6 lbs) $3.98\nSUBTOTAL $3.98", confidence: 90}

	tmpDir := t.TempDir()
	imgCfg := common.ImageConfig{MaxBytes: 1 << 20, MinWidth: 100, MaxWidth: 8000, MinHeight: 100, MaxHeight: 8000}
	cache := match.NewNameCache(bananaLister{}, time.Hour, nil)
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	matcher := match.NewMatcher(nil, cache, common.MatchConfig{SimilarityThreshold: 0.3, MaxSuggestions: 3}, nil)
	p := NewProcessor(
		validate.NewValidator(imgCfg, validate.NewMagicSniffer(), nil),
		securetmp.NewManager(tmpDir, nil),
		preprocess.NewPreprocessor(200, nil),
		rec,
		extract.NewExtractor(nil, cache, nil),
		parsefields.NewParser(parsefields.Config{}),
		matcher,
		async.NewPool(2, nil),
		nil, nil)

	res, err := p.ProcessReceipt(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("ProcessReceipt: %v", err)
	}
	if res.TotalItemsDetected != 1 {
		t.Fatalf("detected %d items %v, want 1", res.TotalItemsDetected, res.Items)
	}

	item := res.Items[0]
	if item.DetectedText != "Bananas" {
		t.Errorf("detected text = %q", item.DetectedText)
	}
	if item.Quantity == nil || *item.Quantity != 6 || item.Unit == nil || *item.Unit != "lb" || item.Price == nil || *item.Price != 3.98 {
		t.Errorf("fields not parsed: %+v", item)
	}
	found := false
	for _, s := range item.Suggestions {
		if s.IngredientName == "Banana" {
			found = true
		}
	}
	if !found {
		t.Errorf("no Banana suggestion in %v", item.Suggestions)
	}
	assertTempDirEmpty(t, tmpDir)
}

func TestProcessReceiptZeroItemsIsNotAnError(t *testing.T) {
	rec := &stubRecognizer{text: "TOTAL $0.00\nThank you for shopping!", confidence: 55}
	p, tmpDir := newTestProcessor(t, rec, nil)

	res, err := p.ProcessReceipt(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("ProcessReceipt: %v", err)
	}
	if len(res.Items) != 0 || res.TotalItemsDetected != 0 {
		t.Errorf("items = %v, want none", res.Items)
	}
	assertTempDirEmpty(t, tmpDir)
}

func TestProcessReceiptRecognitionFailure(t *testing.T) {
	rec := &stubRecognizer{err: common.NewAppError("OCR_PROCESSING_FAILED", "all profiles failed", common.ErrOCRProcessingFailed)}
	scans := &memoryRecorder{}
	p, tmpDir := newTestProcessor(t, rec, scans)

	_, err := p.ProcessReceipt(context.Background(), testImage(t))
	if !errors.Is(err, common.ErrOCRProcessingFailed) {
		t.Fatalf("error = %v, want kind %v", err, common.ErrOCRProcessingFailed)
	}

	if scans.outcome == nil || scans.outcome.Status != constants.ScanStatusFailed {
		t.Errorf("scan outcome = %+v, want FAILED", scans.outcome)
	}
	if scans.outcome != nil && scans.outcome.ErrorMessage == "" {
		t.Error("failure outcome missing the error message")
	}

	// The staged file must be wiped on the failure path too.
	assertTempDirEmpty(t, tmpDir)
}

func TestProcessReceiptValidationFailureSkipsRecognition(t *testing.T) {
	rec := &stubRecognizer{text: "unreachable"}
	p, tmpDir := newTestProcessor(t, rec, nil)

	_, err := p.ProcessReceipt(context.Background(), []byte("definitely not an image"))
	if err == nil {
		t.Fatal("invalid payload accepted")
	}
	if !common.IsValidationError(err) {
		t.Errorf("error = %v, want a validation kind", err)
	}
	if rec.calls != 0 {
		t.Errorf("recognizer ran %d times on an invalid payload", rec.calls)
	}
	assertTempDirEmpty(t, tmpDir)
}

func TestProcessReceiptContinuesWhenRecorderFails(t *testing.T) {
	rec := &stubRecognizer{text: stubReceiptText, confidence: 80}
	scans := &memoryRecorder{startErr: errors.New("db down")}
	p, tmpDir := newTestProcessor(t, rec, scans)

	res, err := p.ProcessReceipt(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("ProcessReceipt with failing recorder: %v", err)
	}
	if len(res.Items) == 0 {
		t.Error("no items despite successful recognition")
	}
	assertTempDirEmpty(t, tmpDir)
}

func TestExtractText(t *testing.T) {
	rec := &stubRecognizer{text: "WALMART\nMilk $2.49", confidence: 91.2}
	p, tmpDir := newTestProcessor(t, rec, nil)

	res, err := p.ExtractText(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if res.Text != "WALMART\nMilk $2.49" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Confidence != 91.2 {
		t.Errorf("confidence = %v, want 91.2", res.Confidence)
	}
	if res.ProcessingTimeMs < 0 {
		t.Errorf("processing time = %d", res.ProcessingTimeMs)
	}
	assertTempDirEmpty(t, tmpDir)
}
