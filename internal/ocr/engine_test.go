package ocr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cookify/receipt-ocr-service/internal/common"
)

// stubBackend scripts one outcome per profile name. Unscripted profiles fail.
type stubBackend struct {
	outcomes map[string]stubOutcome
	calls    []string
	delay    time.Duration
}

type stubOutcome struct {
	text   string
	tokens []Token
	err    error
}

func (s *stubBackend) Recognize(ctx context.Context, _ []byte, p Profile) (string, []Token, error) {
	s.calls = append(s.calls, p.Name)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", nil, ctx.Err()
		}
	}
	out, ok := s.outcomes[p.Name]
	if !ok {
		return "", nil, errors.New("profile not scripted")
	}
	return out.text, out.tokens, out.err
}

func testEngine(backend Backend) *Engine {
	return NewEngine(backend, common.OCRConfig{
		ConfidenceFloor: 30,
		ProfileTimeout:  time.Second,
	}, nil)
}

func tokens(confs ...float64) []Token {
	out := make([]Token, len(confs))
	for i, c := range confs {
		out[i] = Token{Text: "w", Confidence: c}
	}
	return out
}

func TestRecognizeKeepsBestAttempt(t *testing.T) {
	backend := &stubBackend{outcomes: map[string]stubOutcome{
		"receipt_tuned":   {text: "low", tokens: tokens(40, 50)},
		"fallback_psm_4":  {text: "high", tokens: tokens(90, 92)},
		"fallback_psm_11": {text: "mid", tokens: tokens(70)},
		"engine_default":  {text: "also low", tokens: tokens(35)},
	}}

	res, err := testEngine(backend).Recognize(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Text != "high" {
		t.Errorf("text = %q, want best-scoring profile output", res.Text)
	}
	if res.Confidence != 91 {
		t.Errorf("confidence = %v, want 91", res.Confidence)
	}
	if len(backend.calls) != 4 {
		t.Errorf("profiles tried = %v, want all four", backend.calls)
	}
}

func TestRecognizeTieKeepsEarlierProfile(t *testing.T) {
	backend := &stubBackend{outcomes: map[string]stubOutcome{
		"receipt_tuned":   {text: "first", tokens: tokens(80)},
		"fallback_psm_4":  {text: "second", tokens: tokens(80)},
		"fallback_psm_11": {text: "third", tokens: tokens(80)},
		"engine_default":  {text: "fourth", tokens: tokens(80)},
	}}

	res, err := testEngine(backend).Recognize(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Text != "first" {
		t.Errorf("text = %q, want the higher-priority profile on a tie", res.Text)
	}
}

func TestRecognizeConfidenceFloor(t *testing.T) {
	// Tokens at or below the floor are excluded from the mean, not zeroed.
	backend := &stubBackend{outcomes: map[string]stubOutcome{
		"receipt_tuned":   {text: "txt", tokens: tokens(10, 30, 80, 90)},
		"fallback_psm_4":  {err: errors.New("boom")},
		"fallback_psm_11": {err: errors.New("boom")},
		"engine_default":  {err: errors.New("boom")},
	}}

	res, err := testEngine(backend).Recognize(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Confidence != 85 {
		t.Errorf("confidence = %v, want 85 (mean of 80 and 90 only)", res.Confidence)
	}
}

func TestRecognizeLowConfidenceIsNotAnError(t *testing.T) {
	backend := &stubBackend{outcomes: map[string]stubOutcome{
		"receipt_tuned":   {text: "garbled", tokens: tokens(5, 12)},
		"fallback_psm_4":  {err: errors.New("boom")},
		"fallback_psm_11": {err: errors.New("boom")},
		"engine_default":  {err: errors.New("boom")},
	}}

	res, err := testEngine(backend).Recognize(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 when every token sits below the floor", res.Confidence)
	}
	if res.Text != "garbled" {
		t.Errorf("text = %q, want the recognized text regardless of confidence", res.Text)
	}
}

func TestRecognizeFallsBackToSimpleProfile(t *testing.T) {
	backend := &stubBackend{outcomes: map[string]stubOutcome{
		"simple": {text: "rescued", tokens: tokens(60)},
	}}

	res, err := testEngine(backend).Recognize(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Text != "rescued" {
		t.Errorf("text = %q, want the simple-profile output", res.Text)
	}
	if got := backend.calls[len(backend.calls)-1]; got != "simple" {
		t.Errorf("last profile tried = %q, want simple", got)
	}
}

func TestRecognizeAllProfilesFail(t *testing.T) {
	backend := &stubBackend{outcomes: map[string]stubOutcome{}}

	_, err := testEngine(backend).Recognize(context.Background(), []byte("img"))
	if !errors.Is(err, common.ErrOCRProcessingFailed) {
		t.Errorf("error = %v, want kind %v", err, common.ErrOCRProcessingFailed)
	}
}

func TestRecognizeProfileTimeout(t *testing.T) {
	// Every profile stalls past the per-attempt timeout; the engine must fail
	// with the processing-failed kind rather than hang.
	backend := &stubBackend{
		delay:    200 * time.Millisecond,
		outcomes: map[string]stubOutcome{"receipt_tuned": {text: "late", tokens: tokens(99)}},
	}
	engine := NewEngine(backend, common.OCRConfig{
		ConfidenceFloor: 30,
		ProfileTimeout:  20 * time.Millisecond,
	}, nil)

	start := time.Now()
	_, err := engine.Recognize(context.Background(), []byte("img"))
	if !errors.Is(err, common.ErrOCRProcessingFailed) {
		t.Errorf("error = %v, want kind %v", err, common.ErrOCRProcessingFailed)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("recognition took %v, per-profile timeout not enforced", elapsed)
	}
}

func TestNormalize(t *testing.T) {
	in := "WALMART\r\n\r\n\r\n\r\nMilk\t\t$2.49\n------------\nBread   $1.99\n\n"
	want := "WALMART\n\nMilk $2.49\n\nBread $1.99"
	if got := Normalize(in); got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
