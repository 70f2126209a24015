package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cookify/receipt-ocr-service/internal/common"
)

// Token is a single recognized word with its engine confidence (0–100).
type Token struct {
	Text       string
	Confidence float64
}

// Backend runs one recognition pass with one profile. Implementations are
// expected to be CPU-bound and blocking; the engine bounds each call with a
// per-attempt timeout.
type Backend interface {
	Recognize(ctx context.Context, image []byte, profile Profile) (text string, tokens []Token, err error)
}

// Result is the terminal outcome of a recognition call.
type Result struct {
	Text           string
	Confidence     float64 // 0–100, mean of tokens above the floor
	ProcessingTime time.Duration
}

// attempt is the tagged outcome of a single profile, success or failure.
type attempt struct {
	profile        string
	text           string
	meanConfidence float64
	tokenCount     int
	err            error
}

func (a attempt) failed() bool { return a.err != nil }

// Engine recognizes text by folding over an ordered profile list, keeping the
// best-scoring successful attempt.
type Engine struct {
	backend  Backend
	profiles []Profile
	floor    float64 // tokens at/below this confidence are excluded from the mean
	timeout  time.Duration
	logger   *slog.Logger
}

func NewEngine(backend Backend, cfg common.OCRConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.ProfileTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Engine{
		backend:  backend,
		profiles: DefaultProfiles(),
		floor:    cfg.ConfidenceFloor,
		timeout:  timeout,
		logger:   logger,
	}
}

// Recognize extracts text from a preprocessed image. A per-profile failure is
// logged and skipped; low confidence is a valid result, never an error. Only
// when every profile and the last-resort simple profile raise does the call
// fail with ErrOCRProcessingFailed.
func (e *Engine) Recognize(ctx context.Context, image []byte) (Result, error) {
	start := time.Now()

	var best *attempt
	for _, p := range e.profiles {
		a := e.tryProfile(ctx, image, p)
		if a.failed() {
			e.logger.Warn("ocr profile failed, trying next", "profile", p.Name, "error", a.err)
			continue
		}
		e.logger.Debug("ocr profile attempt",
			"profile", p.Name, "confidence", a.meanConfidence, "tokens", a.tokenCount)
		// Strict improvement only: ties keep the higher-priority profile.
		if best == nil || a.meanConfidence > best.meanConfidence {
			best = &a
		}
	}

	if best == nil {
		// All configured profiles raised; one maximally permissive retry.
		a := e.tryProfile(ctx, image, SimpleProfile())
		if a.failed() {
			return Result{}, common.NewAppError("OCR_PROCESSING_FAILED",
				"all recognition profiles failed", common.ErrOCRProcessingFailed)
		}
		best = &a
	}

	elapsed := time.Since(start)
	e.logger.Info("ocr recognition complete",
		"profile", best.profile,
		"confidence", best.meanConfidence,
		"text_bytes", len(best.text),
		"duration_ms", elapsed.Milliseconds(),
	)
	return Result{
		Text:           Normalize(best.text),
		Confidence:     best.meanConfidence,
		ProcessingTime: elapsed,
	}, nil
}

// tryProfile runs one attempt bounded by the per-profile timeout. A timeout
// that fires is treated the same as a profile exception: the blocking call is
// abandoned and the fold continues.
func (e *Engine) tryProfile(parent context.Context, image []byte, p Profile) attempt {
	ctx, cancel := context.WithTimeout(parent, e.timeout)
	defer cancel()

	type outcome struct {
		text   string
		tokens []Token
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		text, tokens, err := e.backend.Recognize(ctx, image, p)
		ch <- outcome{text: text, tokens: tokens, err: err}
	}()

	select {
	case <-ctx.Done():
		return attempt{profile: p.Name, err: fmt.Errorf("profile %s: %w", p.Name, ctx.Err())}
	case out := <-ch:
		if out.err != nil {
			return attempt{profile: p.Name, err: fmt.Errorf("profile %s: %w", p.Name, out.err)}
		}
		mean, n := e.meanConfidence(out.tokens)
		return attempt{profile: p.Name, text: out.text, meanConfidence: mean, tokenCount: n}
	}
}

// meanConfidence averages token confidences strictly above the floor. Tokens
// at or below the floor are excluded from the average, not counted as zero.
func (e *Engine) meanConfidence(tokens []Token) (float64, int) {
	var sum float64
	var n int
	for _, t := range tokens {
		if t.Confidence > e.floor {
			sum += t.Confidence
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
