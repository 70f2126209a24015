package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/cookify/receipt-ocr-service/constants"
	"github.com/cookify/receipt-ocr-service/internal/async"
	"github.com/cookify/receipt-ocr-service/internal/extract"
	"github.com/cookify/receipt-ocr-service/internal/match"
	"github.com/cookify/receipt-ocr-service/internal/ocr"
	"github.com/cookify/receipt-ocr-service/internal/parsefields"
	"github.com/cookify/receipt-ocr-service/internal/preprocess"
	"github.com/cookify/receipt-ocr-service/internal/securetmp"
	"github.com/cookify/receipt-ocr-service/internal/validate"
)

// Recognizer is the OCR stage; *ocr.Engine in production, a stub in tests.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (ocr.Result, error)
}

// ScanOutcome is the terminal state persisted for one scan job.
type ScanOutcome struct {
	Status       constants.ScanStatus
	RawText      string
	Confidence   float64
	ItemCount    int
	Duration     time.Duration
	ErrorMessage string
}

// ScanRecorder persists scan-job lifecycle rows. A nil recorder disables
// persistence; the pipeline itself runs database-free.
type ScanRecorder interface {
	StartScan(ctx context.Context, hashPrefix string, byteSize int) (uuid.UUID, error)
	FinishScan(ctx context.Context, id uuid.UUID, outcome ScanOutcome) error
}

// Processor runs the full ingestion pipeline:
// validate → stage → preprocess → recognize → extract → parse → match.
// Phases are strictly sequential within a request.
type Processor struct {
	validator *validate.Validator
	tmp       *securetmp.Manager
	pre       *preprocess.Preprocessor
	engine    Recognizer
	extractor *extract.Extractor
	parser    *parsefields.Parser
	matcher   *match.Matcher
	pool      *async.Pool
	scans     ScanRecorder
	logger    *slog.Logger
}

func NewProcessor(
	validator *validate.Validator,
	tmp *securetmp.Manager,
	pre *preprocess.Preprocessor,
	engine Recognizer,
	extractor *extract.Extractor,
	parser *parsefields.Parser,
	matcher *match.Matcher,
	pool *async.Pool,
	scans ScanRecorder,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		validator: validator,
		tmp:       tmp,
		pre:       pre,
		engine:    engine,
		extractor: extractor,
		parser:    parser,
		matcher:   matcher,
		pool:      pool,
		scans:     scans,
		logger:    logger,
	}
}

// ExtractText validates, stages and preprocesses the image, then runs
// recognition. Low confidence is a valid result; only validation failures and
// total recognition exhaustion return errors.
func (p *Processor) ExtractText(ctx context.Context, image []byte) (TextResult, error) {
	start := time.Now()
	res, err := p.recognize(ctx, image)
	if err != nil {
		return TextResult{}, err
	}
	return TextResult{
		Text:             res.Text,
		Confidence:       res.Confidence,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// ProcessReceipt runs the whole pipeline and aggregates detected items with
// ranked ingredient suggestions. Zero detected items is a valid outcome.
func (p *Processor) ProcessReceipt(ctx context.Context, image []byte) (Result, error) {
	start := time.Now()

	scanID, recording := p.startScan(ctx, image)

	res, err := p.recognize(ctx, image)
	if err != nil {
		p.finishScan(ctx, scanID, recording, ScanOutcome{
			Status:       constants.ScanStatusFailed,
			Duration:     time.Since(start),
			ErrorMessage: err.Error(),
		})
		return Result{}, err
	}

	items := p.buildItems(ctx, res.Text)
	out := Result{
		RawText:            res.Text,
		Items:              items,
		ProcessingTimeMs:   time.Since(start).Milliseconds(),
		TotalItemsDetected: len(items),
	}

	p.finishScan(ctx, scanID, recording, ScanOutcome{
		Status:     constants.ScanStatusSucceeded,
		RawText:    res.Text,
		Confidence: res.Confidence,
		ItemCount:  len(items),
		Duration:   time.Since(start),
	})
	p.logger.Info("receipt processed",
		"items", len(items),
		"confidence", res.Confidence,
		"duration_ms", out.ProcessingTimeMs,
	)
	return out, nil
}

// recognize covers the shared front half: validate → stage → preprocess →
// recognize. The staged temp file is wiped on every exit path.
func (p *Processor) recognize(ctx context.Context, image []byte) (ocr.Result, error) {
	if _, err := p.validator.Validate(image); err != nil {
		return ocr.Result{}, err
	}

	handle, err := p.tmp.Stage(image)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("stage image: %w", err)
	}
	defer handle.Release()

	// Enhancement and recognition are CPU-bound; both run on the bounded
	// pool so request-serving goroutines stay responsive.
	var prepared []byte
	if err := p.pool.Do(ctx, "preprocess", func() error {
		img, err := imaging.Open(handle.Path())
		if err != nil {
			return fmt.Errorf("decode staged image: %w", err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, p.pre.Enhance(img)); err != nil {
			return fmt.Errorf("encode preprocessed image: %w", err)
		}
		prepared = buf.Bytes()
		return nil
	}); err != nil {
		return ocr.Result{}, err
	}

	var res ocr.Result
	if err := p.pool.Do(ctx, "recognize", func() error {
		var err error
		res, err = p.engine.Recognize(ctx, prepared)
		return err
	}); err != nil {
		return ocr.Result{}, err
	}
	return res, nil
}

// buildItems splits raw text into candidates and attaches parsed fields and
// ranked suggestions. Lines are independent after extraction.
func (p *Processor) buildItems(ctx context.Context, rawText string) []ReceiptItem {
	candidates := p.extractor.Extract(rawText)
	items := make([]ReceiptItem, 0, len(candidates))
	for _, c := range candidates {
		fields := p.parser.Parse(c.Line)
		items = append(items, ReceiptItem{
			DetectedText: c.Name,
			Quantity:     fields.Quantity,
			Unit:         fields.Unit,
			Price:        fields.Price,
			Suggestions:  p.matcher.Suggest(ctx, c.Name),
		})
	}
	return items
}

func (p *Processor) startScan(ctx context.Context, image []byte) (uuid.UUID, bool) {
	if p.scans == nil {
		return uuid.Nil, false
	}
	handlePrefix := securetmp.HashPrefix(image)
	id, err := p.scans.StartScan(ctx, handlePrefix, len(image))
	if err != nil {
		p.logger.Warn("scan job start failed, continuing without persistence", "error", err)
		return uuid.Nil, false
	}
	return id, true
}

func (p *Processor) finishScan(ctx context.Context, id uuid.UUID, recording bool, outcome ScanOutcome) {
	if !recording {
		return
	}
	if err := p.scans.FinishScan(ctx, id, outcome); err != nil {
		p.logger.Warn("scan job finish failed", "scan_id", id, "error", err)
	}
}
