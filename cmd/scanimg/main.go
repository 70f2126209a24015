package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/cookify/receipt-ocr-service/internal/async"
	"github.com/cookify/receipt-ocr-service/internal/common"
	"github.com/cookify/receipt-ocr-service/internal/export"
	"github.com/cookify/receipt-ocr-service/internal/extract"
	"github.com/cookify/receipt-ocr-service/internal/match"
	"github.com/cookify/receipt-ocr-service/internal/ocr"
	"github.com/cookify/receipt-ocr-service/internal/parsefields"
	"github.com/cookify/receipt-ocr-service/internal/pipeline"
	"github.com/cookify/receipt-ocr-service/internal/preprocess"
	"github.com/cookify/receipt-ocr-service/internal/securetmp"
	"github.com/cookify/receipt-ocr-service/internal/validate"
)

// scanimg runs the full receipt pipeline against a single image file without
// a database: no scan job rows, suggestions come from built-in names only.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	textOnly := flag.Bool("text", false, "extract raw text only, skip item parsing")
	xlsxPath := flag.String("xlsx", "", "also write detected items to an XLSX workbook at this path")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "scanimg [-text] [-xlsx out.xlsx] <image-file>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("read image", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	backend := ocr.NewTesseractBackend(cfg.OCR.Language, cfg.OCR.TessdataDir)
	if err := backend.Probe(); err != nil {
		logger.Error("ocr engine unavailable", "error", err)
		os.Exit(1)
	}

	validator := validate.NewValidator(cfg.Image, validate.NewMagicSniffer(), logger)
	tmp := securetmp.NewManager(cfg.OCR.TempDir, logger)
	pre := preprocess.NewPreprocessor(cfg.OCR.MinDimension, logger)
	engine := ocr.NewEngine(backend, cfg.OCR, logger)
	extractor := extract.NewExtractor(extract.MustLoadTables(), nil, logger)
	parser := parsefields.NewParser(parsefields.Config{
		PriceMin: cfg.Match.PriceMin,
		PriceMax: cfg.Match.PriceMax,
	})
	matcher := match.NewMatcher(nil, nil, cfg.Match, logger)
	pool := async.NewPool(cfg.OCR.Workers, logger)

	processor := pipeline.NewProcessor(
		validator, tmp, pre, engine, extractor, parser, matcher, pool, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if *textOnly {
		res, err := processor.ExtractText(ctx, data)
		if err != nil {
			logger.Error("text extraction failed", "error", err)
			os.Exit(1)
		}
		if err := enc.Encode(res); err != nil {
			logger.Error("encode result", "error", err)
			os.Exit(1)
		}
		return
	}

	res, err := processor.ProcessReceipt(ctx, data)
	if err != nil {
		logger.Error("receipt processing failed", "error", err)
		os.Exit(1)
	}
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}

	if *xlsxPath != "" {
		book, err := export.NewService(logger).ItemsXLSX(res)
		if err != nil {
			logger.Error("export workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, book, 0o644); err != nil {
			logger.Error("write workbook", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "path", *xlsxPath, "items", len(res.Items))
	}
}
