package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ocrv1 "github.com/cookify/receipt-ocr-service/gen/proto/ocr/v1"
	"github.com/cookify/receipt-ocr-service/internal/async"
	"github.com/cookify/receipt-ocr-service/internal/common"
	"github.com/cookify/receipt-ocr-service/internal/extract"
	"github.com/cookify/receipt-ocr-service/internal/guard"
	"github.com/cookify/receipt-ocr-service/internal/match"
	"github.com/cookify/receipt-ocr-service/internal/ocr"
	"github.com/cookify/receipt-ocr-service/internal/parsefields"
	"github.com/cookify/receipt-ocr-service/internal/pipeline"
	"github.com/cookify/receipt-ocr-service/internal/preprocess"
	repo "github.com/cookify/receipt-ocr-service/internal/repository"
	"github.com/cookify/receipt-ocr-service/internal/securetmp"
	svc "github.com/cookify/receipt-ocr-service/internal/server"
	"github.com/cookify/receipt-ocr-service/internal/validate"
)

func main() {
	// Optional local .env; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Fail fast if the OCR engine cannot run at all.
	backend := ocr.NewTesseractBackend(cfg.OCR.Language, cfg.OCR.TessdataDir)
	if err := backend.Probe(); err != nil {
		logger.Error("ocr engine unavailable", "error", err)
		os.Exit(1)
	}

	ingredients := repo.NewIngredientRepository(entc, logger)
	scans := repo.NewScanJobRepository(entc, logger)

	nameCache := match.NewNameCache(ingredients, cfg.Match.NameRefreshInterval, logger)
	if err := nameCache.Refresh(ctx); err != nil {
		logger.Warn("initial ingredient name load failed, matching starts from search only", "error", err)
	}
	go nameCache.Run(ctx)

	validator := validate.NewValidator(cfg.Image, validate.NewMagicSniffer(), logger)
	tmp := securetmp.NewManager(cfg.OCR.TempDir, logger)
	pre := preprocess.NewPreprocessor(cfg.OCR.MinDimension, logger)
	engine := ocr.NewEngine(backend, cfg.OCR, logger)
	extractor := extract.NewExtractor(extract.MustLoadTables(), nameCache, logger)
	parser := parsefields.NewParser(parsefields.Config{
		PriceMin: cfg.Match.PriceMin,
		PriceMax: cfg.Match.PriceMax,
	})
	matcher := match.NewMatcher(ingredients, nameCache, cfg.Match, logger)
	pool2 := async.NewPool(cfg.OCR.Workers, logger)

	processor := pipeline.NewProcessor(
		validator, tmp, pre, engine, extractor, parser, matcher, pool2, scans, logger)

	limiter := guard.NewLimiter(cfg.RateLimit, logger)
	uploads := guard.NewUploadGuard(cfg.Image.MaxBytes, validate.NewMagicSniffer(), logger)

	grpcServer := grpc.NewServer()
	ocrv1.RegisterOCRServiceServer(grpcServer, svc.NewOCRService(processor, limiter, uploads, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("ocrd listening", "addr", cfg.Server.GRPCAddr, "ocr_workers", cfg.OCR.Workers)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
