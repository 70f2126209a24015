package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cookify/receipt-ocr-service/constants"
	"github.com/cookify/receipt-ocr-service/gen/ent"
	"github.com/cookify/receipt-ocr-service/internal/pipeline"
)

// ScanJobRepository persists the lifecycle of each receipt scan.
type ScanJobRepository interface {
	pipeline.ScanRecorder
}

type scanJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewScanJobRepository(client *ent.Client, logger *slog.Logger) ScanJobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &scanJobRepository{client: client, logger: logger}
}

// StartScan records a RUNNING scan job. Only the short content-hash prefix
// is stored, never image bytes.
func (r *scanJobRepository) StartScan(ctx context.Context, hashPrefix string, byteSize int) (uuid.UUID, error) {
	job, err := r.client.ScanJob.Create().
		SetContentHashPrefix(hashPrefix).
		SetByteSize(byteSize).
		SetStatus(string(constants.ScanStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start scan job", "hash_prefix", hashPrefix, "error", err)
		return uuid.Nil, err
	}
	return job.ID, nil
}

// FinishScan writes the terminal outcome onto an existing scan job.
func (r *scanJobRepository) FinishScan(ctx context.Context, id uuid.UUID, outcome pipeline.ScanOutcome) error {
	update := r.client.ScanJob.UpdateOneID(id).
		SetStatus(string(outcome.Status)).
		SetDurationMs(outcome.Duration.Milliseconds()).
		SetFinishedAt(time.Now().UTC())

	if outcome.RawText != "" {
		update = update.SetRawText(outcome.RawText)
	}
	if outcome.Confidence > 0 {
		update = update.SetConfidence(float32(outcome.Confidence))
	}
	if outcome.Status == constants.ScanStatusSucceeded {
		update = update.SetItemsDetected(outcome.ItemCount)
	}
	if outcome.ErrorMessage != "" {
		update = update.SetErrorMessage(outcome.ErrorMessage)
	}

	if err := update.Exec(ctx); err != nil {
		r.logger.Error("failed to finish scan job", "scan_id", id, "error", err)
		return err
	}
	return nil
}
