package guard

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cookify/receipt-ocr-service/constants"
	"github.com/cookify/receipt-ocr-service/internal/common"
	"github.com/cookify/receipt-ocr-service/internal/validate"
)

// UploadGuard performs edge checks on raw uploads before they reach the
// pipeline: size ceiling, declared-vs-sniffed MIME agreement, and the same
// suspicious-pattern scan the validator runs. Defense in depth; the deep
// validation still happens inside the pipeline.
type UploadGuard struct {
	maxBytes int64
	sniffer  validate.Sniffer
	logger   *slog.Logger
}

func NewUploadGuard(maxBytes int64, sniffer validate.Sniffer, logger *slog.Logger) *UploadGuard {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadGuard{maxBytes: maxBytes, sniffer: sniffer, logger: logger}
}

// CheckUpload rejects uploads that are oversized, mismatched with their
// declared content type, or carrying suspicious byte signatures.
// declaredMIME may be empty (no declaration to compare against).
func (g *UploadGuard) CheckUpload(data []byte, declaredMIME string) error {
	if len(data) == 0 {
		return common.NewAppError("EMPTY_IMAGE", "upload is empty", common.ErrEmptyImage)
	}
	if int64(len(data)) > g.maxBytes {
		g.logger.Warn("upload rejected at edge: oversized", "bytes", len(data), "max_bytes", g.maxBytes)
		return common.NewAppError("IMAGE_TOO_LARGE",
			fmt.Sprintf("upload is %d bytes, limit is %d", len(data), g.maxBytes),
			common.ErrImageTooLarge)
	}
	if sig, found := validate.ScanSuspicious(data); found {
		g.logger.Warn("upload rejected at edge: suspicious signature", "signature", sig)
		return common.NewAppError("MALICIOUS_CONTENT", "suspicious content in upload", common.ErrMaliciousContent)
	}
	if declaredMIME != "" && g.sniffer != nil {
		sniffed := g.sniffer.Sniff(data)
		if !strings.EqualFold(strings.TrimSpace(declaredMIME), sniffed) {
			g.logger.Warn("upload rejected at edge: declared type mismatch",
				"declared", declaredMIME, "sniffed", sniffed)
			return common.NewAppError("INVALID_FILE_TYPE",
				fmt.Sprintf("declared type %q does not match sniffed type %q", declaredMIME, sniffed),
				common.ErrInvalidFileType)
		}
		if _, ok := constants.AllowedMIMETypes[sniffed]; !ok {
			return common.NewAppError("INVALID_FILE_TYPE",
				fmt.Sprintf("sniffed type %q is not an accepted image type", sniffed),
				common.ErrInvalidFileType)
		}
	}
	return nil
}
