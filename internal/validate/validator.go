package validate

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"

	// Register decoders for every format on the allow-list.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cookify/receipt-ocr-service/constants"
	"github.com/cookify/receipt-ocr-service/internal/common"
)

// Result describes an accepted image. Produced only when validation passes.
type Result struct {
	Width  int
	Height int
	Format constants.ImageFormat
}

// Validator performs the full pre-OCR admission checks on raw image bytes.
// All checks run before any pixel data is decoded, except the final decode of
// the image header for format and dimensions.
type Validator struct {
	cfg     common.ImageConfig
	sniffer Sniffer // nil means the MIME sniff check is skipped
	logger  *slog.Logger
}

func NewValidator(cfg common.ImageConfig, sniffer Sniffer, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{cfg: cfg, sniffer: sniffer, logger: logger}
}

// Validate checks raw image bytes against size, content, format and dimension
// bounds. It is a pure check: no side effects, no retained references.
func (v *Validator) Validate(data []byte) (Result, error) {
	if len(data) == 0 {
		return Result{}, common.NewAppError("EMPTY_IMAGE", "image payload is empty", common.ErrEmptyImage)
	}
	if int64(len(data)) > v.cfg.MaxBytes {
		v.logger.Warn("image rejected: oversized", "bytes", len(data), "max_bytes", v.cfg.MaxBytes)
		return Result{}, common.NewAppError("IMAGE_TOO_LARGE",
			fmt.Sprintf("image is %d bytes, limit is %d", len(data), v.cfg.MaxBytes),
			common.ErrImageTooLarge)
	}

	if sig, found := ScanSuspicious(data); found {
		v.logger.Warn("image rejected: suspicious byte signature", "signature", sig)
		return Result{}, common.NewAppError("MALICIOUS_CONTENT", "suspicious content in image payload", common.ErrMaliciousContent)
	}

	if v.sniffer != nil {
		mime := v.sniffer.Sniff(data)
		if _, ok := constants.AllowedMIMETypes[mime]; !ok {
			v.logger.Warn("image rejected: sniffed type not an image", "mime", mime)
			return Result{}, common.NewAppError("INVALID_FILE_TYPE",
				fmt.Sprintf("sniffed content type %q is not an accepted image type", mime),
				common.ErrInvalidFileType)
		}
	}

	// Header-only decode: enough for format + dimensions, bounded memory.
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		v.logger.Warn("image rejected: undecodable", "error", err)
		return Result{}, common.NewAppError("IMAGE_VALIDATION_ERROR", "image could not be decoded", common.ErrImageValidation)
	}
	format := constants.CanonicalFormat(name)
	if format == "" {
		v.logger.Warn("image rejected: format outside allow-list", "format", name)
		return Result{}, common.NewAppError("UNSUPPORTED_FORMAT",
			fmt.Sprintf("format %q is not supported", name),
			common.ErrUnsupportedFormat)
	}

	if cfg.Width < v.cfg.MinWidth || cfg.Height < v.cfg.MinHeight {
		return Result{}, common.NewAppError("IMAGE_TOO_SMALL",
			fmt.Sprintf("image is %dx%d, minimum is %dx%d", cfg.Width, cfg.Height, v.cfg.MinWidth, v.cfg.MinHeight),
			common.ErrImageTooSmall)
	}
	if cfg.Width > v.cfg.MaxWidth || cfg.Height > v.cfg.MaxHeight {
		return Result{}, common.NewAppError("IMAGE_TOO_LARGE",
			fmt.Sprintf("image is %dx%d, maximum is %dx%d", cfg.Width, cfg.Height, v.cfg.MaxWidth, v.cfg.MaxHeight),
			common.ErrImageTooLarge)
	}

	return Result{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
