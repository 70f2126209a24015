package preprocess

import (
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
)

// Preprocessor normalizes receipt photos before recognition. The chain is
// deterministic: the same input pixels always produce the same output pixels.
type Preprocessor struct {
	minDimension int // upscale when either axis is below this
	logger       *slog.Logger
}

func NewPreprocessor(minDimension int, logger *slog.Logger) *Preprocessor {
	if minDimension <= 0 {
		minDimension = 1000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Preprocessor{minDimension: minDimension, logger: logger}
}

// Enhance applies the OCR-tuned transformation chain:
// grayscale → contrast boost → mild sharpen → light blur for noise →
// unsharp pass → conditional upscale. Never fails: an internal panic falls
// back to a plain grayscale copy of the original.
func (p *Preprocessor) Enhance(src image.Image) (out *image.NRGBA) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("preprocessing failed, using grayscale fallback", "panic", r)
			out = imaging.Grayscale(src)
		}
	}()

	// Clone to a canonical NRGBA buffer so later steps never mutate the input.
	img := imaging.Clone(src)
	img = imaging.Grayscale(img)

	// Contrast multiplier tuned on thermal-paper receipts.
	img = imaging.AdjustContrast(img, 50)
	img = imaging.Sharpen(img, 1.0)

	// Light blur knocks out salt-and-pepper noise the sharpen pass amplified.
	img = imaging.Blur(img, 0.5)

	// Unsharp-style second pass restores edge definition after the blur.
	img = imaging.Sharpen(img, 1.5)

	img = p.upscale(img)
	return img
}

// upscale enlarges small captures so glyphs reach a size Tesseract resolves
// reliably. Both axes scale by the same factor, preserving aspect ratio.
func (p *Preprocessor) upscale(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || (w >= p.minDimension && h >= p.minDimension) {
		return img
	}

	factor := float64(p.minDimension) / float64(w)
	if fh := float64(p.minDimension) / float64(h); fh > factor {
		factor = fh
	}
	newW := int(float64(w) * factor)
	newH := int(float64(h) * factor)

	p.logger.Debug("upscaling for ocr", "from_w", w, "from_h", h, "to_w", newW, "to_h", newH)
	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}
