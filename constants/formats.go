package constants

import "strings"

// ImageFormat is the decoded image format as reported by the stdlib decoder.
type ImageFormat string

// Stable values (store these exact strings in DB).
const (
	JPEG ImageFormat = "JPEG"
	PNG  ImageFormat = "PNG"
	WEBP ImageFormat = "WEBP"
	BMP  ImageFormat = "BMP"
	TIFF ImageFormat = "TIFF"
)

// AllowedFormats is the allow-list of decoded formats accepted for OCR.
var AllowedFormats = []ImageFormat{JPEG, PNG, WEBP, BMP, TIFF}

// decoderNames maps image.Decode format names to canonical formats.
var decoderNames = map[string]ImageFormat{
	"jpeg": JPEG,
	"png":  PNG,
	"webp": WEBP,
	"bmp":  BMP,
	"tiff": TIFF,
}

// CanonicalFormat maps a stdlib decoder format name ("jpeg", "png", ...) to its
// canonical value. Returns "" for formats outside the allow-list.
func CanonicalFormat(decoderName string) ImageFormat {
	return decoderNames[strings.ToLower(decoderName)]
}

// AllowedMIMETypes are the sniffed content types accepted at the upload edge.
var AllowedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/bmp":  {},
	"image/tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
