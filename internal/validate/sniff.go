package validate

import (
	"bytes"
	"net/http"
	"strings"
)

// Sniffer reports the MIME type of a byte stream from its leading bytes.
// A nil Sniffer disables the check; validation never hard-fails on a missing
// sniffing capability.
type Sniffer interface {
	Sniff(data []byte) string
}

// MagicSniffer sniffs content types from magic bytes.
type MagicSniffer struct{}

func NewMagicSniffer() *MagicSniffer { return &MagicSniffer{} }

// Sniff inspects at most the first 512 bytes, which is all DetectContentType
// considers. Parameters like "; charset=..." are stripped.
func (*MagicSniffer) Sniff(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mime := http.DetectContentType(head)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

// suspiciousSignatures are ASCII payload markers that never belong in an image
// file. Matched case-insensitively anywhere in the byte stream as a cheap
// pre-filter before any decoding.
var suspiciousSignatures = [][]byte{
	[]byte("<?php"),
	[]byte("<script"),
	[]byte("<%"),
	[]byte("eval("),
	[]byte("exec("),
	[]byte("system("),
	[]byte("passthru("),
	[]byte("shell_exec("),
	[]byte("base64_decode("),
	[]byte("javascript:"),
}

// ScanSuspicious reports the first suspicious signature found in data.
func ScanSuspicious(data []byte) (string, bool) {
	lower := bytes.ToLower(data)
	for _, sig := range suspiciousSignatures {
		if bytes.Contains(lower, sig) {
			return string(sig), true
		}
	}
	return "", false
}
