package securetmp

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Handle owns a staged temporary file. Exactly one Release must run per
// handle; callers defer it immediately after Stage so the wipe happens on
// every exit path, including cancellation.
type Handle struct {
	path       string
	size       int64
	hashPrefix string
	logger     *slog.Logger

	once sync.Once
}

// Path returns the staged file's location on disk.
func (h *Handle) Path() string { return h.path }

// HashPrefix returns the first bytes of the content's SHA-256, hex encoded.
// Safe to log; the full hash never is.
func (h *Handle) HashPrefix() string { return h.hashPrefix }

// Manager stages request payloads into owner-only temp files and guarantees
// secure deletion.
type Manager struct {
	dir    string // "" means the OS default temp dir
	logger *slog.Logger
}

func NewManager(dir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{dir: dir, logger: logger}
}

// HashPrefix returns the short hex prefix of data's SHA-256. This is the only
// form of the hash that ever reaches logs or storage.
func HashPrefix(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:6])
}

// Stage writes data to a uniquely-named file with 0600 permissions, fsyncs it,
// and returns a handle. The staged file exists only for the lifetime of the
// pipeline invocation that created it.
func (m *Manager) Stage(data []byte) (*Handle, error) {
	prefix := HashPrefix(data)

	f, err := os.CreateTemp(m.dir, "receipt-*.img")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()

	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("restrict temp file permissions: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	m.logger.Debug("staged temp file", "hash_prefix", prefix, "bytes", len(data))
	return &Handle{path: path, size: int64(len(data)), hashPrefix: prefix, logger: m.logger}, nil
}

// Release overwrites the file with zeros, then unlinks it. Idempotent and
// best-effort: a failed wipe is logged, never raised, and the unlink still
// runs. A file already gone is a no-op.
func (h *Handle) Release() {
	h.once.Do(func() {
		if _, err := os.Stat(h.path); os.IsNotExist(err) {
			return
		}
		if err := h.wipe(); err != nil {
			h.logger.Warn("secure wipe failed, removing anyway", "hash_prefix", h.hashPrefix, "error", err)
		}
		if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
			h.logger.Warn("temp file removal failed", "hash_prefix", h.hashPrefix, "error", err)
			return
		}
		h.logger.Debug("released temp file", "hash_prefix", h.hashPrefix)
	})
}

func (h *Handle) wipe() error {
	f, err := os.OpenFile(h.path, os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	zeros := make([]byte, 64<<10)
	var written int64
	for written < h.size {
		n := int64(len(zeros))
		if remaining := h.size - written; remaining < n {
			n = remaining
		}
		if _, err := f.Write(zeros[:n]); err != nil {
			return err
		}
		written += n
	}
	return f.Sync()
}
