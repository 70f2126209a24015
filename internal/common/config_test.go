package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Image.MaxBytes != 10<<20 {
		t.Errorf("MaxBytes = %d, want 10MB", cfg.Image.MaxBytes)
	}
	if cfg.Image.MinWidth != 100 || cfg.Image.MaxWidth != 8000 {
		t.Errorf("width bounds = %d..%d", cfg.Image.MinWidth, cfg.Image.MaxWidth)
	}
	if cfg.OCR.ConfidenceFloor != 30 {
		t.Errorf("ConfidenceFloor = %v", cfg.OCR.ConfidenceFloor)
	}
	if cfg.OCR.Workers <= 0 {
		t.Errorf("Workers = %d, want positive default", cfg.OCR.Workers)
	}
	if cfg.RateLimit.Window != time.Minute || cfg.RateLimit.MaxRequests != 10 {
		t.Errorf("rate limit defaults = %v/%d", cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	}
	if cfg.Match.PriceMin != 0.01 || cfg.Match.PriceMax != 999.99 {
		t.Errorf("price bounds = %v..%v", cfg.Match.PriceMin, cfg.Match.PriceMax)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("IMAGE_MAX_BYTES", "1048576")
	t.Setenv("OCR_CONFIDENCE_FLOOR", "45.5")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("OCR_PROFILE_TIMEOUT", "bogus") // unparsable falls back to default

	cfg := LoadConfig()
	if cfg.Image.MaxBytes != 1048576 {
		t.Errorf("MaxBytes = %d", cfg.Image.MaxBytes)
	}
	if cfg.OCR.ConfidenceFloor != 45.5 {
		t.Errorf("ConfidenceFloor = %v", cfg.OCR.ConfidenceFloor)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("Window = %v", cfg.RateLimit.Window)
	}
	if cfg.OCR.ProfileTimeout != 30*time.Second {
		t.Errorf("ProfileTimeout = %v, want the default on a bad value", cfg.OCR.ProfileTimeout)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := LoadConfig()
	if err := valid.Validate(); err != nil {
		t.Errorf("default configuration invalid: %v", err)
	}

	bad := LoadConfig()
	bad.Image.MaxBytes = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero MaxBytes accepted")
	}

	bad = LoadConfig()
	bad.Image.MaxWidth = 50 // below MinWidth
	if err := bad.Validate(); err == nil {
		t.Error("inverted width bounds accepted")
	}

	bad = LoadConfig()
	bad.Match.PriceMax = bad.Match.PriceMin
	if err := bad.Validate(); err == nil {
		t.Error("degenerate price range accepted")
	}
}
