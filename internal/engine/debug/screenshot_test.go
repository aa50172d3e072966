package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFramebufferImageFlipsRows(t *testing.T) {
	// 1x2 framebuffer: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FramebufferImage(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FramebufferImage() error = %v", err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue, got r=%d b=%d", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom pixel should be red, got r=%d b=%d", r, b)
	}
}

func TestFramebufferImageSizeMismatch(t *testing.T) {
	if _, err := FramebufferImage(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FramebufferImage(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "shell")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	name, err := sc.CaptureFromPixels(make([]byte, 2*2*4), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	want := filepath.Join(dir, "shell_2024-03-01_12-30-00.000.png")
	if name != want {
		t.Errorf("filename = %q, want %q", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("size = %dx%d, want 2x2", cfg.Width, cfg.Height)
	}
}
