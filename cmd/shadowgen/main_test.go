package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		in      string
		sep     string
		want    image.Point
		wantErr bool
	}{
		{"320x200", "x", image.Pt(320, 200), false},
		{"0, -6", ",", image.Pt(0, -6), false},
		{"320", "x", image.Point{}, true},
		{"ax2", "x", image.Point{}, true},
	}
	for _, tt := range tests {
		got, err := parsePair(tt.in, tt.sep)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePair(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errPair) {
			t.Errorf("parsePair(%q) error %v does not wrap errPair", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parsePair(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "shadow.png")
	args := []string{
		"-config", filepath.Join(dir, "missing.yaml"),
		"-box", "40x30", "-radius", "8", "-offset", "0,2", "-dpr", "2",
		"-output", out,
	}
	if err := run(args); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	// (40+16+0)x(30+16+2) logical, doubled.
	if cfg.Width != 112 || cfg.Height != 96 {
		t.Errorf("PNG size = %dx%d, want 112x96", cfg.Width, cfg.Height)
	}
}

func TestRunPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shadows.yaml")
	if err := os.WriteFile(path, []byte("shadows:\n  active:\n    size: small\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "active.png")
	if err := run([]string{"-config", path, "-preset", "active", "-box", "20x20", "-output", out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run([]string{"-config", path, "-preset", "nope", "-output", out}); err == nil {
		t.Error("run accepted an unknown preset")
	}
}

func TestRunRejectsBadColour(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"-config", filepath.Join(dir, "x.yaml"), "-color", "#12", "-output", filepath.Join(dir, "o.png")})
	if err == nil {
		t.Error("run accepted an invalid colour")
	}
}
