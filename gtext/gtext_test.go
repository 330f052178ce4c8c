package gtext

import (
	"os"
	"testing"
)

// testFontPath locates a TTF on the host system, skipping the test if
// none is available (mirrors the teacher text package's source_test.go).
func testFontPath(t *testing.T) string {
	t.Helper()
	candidates := []string{
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Verdana.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"testdata/test.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skip("no TTF font available on this system")
	return ""
}

func loadTestFont(t *testing.T) *Font {
	t.Helper()
	path := testFontPath(t)
	font, err := NewFontFromFile(path)
	if err != nil {
		t.Fatalf("NewFontFromFile: %v", err)
	}
	return font
}

func TestBuild_EmptyString(t *testing.T) {
	font := loadTestFont(t)
	defer font.Close()

	path, metrics, err := Build(font, "", DefaultOptions(24))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(path.Elements()) != 0 {
		t.Errorf("expected empty path for empty string, got %d elements", len(path.Elements()))
	}
	if metrics.Width != 0 || metrics.LineCount != 0 {
		t.Errorf("expected zero metrics for empty string, got %+v", metrics)
	}
}

func TestBuild_ProducesPath(t *testing.T) {
	font := loadTestFont(t)
	defer font.Close()

	path, metrics, err := Build(font, "Hi", DefaultOptions(32))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(path.Elements()) == 0 {
		t.Fatal("expected a non-empty path for non-empty text")
	}
	if metrics.LineCount != 1 {
		t.Errorf("LineCount = %d, want 1", metrics.LineCount)
	}
	if metrics.Width <= 0 {
		t.Errorf("Width = %v, want > 0", metrics.Width)
	}
}

func TestBuild_RejectsZeroSize(t *testing.T) {
	font := loadTestFont(t)
	defer font.Close()

	if _, _, err := Build(font, "x", Options{}); err == nil {
		t.Fatal("expected an error for a zero Size")
	}
}

func TestBuild_LetterSpacingWidensLine(t *testing.T) {
	font := loadTestFont(t)
	defer font.Close()

	base := DefaultOptions(24)
	_, plain, err := Build(font, "AAAA", base)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	spaced := base
	spaced.LetterSpacing = 10
	_, withSpacing, err := Build(font, "AAAA", spaced)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if withSpacing.Width <= plain.Width {
		t.Errorf("letter-spaced width %v should exceed plain width %v", withSpacing.Width, plain.Width)
	}
}

func TestClampItalicShear(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{0.5, 0.5},
		{10, 0.5},
	}
	for _, tt := range tests {
		if got := clampItalicShear(tt.in); got != tt.want {
			t.Errorf("clampItalicShear(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
