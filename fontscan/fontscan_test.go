package fontscan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testFontPath returns a usable TTF on this system, or skips the test.
// TTC collections are not supported by the parser, so only TTF
// candidates are listed.
func testFontPath(t *testing.T) string {
	t.Helper()
	candidates := []string{
		"C:\\Windows\\Fonts\\arial.ttf",
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Verdana.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skip("no TTF font available on this system")
	return ""
}

func TestParseFileName(t *testing.T) {
	tests := []struct {
		name       string
		wantFamily string
		wantWeight string
	}{
		{"LiberationSans-Bold.ttf", "LiberationSans", "Bold"},
		{"LiberationSans-BoldItalic.ttf", "LiberationSans", "Bold Italic"},
		{"LiberationSans-Italic.ttf", "LiberationSans", "Italic"},
		{"LiberationSans-Regular.ttf", "LiberationSans", "Regular"},
		{"DejaVuSans.ttf", "DejaVuSans", "Regular"},
		{"Courier_New-bold.ttf", "Courier New", "Bold"},
		{"noto_sans.otf", "Noto Sans", "Regular"},
		{"Arial-It.ttf", "Arial", "Italic"},
		{"SomeFont-Lt.ttf", "SomeFont", "Light"},
		{"Mixed-Case-medium.TTF", "Mixed Case", "Medium"},
	}
	for _, tt := range tests {
		family, weight := parseFileName(tt.name)
		if family != tt.wantFamily || weight != tt.wantWeight {
			t.Errorf("parseFileName(%q) = %q/%q, want %q/%q",
				tt.name, family, weight, tt.wantFamily, tt.wantWeight)
		}
	}
}

func TestScanIndexesWithoutParsing(t *testing.T) {
	dir := t.TempDir()
	// Fake files: scanning only reads names, parsing happens at Face time.
	for _, name := range []string{
		"Card-Regular.ttf",
		"Card-Bold.ttf",
		"Other.otf",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	lib := Scan(dir)
	families := lib.Families()
	if len(families) != 2 || families[0] != "Card" || families[1] != "Other" {
		t.Fatalf("Families() = %v", families)
	}
	weights := lib.WeightsForFamily("Card")
	if len(weights) != 2 || weights[0] != "Bold" || weights[1] != "Regular" {
		t.Errorf("WeightsForFamily(Card) = %v", weights)
	}
}

func TestScanMissingDir(t *testing.T) {
	lib := Scan(filepath.Join(t.TempDir(), "nope"))
	if len(lib.Families()) != 0 {
		t.Errorf("Families() = %v, want none", lib.Families())
	}
}

func TestFaceUnknownFamily(t *testing.T) {
	lib := Scan(t.TempDir())
	_, err := lib.Face("Ghost", "Regular", 12)
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("Face error = %v, want ErrFontNotFound", err)
	}
}

func TestFaceRealFont(t *testing.T) {
	path := testFontPath(t)
	lib := Scan(filepath.Dir(path))
	family, _ := parseFileName(filepath.Base(path))

	face, err := lib.Face(family, "Regular", 14)
	if err != nil {
		t.Fatalf("Face(%q): %v", family, err)
	}
	if adv := face.Advance("Hello"); adv <= 0 {
		t.Errorf("Advance = %v, want positive", adv)
	}
	m := face.Metrics()
	if m.Ascent <= 0 || m.LineHeight() <= 0 {
		t.Errorf("metrics = %+v, want positive ascent and line height", m)
	}

	// A missing weight falls back rather than failing.
	if _, err := lib.Face(family, "Ultra Black", 14); err != nil {
		t.Errorf("weight fallback failed: %v", err)
	}
}

func TestAdd(t *testing.T) {
	path := testFontPath(t)
	lib := Scan(filepath.Join(t.TempDir(), "nope"))
	lib.Add("Test", "Regular", path)

	face, err := lib.Face("Test", "Bold", 12) // falls back to Regular
	if err != nil {
		t.Fatalf("Face after Add: %v", err)
	}
	if face.Advance("x") <= 0 {
		t.Error("face from added font measures nothing")
	}
}
