// Package fontscan discovers TrueType/OpenType fonts on the local system
// and hands out sized faces for text rendering. Families and weights are
// derived from file names (the "Family-Weight.ttf" convention); files that
// fail to parse are skipped.
package fontscan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
)

// ErrFontNotFound reports a family with no discovered font file.
var ErrFontNotFound = errors.New("fontscan: font family not found")

// weightPatterns maps filename suffixes to canonical weight names. Order
// matters: the longest suffixes must match first.
var weightPatterns = []struct {
	re     *regexp.Regexp
	weight string
}{
	{regexp.MustCompile(`(?i)^(.*?)[-_ ](BoldItalic|BoldIt|BI)$`), "Bold Italic"},
	{regexp.MustCompile(`(?i)^(.*?)[-_ ](Italic|It)$`), "Italic"},
	{regexp.MustCompile(`(?i)^(.*?)[-_ ](Bold|Bd)$`), "Bold"},
	{regexp.MustCompile(`(?i)^(.*?)[-_ ](Medium|Md)$`), "Medium"},
	{regexp.MustCompile(`(?i)^(.*?)[-_ ](Light|Lt)$`), "Light"},
	{regexp.MustCompile(`(?i)^(.*?)[-_ ](Regular|Rg)$`), "Regular"},
}

// Library indexes discovered font files by family and weight, parsing
// each file at most once. Safe for concurrent Face lookups.
type Library struct {
	mu       sync.Mutex
	families map[string]map[string]string // family -> weight -> path
	sources  map[string]*text.FontSource  // path -> parsed source
}

// DefaultDirs returns the OS-specific system font directories.
func DefaultDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental",
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
	case "windows":
		if windir := os.Getenv("WINDIR"); windir != "" {
			return []string{filepath.Join(windir, "Fonts")}
		}
		return []string{`C:\Windows\Fonts`}
	default:
		home, _ := os.UserHomeDir()
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

// Scan walks the given directories (DefaultDirs when none are passed) and
// indexes every .ttf/.otf file found. Unreadable directories are skipped.
func Scan(dirs ...string) *Library {
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}
	lib := &Library{
		families: make(map[string]map[string]string),
		sources:  make(map[string]*text.FontSource),
	}
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" {
				return nil
			}
			family, weight := parseFileName(d.Name())
			byWeight, ok := lib.families[family]
			if !ok {
				byWeight = make(map[string]string)
				lib.families[family] = byWeight
			}
			if _, ok := byWeight[weight]; !ok {
				byWeight[weight] = path
			}
			return nil
		})
	}
	return lib
}

// Add registers a font file under an explicit family and weight,
// bypassing filename parsing. Later registrations do not replace an
// existing family/weight entry.
func (l *Library) Add(family, weight, path string) {
	byWeight, ok := l.families[family]
	if !ok {
		byWeight = make(map[string]string)
		l.families[family] = byWeight
	}
	if _, ok := byWeight[weight]; !ok {
		byWeight[weight] = path
	}
}

// parseFileName splits a filename like "LiberationSans-Bold.ttf" into its
// family ("LiberationSans") and weight ("Bold"). Separators inside the
// family part become spaces and lowercase words are title-cased, so
// "noto_sans.ttf" yields "Noto Sans" / "Regular".
func parseFileName(name string) (family, weight string) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	weight = "Regular"
	for _, p := range weightPatterns {
		if m := p.re.FindStringSubmatch(base); m != nil {
			base, weight = m[1], p.weight
			break
		}
	}
	family = strings.Trim(base, "-_ ")
	family = regexp.MustCompile(`[-_]`).ReplaceAllString(family, " ")
	return titleCase(family), weight
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 && w[0] >= 'a' && w[0] <= 'z' {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Families returns the discovered family names, sorted.
func (l *Library) Families() []string {
	names := make([]string, 0, len(l.families))
	for f := range l.families {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// WeightsForFamily returns the available weights of a family, sorted.
func (l *Library) WeightsForFamily(family string) []string {
	byWeight := l.families[family]
	weights := make([]string, 0, len(byWeight))
	for w := range byWeight {
		weights = append(weights, w)
	}
	sort.Strings(weights)
	return weights
}

// Face returns a sized face for the family and weight. A missing weight
// falls back to Regular, then to any weight of the family; a missing or
// unparsable family is an error.
func (l *Library) Face(family, weight string, size float64) (text.Face, error) {
	byWeight := l.families[family]
	if len(byWeight) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}
	path, ok := byWeight[canonicalWeight(weight)]
	if !ok {
		path, ok = byWeight["Regular"]
	}
	if !ok {
		for _, p := range byWeight {
			path = p
			break
		}
	}
	src, err := l.source(path)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

func canonicalWeight(w string) string {
	w = strings.TrimSpace(w)
	if w == "" {
		return "Regular"
	}
	return titleCase(strings.ToLower(w))
}

func (l *Library) source(path string) (*text.FontSource, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if src, ok := l.sources[path]; ok {
		return src, nil
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontscan: parsing %s: %w", path, err)
	}
	l.sources[path] = src
	return src, nil
}
