package cardpress

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is a physical measurement unit understood by the dimension
// converter. The zero value is pixels.
type Unit string

const (
	UnitPixel      Unit = "px"
	UnitInch       Unit = "in"
	UnitCentimeter Unit = "cm"
	UnitMillimeter Unit = "mm"
	UnitPoint      Unit = "pt"
)

var (
	// ErrInvalidDimension reports text that does not match
	// "<number><optional unit>".
	ErrInvalidDimension = errors.New("cardpress: invalid dimension format")

	// ErrUnsupportedUnit reports a unit suffix other than px, in, cm, mm, pt.
	ErrUnsupportedUnit = errors.New("cardpress: unsupported unit")
)

// dimensionRe captures the numeric literal and any trailing letter suffix.
var dimensionRe = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+))\s*([a-zA-Z]*)\s*$`)

// pixelsPerUnit returns how many pixels one unit spans at the given
// pixels-per-inch scale.
func pixelsPerUnit(u Unit, ppi float64) (float64, error) {
	switch u {
	case UnitPixel, "":
		return 1, nil
	case UnitInch:
		return ppi, nil
	case UnitCentimeter:
		return ppi / 2.54, nil
	case UnitMillimeter:
		return ppi / 25.4, nil
	case UnitPoint:
		return ppi / 72, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, string(u))
	}
}

// ParseDimension converts a dimension string such as "2.5in", "63.5 mm" or
// "120" to integer pixels at the given pixels-per-inch scale. The unit
// suffix defaults to pixels when omitted. The result is rounded to the
// nearest pixel.
func ParseDimension(text string, ppi float64) (int, error) {
	m := dimensionRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDimension, text)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDimension, text)
	}
	factor, err := pixelsPerUnit(Unit(strings.ToLower(m[2])), ppi)
	if err != nil {
		return 0, err
	}
	return int(math.Round(value * factor)), nil
}

// FormatPixels renders a pixel count in the requested unit, as the exact
// inverse of ParseDimension. Whole values (within 1e-6) format as integers,
// anything else with two decimal places, both followed by the unit.
func FormatPixels(pixels int, ppi float64, unit Unit) string {
	factor, err := pixelsPerUnit(unit, ppi)
	if err != nil || factor == 0 {
		factor = 1
		unit = UnitPixel
	}
	if unit == "" {
		unit = UnitPixel
	}
	value := float64(pixels) / factor
	if math.Abs(value-math.Round(value)) < 1e-6 {
		return fmt.Sprintf("%d%s", int(math.Round(value)), unit)
	}
	return fmt.Sprintf("%.2f%s", value, unit)
}
