package cardpress

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// Kind selects the geometry variant of a shape. The set is closed: every
// kind has a containment test, a clip mask and an outline in geometry.go.
type Kind uint8

const (
	Rectangle Kind = iota
	Oval
	Triangle
	Hexagon
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Oval:
		return "oval"
	case Triangle:
		return "triangle"
	case Hexagon:
		return "hexagon"
	}
	return "unknown"
}

// ParseKind converts the serialized shape_type value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle":
		return Rectangle, nil
	case "oval":
		return Oval, nil
	case "triangle":
		return Triangle, nil
	case "hexagon":
		return Hexagon, nil
	}
	return Rectangle, fmt.Errorf("cardpress: unknown shape type %q", s)
}

// ContainerType says what a shape holds.
type ContainerType uint8

const (
	ContainerNone ContainerType = iota
	ContainerText
	ContainerImage
)

func (c ContainerType) String() string {
	switch c {
	case ContainerText:
		return "Text"
	case ContainerImage:
		return "Image"
	}
	return "None"
}

// ParseContainerType converts the serialized container_type value.
func ParseContainerType(s string) (ContainerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return ContainerText, nil
	case "image":
		return ContainerImage, nil
	case "none", "":
		return ContainerNone, nil
	}
	return ContainerNone, fmt.Errorf("cardpress: unknown container type %q", s)
}

// Horizontal and vertical text justification values, as stored in the
// project format.
const (
	JustifyLeft   = "left"
	JustifyCenter = "center"
	JustifyRight  = "right"

	VJustifyTop    = "top"
	VJustifyCenter = "center"
	VJustifyBottom = "bottom"
)

// MinShapeSize is the smallest width or height, in design units, a shape
// may have after any coordinate mutation.
const MinShapeSize = 5

// BindPrefix marks a shape name as data-bound: a shape named "@Title"
// receives the value of the "Title" column of each record.
const BindPrefix = "@"

// ErrShapeTooSmall reports a coordinate mutation that would make a shape
// thinner than MinShapeSize in either dimension.
var ErrShapeTooSmall = errors.New("cardpress: shape smaller than minimum size")

// Shape is the atomic drawable unit: a geometry variant over a bounding
// box, a stroke style, and an optional text or image payload. The rendered
// payload raster is a cache, regenerated by the render package whenever
// the text, font, path or justification changes; it is never persisted.
type Shape struct {
	ID   int
	Kind Kind
	Name string

	Color     string
	LineWidth float64

	Container ContainerType

	// Text payload.
	Text       string
	FontName   string
	FontSize   float64
	FontWeight string
	Justify    string
	VJustify   string

	// Image payload.
	Path        string
	ClipToShape bool

	coords  [4]float64
	content *image.NRGBA
}

// NewShape creates a shape with the given geometry. It fails if the
// coordinates describe a box smaller than MinShapeSize.
func NewShape(id int, kind Kind, name string, x0, y0, x1, y1 float64) (*Shape, error) {
	s := &Shape{
		ID:          id,
		Kind:        kind,
		Name:        name,
		Color:       "black",
		LineWidth:   1,
		Container:   ContainerText,
		FontName:    "Arial",
		FontSize:    12,
		FontWeight:  "Regular",
		Justify:     JustifyLeft,
		VJustify:    VJustifyTop,
		ClipToShape: true,
	}
	if err := s.SetCoords(x0, y0, x1, y1); err != nil {
		return nil, err
	}
	return s, nil
}

// Coords returns the raw coordinates as stored.
func (s *Shape) Coords() (x0, y0, x1, y1 float64) {
	return s.coords[0], s.coords[1], s.coords[2], s.coords[3]
}

// Bounds returns the min/max-normalized bounding box.
func (s *Shape) Bounds() (x0, y0, x1, y1 float64) {
	x0 = min(s.coords[0], s.coords[2])
	x1 = max(s.coords[0], s.coords[2])
	y0 = min(s.coords[1], s.coords[3])
	y1 = max(s.coords[1], s.coords[3])
	return
}

// Width returns the bounding-box width.
func (s *Shape) Width() float64 {
	x0, _, x1, _ := s.Bounds()
	return x1 - x0
}

// Height returns the bounding-box height.
func (s *Shape) Height() float64 {
	_, y0, _, y1 := s.Bounds()
	return y1 - y0
}

// SetCoords replaces the coordinates, rejecting any box smaller than
// MinShapeSize in either dimension. On rejection the shape is unchanged.
func (s *Shape) SetCoords(x0, y0, x1, y1 float64) error {
	if abs(x1-x0) < MinShapeSize || abs(y1-y0) < MinShapeSize {
		return fmt.Errorf("%w: %.1fx%.1f", ErrShapeTooSmall, abs(x1-x0), abs(y1-y0))
	}
	s.coords = [4]float64{x0, y0, x1, y1}
	return nil
}

// MoveTo places the top-left corner of the bounding box at (x, y),
// preserving width and height.
func (s *Shape) MoveTo(x, y float64) {
	x0, y0, x1, y1 := s.Bounds()
	w, h := x1-x0, y1-y0
	s.coords = [4]float64{x, y, x + w, y + h}
}

// Resize anchors the top-left corner and sets a new width and height.
func (s *Shape) Resize(w, h float64) error {
	x0, y0, _, _ := s.Bounds()
	return s.SetCoords(x0, y0, x0+w, y0+h)
}

// BindsTo reports whether the shape's name binds it to the given record
// key, either via the bind sentinel ("@Title" <- "Title") or an exact
// name match.
func (s *Shape) BindsTo(key string) bool {
	return s.Name == key || s.Name == BindPrefix+key
}

// SetText replaces the text payload and discards the cached raster.
func (s *Shape) SetText(text string) {
	if s.Text == text {
		return
	}
	s.Text = text
	s.content = nil
}

// SetFont replaces the font selection and discards the cached raster.
func (s *Shape) SetFont(name, weight string, size float64) {
	if s.FontName == name && s.FontWeight == weight && s.FontSize == size {
		return
	}
	s.FontName, s.FontWeight, s.FontSize = name, weight, size
	s.content = nil
}

// SetJustify replaces the text justification and discards the cached raster.
func (s *Shape) SetJustify(horizontal, vertical string) {
	if s.Justify == horizontal && s.VJustify == vertical {
		return
	}
	s.Justify, s.VJustify = horizontal, vertical
	s.content = nil
}

// SetPath replaces the image payload path and discards the cached raster.
func (s *Shape) SetPath(path string) {
	if s.Path == path {
		return
	}
	s.Path = path
	s.content = nil
}

// SetContainer switches the container type, dropping any stale payload
// raster.
func (s *Shape) SetContainer(c ContainerType) {
	if s.Container == c {
		return
	}
	s.Container = c
	s.content = nil
}

// Content returns the cached payload raster, or nil if none has been
// generated since the last payload mutation.
func (s *Shape) Content() *image.NRGBA { return s.content }

// SetContent stores a freshly generated payload raster.
func (s *Shape) SetContent(img *image.NRGBA) { s.content = img }

// ClearContent drops the cached payload raster.
func (s *Shape) ClearContent() { s.content = nil }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
