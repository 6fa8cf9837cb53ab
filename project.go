package cardpress

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// The project file format matches the original editor: a JSON object with
// a list of layers, each mapping stringified shape ids to shape records.
// Rendered payload rasters are never stored; they are regenerated on the
// next flatten.

type shapeJSON struct {
	ID            int        `json:"id"`
	ShapeType     string     `json:"shape_type"`
	Coords        [4]float64 `json:"coords"`
	Name          string     `json:"name"`
	Color         string     `json:"color"`
	LineWidth     float64    `json:"line_width"`
	ContainerType string     `json:"container_type"`
	Path          string     `json:"path"`
	Text          string     `json:"text"`
	FontName      string     `json:"font_name"`
	FontSize      float64    `json:"font_size"`
	FontWeight    string     `json:"font_weight"`
	Justification string     `json:"justification"`
	VertJust      string     `json:"vertical_justification"`
	ClipImage     *bool      `json:"clip_image,omitempty"`
}

type layerJSON struct {
	Name   string               `json:"name"`
	Shapes map[string]shapeJSON `json:"shapes"`
}

type projectJSON struct {
	Layers []layerJSON `json:"layers"`
}

// SaveProject writes the document as project JSON.
func SaveProject(w io.Writer, doc *Document) error {
	var p projectJSON
	for _, l := range doc.Layers {
		lj := layerJSON{Name: l.Name, Shapes: make(map[string]shapeJSON)}
		for id, s := range l.Shapes {
			clip := s.ClipToShape
			lj.Shapes[strconv.Itoa(id)] = shapeJSON{
				ID:            s.ID,
				ShapeType:     s.Kind.String(),
				Coords:        [4]float64{s.coords[0], s.coords[1], s.coords[2], s.coords[3]},
				Name:          s.Name,
				Color:         s.Color,
				LineWidth:     s.LineWidth,
				ContainerType: s.Container.String(),
				Path:          s.Path,
				Text:          s.Text,
				FontName:      s.FontName,
				FontSize:      s.FontSize,
				FontWeight:    s.FontWeight,
				Justification: s.Justify,
				VertJust:      s.VJustify,
				ClipImage:     &clip,
			}
		}
		p.Layers = append(p.Layers, lj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(p)
}

// LoadProject reads project JSON into a document. Unknown shape types or
// invalid geometry fail the load; a project with no layers gets the
// default background layer so the one-layer invariant holds.
func LoadProject(r io.Reader) (*Document, error) {
	var p projectJSON
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("cardpress: reading project: %w", err)
	}

	doc := &Document{index: make(map[int]*Shape)}
	for _, lj := range p.Layers {
		l := NewLayer(lj.Name)
		for key, sj := range lj.Shapes {
			id := sj.ID
			if id == 0 {
				if k, err := strconv.Atoi(key); err == nil {
					id = k
				}
			}
			s, err := loadShape(id, sj)
			if err != nil {
				return nil, err
			}
			l.Shapes[s.ID] = s
		}
		doc.Layers = append(doc.Layers, l)
	}
	if len(doc.Layers) == 0 {
		doc.Layers = []*Layer{NewLayer("Background")}
	}
	doc.rebuildIndex()
	return doc, nil
}

func loadShape(id int, sj shapeJSON) (*Shape, error) {
	kind, err := ParseKind(sj.ShapeType)
	if err != nil {
		return nil, err
	}
	ct, err := ParseContainerType(sj.ContainerType)
	if err != nil {
		return nil, err
	}
	s, err := NewShape(id, kind, sj.Name, sj.Coords[0], sj.Coords[1], sj.Coords[2], sj.Coords[3])
	if err != nil {
		return nil, fmt.Errorf("cardpress: shape %d: %w", id, err)
	}
	s.Container = ct
	if sj.Color != "" {
		s.Color = sj.Color
	}
	s.LineWidth = sj.LineWidth
	s.Path = sj.Path
	s.Text = sj.Text
	if sj.FontName != "" {
		s.FontName = sj.FontName
	}
	if sj.FontSize > 0 {
		s.FontSize = sj.FontSize
	}
	if sj.FontWeight != "" {
		s.FontWeight = sj.FontWeight
	}
	if sj.Justification != "" {
		s.Justify = sj.Justification
	}
	if sj.VertJust != "" {
		s.VJustify = sj.VertJust
	}
	if sj.ClipImage != nil {
		s.ClipToShape = *sj.ClipImage
	}
	return s, nil
}
