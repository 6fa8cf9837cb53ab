package cardpress

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyDocument reports an operation that needs at least one shape.
var ErrEmptyDocument = errors.New("cardpress: document has no shapes")

// Layer holds shapes keyed by id. Layers stack bottom-to-top in the
// document; within a layer shapes draw in ascending id order.
type Layer struct {
	Name   string
	Shapes map[int]*Shape
}

// NewLayer creates an empty named layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, Shapes: make(map[int]*Shape)}
}

// ids returns the layer's shape ids in ascending order.
func (l *Layer) ids() []int {
	ids := make([]int, 0, len(l.Shapes))
	for id := range l.Shapes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Document is an ordered stack of layers plus a global shape index. A
// document always has at least one layer, and a shape is always present
// in exactly one layer and in the index, or in neither.
type Document struct {
	Layers []*Layer

	index  map[int]*Shape
	nextID int
}

// NewDocument creates a document with a single "Background" layer.
func NewDocument() *Document {
	return &Document{
		Layers: []*Layer{NewLayer("Background")},
		index:  make(map[int]*Shape),
	}
}

// AddLayer appends a new topmost layer.
func (d *Document) AddLayer(name string) *Layer {
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(d.Layers))
	}
	l := NewLayer(name)
	d.Layers = append(d.Layers, l)
	return l
}

// RemoveLayer deletes the layer at idx along with its shapes. The last
// remaining layer cannot be removed.
func (d *Document) RemoveLayer(idx int) error {
	if len(d.Layers) <= 1 {
		return errors.New("cardpress: cannot remove the last layer")
	}
	if idx < 0 || idx >= len(d.Layers) {
		return fmt.Errorf("cardpress: layer index %d out of range", idx)
	}
	for id := range d.Layers[idx].Shapes {
		delete(d.index, id)
	}
	d.Layers = append(d.Layers[:idx], d.Layers[idx+1:]...)
	return nil
}

// MoveLayer swaps the layer at idx with its neighbor: up moves it toward
// the top of the stack.
func (d *Document) MoveLayer(idx int, up bool) {
	j := idx - 1
	if up {
		j = idx + 1
	}
	if idx < 0 || idx >= len(d.Layers) || j < 0 || j >= len(d.Layers) {
		return
	}
	d.Layers[idx], d.Layers[j] = d.Layers[j], d.Layers[idx]
}

// AddShape creates a shape on the given layer, assigning the next free
// document-wide id.
func (d *Document) AddShape(layer *Layer, kind Kind, name string, x0, y0, x1, y1 float64) (*Shape, error) {
	s, err := NewShape(d.nextID, kind, name, x0, y0, x1, y1)
	if err != nil {
		return nil, err
	}
	d.nextID++
	layer.Shapes[s.ID] = s
	d.index[s.ID] = s
	return s, nil
}

// Shape looks a shape up by id.
func (d *Document) Shape(id int) *Shape {
	return d.index[id]
}

// RemoveShape deletes a shape from its layer and from the index. Both
// removals happen together; a shape never survives in one but not the
// other.
func (d *Document) RemoveShape(id int) bool {
	if _, ok := d.index[id]; !ok {
		return false
	}
	for _, l := range d.Layers {
		delete(l.Shapes, id)
	}
	delete(d.index, id)
	return true
}

// Reclassify swaps a shape's geometry variant in place, keeping its id,
// coordinates, style and payload.
func (d *Document) Reclassify(id int, kind Kind) bool {
	s := d.index[id]
	if s == nil {
		return false
	}
	if s.Kind != kind {
		s.Kind = kind
		s.ClearContent()
	}
	return true
}

// Walk visits every shape in draw order: bottom layer first, ascending id
// within each layer.
func (d *Document) Walk(fn func(layer *Layer, s *Shape)) {
	for _, l := range d.Layers {
		for _, id := range l.ids() {
			fn(l, l.Shapes[id])
		}
	}
}

// NumShapes returns the total shape count across all layers.
func (d *Document) NumShapes() int { return len(d.index) }

// Bounds returns the overall bounding extent of every shape in the
// document. An empty document reports a default 100x100 extent so callers
// always have a drawable canvas.
func (d *Document) Bounds() (x0, y0, x1, y1 float64) {
	first := true
	d.Walk(func(_ *Layer, s *Shape) {
		sx0, sy0, sx1, sy1 := s.Bounds()
		if first {
			x0, y0, x1, y1 = sx0, sy0, sx1, sy1
			first = false
			return
		}
		x0 = min(x0, sx0)
		y0 = min(y0, sy0)
		x1 = max(x1, sx1)
		y1 = max(y1, sy1)
	})
	if first {
		return 0, 0, 100, 100
	}
	return
}

// rebuildIndex reconstructs the id index and next-id counter from the
// layers. Used after loading a project.
func (d *Document) rebuildIndex() {
	d.index = make(map[int]*Shape)
	d.nextID = 0
	for _, l := range d.Layers {
		for id, s := range l.Shapes {
			d.index[id] = s
			if id >= d.nextID {
				d.nextID = id + 1
			}
		}
	}
}
