// Package cardpress is a card and label compositing engine. Geometric
// container shapes (rectangles, ovals, triangles, hexagons) hold text or
// images, stack across layers, and bind by name to columns of a tabular
// record source. The render subpackage flattens one record into a single
// high-resolution card raster; the layout subpackage tiles those rasters
// into 8-up/9-up (or auto-fit) grids and writes them as a multi-page PDF.
//
// Coordinates throughout are abstract design units at 72 per inch. Export
// quality is controlled by a separate render density (pixels per inch)
// that never depends on any display device.
package cardpress
