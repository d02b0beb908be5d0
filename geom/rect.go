package geom

import (
	gogeom "github.com/twpayne/go-geom"
)

// Rect is an axis-aligned rectangle. Min is the top-left corner on a y-down
// screen, Max the bottom-right.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// UnionRects returns the smallest rectangle covering every rectangle in
// rects, such as the union of all screen geometries. No rectangles yield
// the zero Rect.
func UnionRects(rects ...Rect) Rect {
	flat := make([]float64, 0, 4*len(rects))
	for _, r := range rects {
		flat = append(flat, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}
	return boundsOf(flat)
}

// Bounds returns the bounding box of points. No points yield the zero Rect.
func Bounds(points ...Point) Rect {
	flat := make([]float64, 0, 2*len(points))
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return boundsOf(flat)
}

func boundsOf(flat []float64) Rect {
	if len(flat) == 0 {
		return Rect{}
	}
	b := gogeom.NewBounds(gogeom.XY).Extend(gogeom.NewMultiPointFlat(gogeom.XY, flat))
	return Rect{
		Min: Point{X: b.Min(0), Y: b.Min(1)},
		Max: Point{X: b.Max(0), Y: b.Max(1)},
	}
}
