package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"protractor/geom"
	"protractor/internal/session"
)

var guideColor = color.RGBA{0x40, 0x40, 0x40, 0x40} // white at alpha 64, premultiplied

func drawLine(dst *ebiten.Image, a, b geom.Point, col color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, col, true)
}

func drawCross(dst *ebiten.Image, p geom.Point, size float64, col color.Color) {
	vector.StrokeLine(dst, float32(p.X-size), float32(p.Y), float32(p.X+size), float32(p.Y), 1.5, col, true)
	vector.StrokeLine(dst, float32(p.X), float32(p.Y-size), float32(p.X), float32(p.Y+size), 1.5, col, true)
}

func drawDot(dst *ebiten.Image, p geom.Point, r float32, col color.Color) {
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), r, col, true)
}

// drawGuide draws dotted horizontal and vertical lines through p across
// bounds.
func drawGuide(dst *ebiten.Image, p geom.Point, bounds image.Rectangle) {
	const dash, gap = 2, 4
	y := float32(p.Y)
	for x := bounds.Min.X; x < bounds.Max.X; x += dash + gap {
		vector.StrokeLine(dst, float32(x), y, float32(x+dash), y, 1, guideColor, false)
	}
	x := float32(p.X)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += dash + gap {
		vector.StrokeLine(dst, x, float32(y), x, float32(y+dash), 1, guideColor, false)
	}
}

// drawArc draws the arc of radius r around cross, starting on the arm
// towards begin and sweeping by the signed angle.
func drawArc(dst *ebiten.Image, cross, begin geom.Point, sweep, r float64, col color.Color) {
	arm, err := begin.Sub(cross)
	if err != nil || arm.IsZero() {
		return
	}
	start := math.Atan2(arm.Y(), arm.X())
	steps := max(2, int(math.Abs(sweep)*r/4))
	prev := geom.Pt(cross.X+r*math.Cos(start), cross.Y+r*math.Sin(start))
	for i := 1; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		next := geom.Pt(cross.X+r*math.Cos(a), cross.Y+r*math.Sin(a))
		drawLine(dst, prev, next, col)
		prev = next
	}
}

// clearCapture punches the region spanned by the measurement, marker
// included, out of the backdrop.
func clearCapture(dst *ebiten.Image, f session.Frame, radius float64) {
	var pts []geom.Point
	switch f.Stage {
	case session.Empty:
		return
	case session.HasBegin:
		pts = []geom.Point{f.Begin, f.Cursor}
	default:
		pts = []geom.Point{f.Begin, f.Cross, f.End}
	}
	area := geom.Bounds(pts...)
	if f.Measured && f.Measurement.HasBisector {
		b := f.Measurement.Bisector
		area = geom.UnionRects(area, geom.Rect{
			Min: geom.Pt(b.X-radius/4, b.Y-radius/4),
			Max: geom.Pt(b.X+radius/4, b.Y+radius/4),
		})
	}
	r := image.Rect(int(area.Min.X), int(area.Min.Y), int(math.Ceil(area.Max.X)), int(math.Ceil(area.Max.Y)))
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Clear()
}
