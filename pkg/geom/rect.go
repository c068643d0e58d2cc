package geom

import "math"

// Rect is an axis-aligned box. The zero value is an empty box at the origin.
type Rect struct {
	Min, Max Point
}

// Bounds returns the smallest Rect containing all points.
func Bounds(points ...Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	result := Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}

	for _, p := range points {
		result.Min = Pt(min(result.Min.X, p.X), min(result.Min.Y, p.Y))
		result.Max = Pt(max(result.Max.X, p.X), max(result.Max.Y, p.Y))
	}

	return result
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Fit returns the uniform scale and offset mapping r into a w×h box with margin on each side,
// centred. Degenerate boxes get a scale of 1.
func (r Rect) Fit(w, h, margin float64) (scale float64, offset Point) {
	scale = math.Inf(1)
	if r.Dx() > 0 {
		scale = (w - 2*margin) / r.Dx()
	}

	if r.Dy() > 0 {
		scale = min(scale, (h-2*margin)/r.Dy())
	}

	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}

	offset = Pt(
		(w-r.Dx()*scale)/2-r.Min.X*scale,
		(h-r.Dy()*scale)/2-r.Min.Y*scale,
	)

	return scale, offset
}
