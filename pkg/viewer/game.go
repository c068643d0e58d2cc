// Package viewer previews converted paths in an ebiten window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/gucio321/desmosify/pkg/geom"
	"github.com/gucio321/desmosify/pkg/path"
)

var _ ebiten.Game = &Viewer{}

const (
	width, height = 800, 600
	baseScale     = 4.0
	margin        = 20
	curveSteps    = 32
)

var (
	backgroundColor = colornames.Black
	axisColor       = colornames.Dimgray
	travelColor     = colornames.Darkslategray
)

// Viewer renders path segments once in NewViewer and displays the image statically in ebiten.
// Drawn segments go from green to red in path order; pen moves are dim.
type Viewer struct {
	scale    float64
	segments []path.Segment
	current  *ebiten.Image
}

func NewViewer(segments []path.Segment) *Viewer {
	result := &Viewer{
		scale:    1,
		segments: segments,
	}

	result.current = result.render()
	return result
}

func (v *Viewer) render() *ebiten.Image {
	w, h := width*baseScale, height*baseScale
	dest := ebiten.NewImage(int(w), int(h))
	dest.Fill(backgroundColor)

	var points []geom.Point
	for _, s := range v.segments {
		points = append(points, path.Sample(s, curveSteps)...)
	}

	scale, offset := geom.Bounds(points...).Fit(w, h, margin*baseScale)
	// y grows upwards like on a graph
	project := func(p geom.Point) (x, y float64) {
		return p.X*scale + offset.X, h - (p.Y*scale + offset.Y)
	}

	ox, oy := project(geom.Pt(0, 0))
	ebitenutil.DrawLine(dest, 0, oy, w, oy, axisColor)
	ebitenutil.DrawLine(dest, ox, 0, ox, h, axisColor)

	var current geom.Point
	for i, s := range v.segments {
		if m, ok := s.(path.MoveTo); ok {
			x0, y0 := project(current)
			x1, y1 := project(m.P)
			ebitenutil.DrawLine(dest, x0, y0, x1, y1, travelColor)
			current = m.P

			continue
		}

		c := GreenToRedHSV(float64(i) / float64(len(v.segments)))
		sampled := path.Sample(s, curveSteps)
		for j := 1; j < len(sampled); j++ {
			x0, y0 := project(sampled[j-1])
			x1, y1 := project(sampled[j])
			ebitenutil.DrawLine(dest, x0, y0, x1, y1, c)
		}

		current = s.End()
	}

	return dest
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 1 {
		v.scale = 1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	mouseX, mouseY := ebiten.CursorPosition()
	mouseX = max(mouseX, 0)
	mouseY = max(mouseY, 0)

	// the whole image shrunk to the window, then zoomed around the cursor
	fit := 1 / baseScale
	zoom := baseScale * (1 - 1/v.scale)
	renderable, _ := v.current.SubImage(image.Rect(
		int(zoom*float64(mouseX)), int(zoom*float64(mouseY)),
		int(width*baseScale/v.scale+zoom*float64(mouseX)), int(height*baseScale/v.scale+zoom*float64(mouseY)))).(*ebiten.Image)

	if renderable == nil || renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	m := ebiten.GeoM{}
	m.Scale(fit*v.scale, fit*v.scale)
	screen.DrawImage(renderable,
		&ebiten.DrawImageOptions{
			GeoM: m,
		})
}

func (v *Viewer) Layout(_, _ int) (screenWidth, screenHeight int) {
	return width, height
}
