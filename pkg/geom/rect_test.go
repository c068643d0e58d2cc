package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	r := Bounds(Pt(3, -1), Pt(-2, 4), Pt(0, 0))

	assert.Equal(t, Rect{Pt(-2, -1), Pt(3, 4)}, r)
	assert.Equal(t, 5.0, r.Dx())
	assert.Equal(t, 5.0, r.Dy())
	assert.Equal(t, Rect{}, Bounds())
}

func TestRectFit(t *testing.T) {
	r := Rect{Pt(0, 0), Pt(10, 5)}
	scale, offset := r.Fit(120, 120, 10)

	assert.Equal(t, 10.0, scale)
	// the 100×50 drawing is centred in the 120×120 box
	assert.Equal(t, Pt(10, 35), offset)
}

func TestRectFitDegenerate(t *testing.T) {
	scale, offset := Rect{Pt(2, 2), Pt(2, 2)}.Fit(100, 100, 0)

	assert.Equal(t, 1.0, scale)
	assert.Equal(t, Pt(48, 48), offset)
}
