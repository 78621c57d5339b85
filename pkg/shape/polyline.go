package shape

import (
	"github.com/gogpu/gg"

	"github.com/seedsketch/seedsketch/pkg/geom"
)

// Polyline is an open, ordered point sequence. It is the common result
// type for shapes that lose their parametric form under a transform.
type Polyline struct {
	Points []geom.Point
}

// Draw extends the path of dc with line segments through the points.
// Fewer than 2 points cannot form a segment; Draw does nothing then.
func (p Polyline) Draw(dc *gg.Context) {
	if len(p.Points) < 2 {
		return
	}
	dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
}

// Transformed maps every point through t and returns the resulting
// Polyline.
func (p Polyline) Transformed(t geom.Transform) Shape {
	if len(p.Points) == 0 {
		return Polyline{}
	}
	out := make([]geom.Point, len(p.Points))
	for i, pt := range p.Points {
		out[i] = t.Apply(pt)
	}
	return Polyline{Points: out}
}

// Empty returns true if the polyline carries no points.
func (p Polyline) Empty() bool {
	return len(p.Points) == 0
}
