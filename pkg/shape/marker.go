package shape

import (
	"github.com/gogpu/gg"

	"github.com/seedsketch/seedsketch/pkg/geom"
)

// Marker is a dot of fixed user-space radius at a reference point. Its
// only transformable element is that point, so unlike Arc it survives a
// transform as its own type.
type Marker struct {
	At     geom.Point
	Radius float64
}

// Draw extends the path of dc with the marker's circle.
func (m Marker) Draw(dc *gg.Context) {
	dc.DrawPoint(m.At.X, m.At.Y, m.Radius)
}

// Transformed returns a Marker at the transformed reference point. The
// radius is a size, not a coordinate, and is kept as-is.
func (m Marker) Transformed(t geom.Transform) Shape {
	return Marker{At: t.Apply(m.At), Radius: m.Radius}
}
