package shape

import (
	"github.com/gogpu/gg"

	"github.com/seedsketch/seedsketch/pkg/geom"
)

// Arc is a circular arc given in parametric form: a center, a radius, and
// a start and end angle in radians. Detail is the number of sample points
// used when the arc has to be flattened into a point sequence; at least 2
// points are needed to represent a path.
type Arc struct {
	Center geom.Point
	Radius float64
	Start  float64
	End    float64
	Detail int
}

// Draw extends the path of dc with the arc, using the context's circular
// arc primitive.
func (a Arc) Draw(dc *gg.Context) {
	dc.DrawArc(a.Center.X, a.Center.Y, a.Radius, a.Start, a.End)
}

// Points samples the arc into Detail points by linearly interpolating the
// angle from Start to End, inclusive of both endpoints. The result is a
// pure function of the arc's fields. A Detail below 2 cannot represent an
// arc path and yields nil.
func (a Arc) Points() []geom.Point {
	if a.Detail < 2 {
		return nil
	}
	pts := make([]geom.Point, a.Detail)
	step := 1.0 / float64(a.Detail-1)
	for i := range pts {
		angle := a.Start + (a.End-a.Start)*(float64(i)*step)
		pts[i] = a.Center.Add(geom.Polar(angle, a.Radius))
	}
	return pts
}

// Transformed maps the arc through t by sampling it into its point
// sequence and transforming each point, returning an open Polyline.
//
// The result is never an Arc: center, radius, and angles cannot describe
// the image of an arc under a general affine map (non-uniform scale or
// shear turns a circular arc into an elliptical one). When Detail is below
// 2 the sampled sequence cannot form a path and the result is the empty
// Polyline.
func (a Arc) Transformed(t geom.Transform) Shape {
	pts := a.Points()
	if len(pts) < 2 {
		return Polyline{}
	}
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return Polyline{Points: out}
}
