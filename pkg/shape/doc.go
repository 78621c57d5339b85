// Package shape defines the drawable, transformable geometry the render
// engine works with.
//
// Every shape can lay down its path on a gg drawing context and can map
// itself through an affine transform. The set of shapes is closed: Arc,
// Polyline, and Marker. Transforming is type-aware. A Marker stays a
// Marker with its reference point moved, while an Arc degrades to a
// Polyline, because an arc given by center, radius, and angles is not
// expressible in that form after a general affine map (a sheared circle is
// an ellipse).
//
// Draw methods only extend the context's current path; callers own paint
// state and decide whether to stroke or fill:
//
//	dc.SetRGB(0, 0, 0)
//	shape.Arc{Center: geom.Pt(50, 50), Radius: 20, End: math.Pi, Detail: 32}.Draw(dc)
//	dc.Stroke()
package shape
