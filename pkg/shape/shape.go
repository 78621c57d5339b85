package shape

import (
	"github.com/gogpu/gg"

	"github.com/seedsketch/seedsketch/pkg/geom"
)

// Shape is any drawable geometry that can map itself through an affine
// transform.
//
// Draw extends the current path of dc with the shape's outline and nothing
// else: no paint state is touched and no stroke or fill is performed, so a
// caller can compose several shapes into one path before rasterizing.
//
// Transformed returns the shape's image under t. The returned value may be
// a different concrete type than the receiver; see Arc for the one case
// where it always is.
type Shape interface {
	Draw(dc *gg.Context)
	Transformed(t geom.Transform) Shape
}
