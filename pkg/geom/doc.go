// Package geom provides the affine transform algebra the render engine is
// built on.
//
// A Transform is a 3x3 affine matrix over 2D coordinates, stored as its six
// free coefficients (the bottom row is always [0 0 1]). Every named
// operation (rotation, translation, scale, shear, reflection) is just a
// Transform value, so arbitrary combinations reduce to matrix
// multiplication and one generic apply path serves every shape:
//
//	t := geom.Rotation(math.Pi / 4).Compose(geom.Translation(geom.Pt(10, 0)))
//	p := t.Apply(geom.Pt(1, 2))
//
// Compose follows function-composition order: A.Compose(B).Apply(p) equals
// A.Apply(B.Apply(p)), i.e. B is applied first.
package geom
