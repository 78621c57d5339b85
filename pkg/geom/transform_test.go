package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsClose(p, q Point) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

func TestIdentityApply(t *testing.T) {
	points := []Point{
		{0, 0},
		{1, 2},
		{-3.5, 7.25},
		{1e6, -1e6},
		{math.Pi, math.E},
	}
	id := Identity()
	for _, p := range points {
		if got := id.Apply(p); got != p {
			t.Errorf("Identity().Apply(%v) = %v, want %v", p, got, p)
		}
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
		in   Point
		want Point
	}{
		{"rotation quarter turn", Rotation(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotation half turn", Rotation(math.Pi), Pt(1, 0), Pt(-1, 0)},
		{"rotation preserves origin", Rotation(1.234), Pt(0, 0), Pt(0, 0)},
		{"translation", Translation(Pt(10, -5)), Pt(1, 2), Pt(11, -3)},
		{"scalar", Scalar(Pt(2, 3)), Pt(1, 1), Pt(2, 3)},
		{"scalar non-uniform", Scalar(Pt(0.5, 4)), Pt(2, 2), Pt(1, 8)},
		{"shear x", ShearX(1), Pt(0, 1), Pt(1, 1)},
		{"shear x keeps axis", ShearX(5), Pt(3, 0), Pt(3, 0)},
		{"shear y", ShearY(1), Pt(1, 0), Pt(1, 1)},
		{"shear both", Shear(Pt(1, 1)), Pt(1, 1), Pt(2, 2)},
		{"reflect origin", ReflectOrigin(), Pt(3, 4), Pt(-3, -4)},
		{"reflect x axis", ReflectX(), Pt(3, 4), Pt(3, -4)},
		{"reflect y axis", ReflectY(), Pt(3, 4), Pt(-3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.t.Apply(tt.in)
			if !pointsClose(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComposeOrder(t *testing.T) {
	// Compose applies the right-hand transform first: translating after
	// rotating differs from rotating after translating.
	rotate := Rotation(math.Pi / 2)
	translate := Translation(Pt(1, 0))

	p := Pt(1, 0)

	rotThenTrans := translate.Compose(rotate).Apply(p)
	if !pointsClose(rotThenTrans, Pt(1, 1)) {
		t.Errorf("translate∘rotate applied to %v = %v, want (1,1)", p, rotThenTrans)
	}

	transThenRot := rotate.Compose(translate).Apply(p)
	if !pointsClose(transThenRot, Pt(0, 2)) {
		t.Errorf("rotate∘translate applied to %v = %v, want (0,2)", p, transThenRot)
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	a := Rotation(0.7)
	b := Scalar(Pt(2, 0.5))
	p := Pt(3, -4)

	composed := a.Compose(b).Apply(p)
	sequential := a.Apply(b.Apply(p))
	if !pointsClose(composed, sequential) {
		t.Errorf("a.Compose(b).Apply(p) = %v, want %v", composed, sequential)
	}
}

func TestComposeAssociativity(t *testing.T) {
	a := Rotation(math.Pi / 3)
	b := Translation(Pt(5, -2))
	c := Shear(Pt(0.5, 0.25))

	points := []Point{{0, 0}, {1, 1}, {-7, 3.5}, {100, -50}}
	left := a.Compose(b.Compose(c))
	right := a.Compose(b).Compose(c)

	for _, p := range points {
		lp, rp := left.Apply(p), right.Apply(p)
		if !pointsClose(lp, rp) {
			t.Errorf("associativity broken at %v: %v vs %v", p, lp, rp)
		}
	}
}

func TestComposeIdentityNeutral(t *testing.T) {
	transforms := []struct {
		name string
		t    Transform
	}{
		{"rotation", Rotation(1.1)},
		{"translation", Translation(Pt(-3, 9))},
		{"scalar", Scalar(Pt(2, 7))},
		{"shear", Shear(Pt(0.3, 0.6))},
	}
	p := Pt(2.5, -1.5)
	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.t.Apply(p)
			if got := tt.t.Compose(Identity()).Apply(p); !pointsClose(got, want) {
				t.Errorf("t.Compose(Identity()) changed result: %v vs %v", got, want)
			}
			if got := Identity().Compose(tt.t).Apply(p); !pointsClose(got, want) {
				t.Errorf("Identity().Compose(t) changed result: %v vs %v", got, want)
			}
		})
	}
}

func TestReflectionInvolution(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
	}{
		{"reflect x", ReflectX()},
		{"reflect y", ReflectY()},
		{"reflect origin", ReflectOrigin()},
	}
	points := []Point{{1, 2}, {-3, 4}, {0, 0}, {5.5, -6.25}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			twice := tt.t.Compose(tt.t)
			for _, p := range points {
				if got := twice.Apply(p); !pointsClose(got, p) {
					t.Errorf("applying %s twice moved %v to %v", tt.name, p, got)
				}
			}
		})
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
	}{
		{"rotation", Rotation(0.9)},
		{"translation", Translation(Pt(12, -7))},
		{"scalar", Scalar(Pt(3, 0.25))},
		{"shear", ShearX(2)},
		{"composite", Rotation(0.5).Compose(Translation(Pt(4, 4))).Compose(Scalar(Pt(2, 2)))},
	}
	p := Pt(1.5, -2.5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip := tt.t.Invert().Apply(tt.t.Apply(p))
			if !pointsClose(roundTrip, p) {
				t.Errorf("inverse round trip moved %v to %v", p, roundTrip)
			}
		})
	}
}

func TestInvertDegenerate(t *testing.T) {
	// A zero-determinant transform has no inverse; Invert falls back to
	// the identity.
	flat := Scalar(Pt(1, 0))
	if got := flat.Invert(); !got.IsIdentity() {
		t.Errorf("Invert of degenerate transform = %+v, want identity", got)
	}
}

func TestApplyVectorIgnoresTranslation(t *testing.T) {
	tr := Translation(Pt(100, 200))
	v := Pt(3, 4)
	if got := tr.ApplyVector(v); got != v {
		t.Errorf("ApplyVector(%v) = %v, want %v", v, got, v)
	}
}
