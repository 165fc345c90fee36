package panzoom

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] that maps element
// local coordinates to client coordinates for an element laid out at
// layout (its untransformed top-left corner in client space), scaling about
// origin (in local coordinates).
//
// Composition order:
//
//	Translate(layout + origin) * Scale * Translate((X, Y) - origin)
//
// so a local point q lands at layout + origin + Scale*(q + (X, Y) - origin).
func (t Transform) Matrix(layout, origin Vec2) [6]float64 {
	s := t.Scale
	m := multiplyAffine([6]float64{s, 0, 0, s, 0, 0}, [6]float64{1, 0, 0, 1, t.X - origin.X, t.Y - origin.Y})
	return multiplyAffine([6]float64{1, 0, 0, 1, layout.X + origin.X, layout.Y + origin.Y}, m)
}

// Lerp interpolates between t and to. f=0 gives t, f=1 gives to.
func (t Transform) Lerp(to Transform, f float64) Transform {
	return Transform{
		X:     t.X + (to.X-t.X)*f,
		Y:     t.Y + (to.Y-t.Y)*f,
		Scale: t.Scale + (to.Scale-t.Scale)*f,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant near 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformOrigin returns the scaling origin of a w*h element in local
// coordinates: the center for layout boxes, the top-left for SVG.
func transformOrigin(svg bool, w, h float64) Vec2 {
	if svg {
		return Vec2{}
	}
	return Vec2{X: w / 2, Y: h / 2}
}
