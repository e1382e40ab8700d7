package math

// Reflect returns a matrix that reflects points and directions across the
// plane a*x + b*y + c*z + d = 0, where plane is (a, b, c, d). The plane
// normal does not need to be unit length.
func Reflect(plane Vec4) Mat4 {
	n := Vec3{plane[0], plane[1], plane[2]}.Normalize()
	d := plane[3]

	return Mat4{
		1 - 2*n.X*n.X, -2*n.X*n.Y, -2*n.X*n.Z, 0,
		-2*n.X*n.Y, 1 - 2*n.Y*n.Y, -2*n.Y*n.Z, 0,
		-2*n.X*n.Z, -2*n.Y*n.Z, 1 - 2*n.Z*n.Z, 0,
		-2*d*n.X, -2*d*n.Y, -2*d*n.Z, 1,
	}
}

// Shadow returns a projective matrix that flattens geometry onto the plane
// a*x + b*y + c*z + d = 0 along the given light. A light with w = 0 is
// directional (projecting along -light), one with w = 1 is a point light at
// that position.
func Shadow(plane Vec4, light Vec4) Mat4 {
	a, b, c, d := plane[0], plane[1], plane[2], plane[3]
	lx, ly, lz, lw := light[0], light[1], light[2], light[3]
	dot := a*lx + b*ly + c*lz + d*lw

	return Mat4{
		dot - lx*a, -ly * a, -lz * a, -lw * a,
		-lx * b, dot - ly*b, -lz * b, -lw * b,
		-lx * c, -ly * c, dot - lz*c, -lw * c,
		-lx * d, -ly * d, -lz * d, dot - lw*d,
	}
}
