package globetrace

import "math"

// Vec3 is a 3-component vector in camera space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm2 returns the squared length of v.
func (v Vec3) Norm2() float64 {
	return v.Dot(v)
}

// Unit returns v scaled to length 1.
func (v Vec3) Unit() Vec3 {
	return v.Scale(1 / math.Sqrt(v.Norm2()))
}

// RotXY rotates v on the XY plane by the angle whose cosine and sine are
// c and s.
func (v Vec3) RotXY(c, s float64) Vec3 {
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// RotYZ rotates v on the YZ plane.
func (v Vec3) RotYZ(c, s float64) Vec3 {
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotZX rotates v on the ZX plane.
func (v Vec3) RotZX(c, s float64) Vec3 {
	return Vec3{v.Z*s + v.X*c, v.Y, v.Z*c - v.X*s}
}

// raySphere intersects the ray starting at o with direction u (not
// necessarily normalized) against the sphere centered at c with radius r.
// It returns the closest intersection in front of the origin, or ok=false
// when the ray misses or the sphere is behind it.
func raySphere(o, u, c Vec3, r float64) (Vec3, bool) {
	u = u.Unit()

	oc := o.Sub(c)
	udotoc := u.Dot(oc)
	del := udotoc*udotoc - oc.Norm2() + r*r
	if del < 0 {
		return Vec3{}, false
	}

	// The nearer of the two solutions. Negative d means the sphere is
	// behind the ray origin.
	d := -udotoc - math.Sqrt(del)
	if d < 0 {
		return Vec3{}, false
	}

	return o.Add(u.Scale(d)), true
}

// sphereNormal returns the outward unit normal at point p on the sphere
// centered at c with radius r.
func sphereNormal(c Vec3, r float64, p Vec3) Vec3 {
	return p.Sub(c).Scale(1 / r)
}
