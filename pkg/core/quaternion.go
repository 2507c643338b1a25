package core

import "math"

// Quaternion is a unit quaternion used to orient a rotated box primitive.
// It plays the same role the teacher's Vec3-of-Euler-angles Rotate played
// for geometry.Box, but avoids gimbal lock and gives the box primitive a
// cheap inverse rotation for transforming rays into its local frame.
type Quaternion struct {
	X, Y, Z, W float64
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle builds a unit quaternion rotating by angle
// radians around axis (which need not be normalized).
func QuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	axis = axis.Normalize()
	half := angle / 2
	s := math.Sin(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}.Normalize()
}

// Normalize returns q scaled to unit length.
func (q Quaternion) Normalize() Quaternion {
	length := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length == 0 {
		return QuaternionIdentity()
	}
	inv := 1 / length
	return Quaternion{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Conjugate returns the conjugate of q. For a unit quaternion this is
// also its inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// RotateVector rotates v by q.
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	qVec := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := qVec.Cross(v).Multiply(2)
	return v.Add(t.Multiply(q.W)).Add(qVec.Cross(t))
}

// InverseRotateVector rotates v by the inverse (conjugate) of q. Used to
// bring a world-space ray into a rotated box's local frame.
func (q Quaternion) InverseRotateVector(v Vec3) Vec3 {
	return q.Conjugate().RotateVector(v)
}

// RotatedExtent transforms a local-space half-extent through the
// absolute value of q's rotation matrix, giving the half-extent of the
// axis-aligned bounding box that contains the rotated box
// (AABB.min/max = center ± RotatedExtent(halfExtent)).
func (q Quaternion) RotatedExtent(halfExtent Vec3) Vec3 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	row0 := NewVec3(1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy)).Abs()
	row1 := NewVec3(2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx)).Abs()
	row2 := NewVec3(2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy)).Abs()

	return NewVec3(
		row0.Dot(halfExtent),
		row1.Dot(halfExtent),
		row2.Dot(halfExtent),
	)
}
