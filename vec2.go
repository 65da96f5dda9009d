package sunaba

import "math"

// Vec2 is a 2-D float32 vector used by the built-in component kinds.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2-D cross product of v and o.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Perpendicular returns v rotated a quarter turn counterclockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Abs returns v with both components made non-negative.
func (v Vec2) Abs() Vec2 {
	return Vec2{float32(math.Abs(float64(v.X))), float32(math.Abs(float64(v.Y)))}
}

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of v.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalized returns v scaled to unit length, or the zero vector when v
// has no length.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance between a and b.
func Distance(a, b Vec2) float32 {
	return b.Sub(a).Length()
}

// DistanceSquared returns the squared distance between a and b.
func DistanceSquared(a, b Vec2) float32 {
	return b.Sub(a).LengthSquared()
}
