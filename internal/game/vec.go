package game

import "math"

// Vec2 is a point or direction on the system plane (Y grows downward).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the vector magnitude.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Len2 returns the squared magnitude.
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Finite reports whether both components are real numbers.
func (v Vec2) Finite() bool { return finite(v.X) && finite(v.Y) }

// Unit returns v normalized. A zero vector stays zero.
func (v Vec2) Unit() Vec2 {
	l := v.Len()
	if l == 0 {
		l = 1
	}
	return Vec2{v.X / l, v.Y / l}
}

// Up is the default heading for an object with no drift.
var Up = Vec2{0, -1}

// Pose is a position plus heading in radians.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Pos returns the position part of the pose.
func (p Pose) Pos() Vec2 { return Vec2{p.X, p.Y} }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// easeInOut is the symmetric quadratic ease shared by every dock motion.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// AngleDiff returns the shortest signed turn from a to b.
func AngleDiff(a, b float64) float64 { return wrapAngle(b - a) }

// turnToward rotates cur toward want by at most maxStep radians.
func turnToward(cur, want, maxStep float64) float64 {
	d := AngleDiff(cur, want)
	if d > maxStep {
		d = maxStep
	} else if d < -maxStep {
		d = -maxStep
	}
	return wrapAngle(cur + d)
}
