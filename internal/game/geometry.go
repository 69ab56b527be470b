package game

import "math"

// Vec3 is a world-space vector. Y is up; the ground plane is X/Z.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Length is the full 3D magnitude, Y included.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector; a zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Lerp interpolates each component; t is not clamped.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: lerp(v.X, o.X, t),
		Y: lerp(v.Y, o.Y, t),
		Z: lerp(v.Z, o.Z, t),
	}
}

// RotateY rotates v about the +Y axis by deg degrees (right-handed).
func (v Vec3) RotateY(deg float64) Vec3 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Transform is the subset of a scene node the core reads: where it is and how
// big it is. Zones are derived from it once.
type Transform struct {
	Position Vec3 `yaml:"position"`
	Scale    Vec3 `yaml:"scale"`
}

// Rect is an axis-aligned zone on the ground plane. A nil *Rect is a zone
// whose source node was missing; every containment test against it fails.
type Rect struct {
	CenterX    float64
	CenterZ    float64
	HalfWidth  float64
	HalfHeight float64
}

// RectFromNode uses the node scale, not its mesh bounds, as the zone size.
func RectFromNode(node *Transform) *Rect {
	if node == nil {
		return nil
	}
	return &Rect{
		CenterX:    node.Position.X,
		CenterZ:    node.Position.Z,
		HalfWidth:  node.Scale.X / 2,
		HalfHeight: node.Scale.Z / 2,
	}
}

// Contains is the inclusive test used for the obstacle and boundary zones.
func (r *Rect) Contains(x, z float64) bool {
	if r == nil {
		return false
	}
	return x >= r.CenterX-r.HalfWidth &&
		x <= r.CenterX+r.HalfWidth &&
		z >= r.CenterZ-r.HalfHeight &&
		z <= r.CenterZ+r.HalfHeight
}

// ContainsStrict excludes the edges. The sell zone uses it.
func (r *Rect) ContainsStrict(x, z float64) bool {
	if r == nil {
		return false
	}
	return x > r.CenterX-r.HalfWidth &&
		x < r.CenterX+r.HalfWidth &&
		z > r.CenterZ-r.HalfHeight &&
		z < r.CenterZ+r.HalfHeight
}

// normalizeDeg maps any angle into [0, 360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// headingDeg is the angle of the horizontal part of v measured from +Z toward +X.
func headingDeg(v Vec3) float64 {
	return math.Atan2(v.X, v.Z) * 180 / math.Pi
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampFloat(v, minV, maxV float64) float64 {
	return math.Min(maxV, math.Max(minV, v))
}
