package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const degToRad = math.Pi / 180

// Rotation caches the sines and cosines of one frame's turn. AngleX turns
// around the vertical axis, AngleY tilts around the horizontal axis.
type Rotation struct {
	AngleX, AngleY float64
	SinX, CosX     float64
	SinY, CosY     float64
}

// NoRotation leaves every vector untouched.
var NoRotation = NewRotation(0, 0)

func NewRotation(angleX, angleY float64) Rotation {
	return Rotation{
		AngleX: angleX,
		AngleY: angleY,
		SinX:   math.Sin(angleX),
		CosX:   math.Cos(angleX),
		SinY:   math.Sin(angleY),
		CosY:   math.Cos(angleY),
	}
}

// AngularSpeed converts the base speed in degrees per frame into per-pixel
// factors for each axis.
func AngularSpeed(base float64, center mgl64.Vec2) mgl64.Vec2 {
	var s mgl64.Vec2
	if center.X() > 0 {
		s[0] = base / center.X()
	}
	if center.Y() > 0 {
		s[1] = base / center.Y()
	}
	return s
}

// PointerRotation derives the per-frame turn from the pointer offset
// relative to the surface origin. A pointer at the centre holds the sphere
// still; the edges spin it at base degrees per frame.
func PointerRotation(speed mgl64.Vec2, base float64, pointer mgl64.Vec2) Rotation {
	fx := speed.X()*pointer.X() - base
	fy := base - speed.Y()*pointer.Y()
	return NewRotation(fx*degToRad, fy*degToRad)
}

// Apply turns v by r. It is applied to the already rotated vector each
// frame, so the orientation accumulates.
func (r Rotation) Apply(v mgl64.Vec3) mgl64.Vec3 {
	x, y, z := v[0], v[1], v[2]
	rz := y*r.SinY + z*r.CosY
	return mgl64.Vec3{
		x*r.CosX + rz*r.SinX,
		y*r.CosY - z*r.SinY,
		-x*r.SinX + rz*r.CosX,
	}
}

// Invert undoes Apply.
func (r Rotation) Invert(v mgl64.Vec3) mgl64.Vec3 {
	x, y, z := v[0], v[1], v[2]
	rz := x*r.SinX + z*r.CosX
	return mgl64.Vec3{
		x*r.CosX - z*r.SinX,
		y*r.CosY + rz*r.SinY,
		-y*r.SinY + rz*r.CosY,
	}
}
