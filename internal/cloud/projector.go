package cloud

import "github.com/go-gl/mathgl/mgl64"

// Projection is a point on the surface plus its depth scale.
type Projection struct {
	Point mgl64.Vec2
	Scale float64
}

// Project maps v onto the surface with a pinhole camera at focal distance
// in front of the sphere. The camera looks along +z, so larger z is farther
// away and projects smaller. offset is subtracted from the result to centre
// content with an intrinsic size. ok is false when v sits at or behind the
// camera plane.
func Project(v mgl64.Vec3, focal float64, center, offset mgl64.Vec2) (Projection, bool) {
	denom := focal + v.Z()
	if denom <= 0 {
		return Projection{}, false
	}
	scale := focal / denom
	return Projection{
		Point: mgl64.Vec2{
			v.X()*scale + center.X() - offset.X(),
			v.Y()*scale + center.Y() - offset.Y(),
		},
		Scale: scale,
	}, true
}
