package cloud

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Layout distributes n points on the unit sphere along a golden-spiral-like
// path. The result depends only on n.
func Layout(n int) []mgl64.Vec3 {
	if n <= 0 {
		return nil
	}
	out := make([]mgl64.Vec3, n)
	len1 := float64(n + 1)
	turns := math.Sqrt(len1 * math.Pi)
	for i := range out {
		k := float64(i + 1)
		phi := math.Acos(-1 + 2*k/len1)
		theta := turns * phi
		out[i] = mgl64.Vec3{
			math.Cos(theta) * math.Sin(phi),
			math.Sin(theta) * math.Sin(phi),
			math.Cos(phi),
		}
	}
	return out
}

// Rescale projects v onto the sphere of the given radius around the origin.
func Rescale(v mgl64.Vec3, radius float64) (mgl64.Vec3, error) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return v, fmt.Errorf("rescale %v: %w", v, ErrDegenerateVector)
	}
	return v.Mul(radius / l), nil
}
