package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/iburimskiy/tagsphere/internal/config"
)

// Viewport is a width and height in pixels.
type Viewport struct {
	Width, Height float64
}

// ResolveViewport sizes the drawing area. A percentage width is taken from
// the container; the height then becomes a percentage of that width. Both
// are clipped to the window when its size is known.
func ResolveViewport(width, height config.Dimension, container, window Viewport) Viewport {
	var vp Viewport
	if width.Percent {
		vp.Width = math.Round(container.Width / 100 * width.Value)
		vp.Height = math.Round(vp.Width / 100 * height.Value)
	} else {
		vp.Width = width.Value
		vp.Height = height.Value
	}
	if window.Width > 0 {
		vp.Width = min(vp.Width, window.Width)
	}
	if window.Height > 0 {
		vp.Height = min(vp.Height, window.Height)
	}
	return vp
}

// CloudState is everything one frame needs besides the items themselves.
// Each step takes it by value and returns the updated copy.
type CloudState struct {
	Viewport Viewport
	Center   mgl64.Vec2
	Speed    mgl64.Vec2
	Rotation Rotation

	// Radius is the resting radius; the sphere is drawn at Radius*Factor.
	Radius   float64
	Diameter float64
	Factor   float64

	Pointer  mgl64.Vec2
	Steering bool
}

// NewState returns a resting, steering state sized for vp.
func NewState(opts config.Options, vp Viewport) CloudState {
	s := CloudState{Factor: 1, Steering: true, Rotation: NoRotation}
	return s.Resize(opts, vp)
}

// Resize recomputes the centre, angular speed and radius for a new viewport.
func (s CloudState) Resize(opts config.Options, vp Viewport) CloudState {
	s.Viewport = vp
	s.Center = mgl64.Vec2{vp.Width / 2, vp.Height / 2}
	s.Speed = AngularSpeed(opts.Speed, s.Center)

	d := min(vp.Width, vp.Height) * opts.Radius.Value / 100
	d = max(d, 1)
	s.Radius = max(d/2, opts.RadiusMin)
	s.Diameter = s.Radius * 2
	return s
}

// WorkingRadius is the radius the items currently sit on.
func (s CloudState) WorkingRadius() float64 {
	return s.Radius * s.Factor
}
