package cloud

// DepthOpacity fades items with their distance from the camera. Items on the
// near pole are fully opaque, items on the far pole fall to floor.
func DepthOpacity(z, radius, floor float64) float64 {
	if radius <= 0 {
		return clamp01(floor)
	}
	return clamp01(max((radius-z)/(2*radius), floor))
}

// EaseOpacity moves current a 1/speed fraction of the way to target. A speed
// of 1 or less reaches target at once.
func EaseOpacity(current, target, speed float64) float64 {
	if speed <= 1 {
		return target
	}
	return current + (target-current)/speed
}

// TweenMultiplier fades the whole cloud out as the radius factor grows from
// 1 to ceiling.
func TweenMultiplier(factor, ceiling float64) float64 {
	if ceiling <= 1 {
		return 1
	}
	return clamp01(1 - (factor-1)/(ceiling-1))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
