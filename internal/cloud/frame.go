package cloud

import (
	"cmp"
	"slices"

	"github.com/iburimskiy/tagsphere/internal/config"
)

// Advance computes one frame. While steering it turns every item by the
// pointer-derived rotation and fades by depth; otherwise items hold still and
// ease toward the highlighted or dimmed opacity. Items are updated in place
// and left sorted farthest first.
func Advance(state CloudState, items []Item, opts config.Options) (CloudState, Frame) {
	state.Rotation = PointerRotation(state.Speed, opts.Speed, state.Pointer)
	multiplier := TweenMultiplier(state.Factor, opts.AnimatingRadiusLimit)

	for i := range items {
		it := &items[i]
		if state.Steering {
			it.Position = state.Rotation.Apply(it.Position)
		}

		if p, ok := Project(it.Position, opts.FOV, state.Center, it.Offset); ok {
			it.Screen = p.Point
			it.Scale = p.Scale
		}

		if state.Steering {
			it.Opacity = DepthOpacity(it.Position.Z(), state.Radius, opts.OpacityOut)
		} else {
			target := opts.OpacityOut
			if it.Highlighted {
				target = opts.OpacityOver
			}
			it.Opacity = EaseOpacity(it.Opacity, target, opts.OpacitySpeed)
		}
		it.Display = it.Opacity * multiplier
	}

	SortByDepth(items)

	frame := Frame{Items: make([]FrameItem, len(items))}
	for i, it := range items {
		frame.Items[i] = FrameItem{
			Index:       it.Index,
			X:           it.Screen.X(),
			Y:           it.Screen.Y(),
			Scale:       it.Scale,
			Opacity:     it.Display,
			Highlighted: it.Highlighted,
		}
		if it.Highlighted && it.Tooltip != "" {
			frame.Tooltip = &TooltipAnchor{
				Index: it.Index,
				Text:  it.Tooltip,
				X:     it.Screen.X() - opts.Tooltip.DiffX,
				Y:     it.Screen.Y() - opts.Tooltip.DiffY,
			}
		}
	}
	return state, frame
}

// SortByDepth orders items by descending z. Items at equal depth keep their
// relative order.
func SortByDepth(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(b.Position.Z(), a.Position.Z())
	})
}
