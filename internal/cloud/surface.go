package cloud

// Surface paints what the cloud computes. Build receives the items in their
// initial order, Present is called once per frame with items in paint order,
// and Teardown releases everything Build acquired.
type Surface interface {
	Build(items []Item) error
	Present(frame Frame)
	Teardown()
}

// FrameItem is the per-item output of one frame.
type FrameItem struct {
	Index       int
	X, Y        float64
	Scale       float64
	Opacity     float64
	Highlighted bool
}

// TooltipAnchor places the tooltip of the highlighted item.
type TooltipAnchor struct {
	Index int
	Text  string
	X, Y  float64
}

// Frame lists items farthest first, so painting in order leaves the nearest
// items on top.
type Frame struct {
	Number  uint64
	Items   []FrameItem
	Tooltip *TooltipAnchor
}
