package cloud

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tells the surface how to paint an item.
type Kind int

const (
	KindInvalid Kind = iota
	KindLabel
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindImage:
		return "image"
	default:
		return "invalid"
	}
}

// ItemSpec describes one tag before it is placed on the sphere.
type ItemSpec struct {
	Label  string  `json:"label,omitempty"`
	Image  string  `json:"image,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	URL     string `json:"url,omitempty"`
	Target  string `json:"target,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`

	FontColor   string `json:"fontColor,omitempty"`
	FontFamily  string `json:"fontFamily,omitempty"`
	FontSize    string `json:"fontSize,omitempty"`
	FontWeight  string `json:"fontWeight,omitempty"`
	FontStyle   string `json:"fontStyle,omitempty"`
	FontStretch string `json:"fontStretch,omitempty"`
}

// Kind reports whether the spec is a label, an image or neither. A label
// wins when both are set.
func (s ItemSpec) Kind() Kind {
	switch {
	case s.Label != "":
		return KindLabel
	case s.Image != "":
		return KindImage
	default:
		return KindInvalid
	}
}

// Item is one tag placed on the sphere.
type Item struct {
	Index int
	Kind  Kind
	Spec  ItemSpec

	// Text and Tooltip are the display strings after case folding.
	Text    string
	Tooltip string

	Position mgl64.Vec3
	Screen   mgl64.Vec2
	Offset   mgl64.Vec2
	Scale    float64

	Highlighted bool

	// Opacity is the eased base value; Display has the tween multiplier applied.
	Opacity float64
	Display float64
}

func newItem(index int, spec ItemSpec, pos mgl64.Vec3, upperLabel, upperTooltip bool) Item {
	it := Item{
		Index:    index,
		Kind:     spec.Kind(),
		Spec:     spec,
		Text:     spec.Label,
		Tooltip:  spec.Tooltip,
		Position: pos,
		Opacity:  1,
		Display:  1,
	}
	if upperLabel {
		it.Text = strings.ToUpper(it.Text)
	}
	if upperTooltip {
		it.Tooltip = strings.ToUpper(it.Tooltip)
	}
	// Images are centred on their projected point; labels are anchored by the surface.
	if it.Kind == KindImage && spec.Width != 0 && spec.Height != 0 {
		it.Offset = mgl64.Vec2{spec.Width / 2, spec.Height / 2}
	}
	return it
}
