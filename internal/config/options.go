package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidOptions is returned by Validate when an option is out of range.
var ErrInvalidOptions = errors.New("invalid options")

// Dimension is either an absolute pixel size or a percentage.
type Dimension struct {
	Value   float64
	Percent bool
}

func Pixels(v float64) Dimension { return Dimension{Value: v} }
func Percent(v float64) Dimension { return Dimension{Value: v, Percent: true} }

// ParseDimension accepts "480", "480px" or "70%".
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "%"), "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("dimension %q: %w", s, err)
	}
	return Dimension{Value: v, Percent: pct}, nil
}

func (d Dimension) String() string {
	v := strconv.FormatFloat(d.Value, 'f', -1, 64)
	if d.Percent {
		return v + "%"
	}
	return v
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	if d.Percent {
		return json.Marshal(d.String())
	}
	return json.Marshal(d.Value)
}

func (d *Dimension) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*d = Dimension{Value: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("dimension must be a number or string: %w", err)
	}
	parsed, err := ParseDimension(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// FontStyle is handed to the render surface untouched.
type FontStyle struct {
	Family      string `json:"family"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Weight      string `json:"weight"`
	Style       string `json:"style"`
	Stretch     string `json:"stretch"`
	ToUpperCase bool   `json:"toUpperCase"`
}

// TooltipStyle extends FontStyle with placement relative to the hovered tag.
type TooltipStyle struct {
	FontStyle
	TextAnchor string  `json:"textAnchor"`
	DiffX      float64 `json:"diffX"`
	DiffY      float64 `json:"diffY"`
}

// Options configures a tag cloud. Zero values are not meaningful; start from
// Default and override.
type Options struct {
	Width     Dimension `json:"width"`
	Height    Dimension `json:"height"`
	Radius    Dimension `json:"radius"` // always read as a percentage of the smaller viewport side
	RadiusMin float64   `json:"radiusMin"`

	DrawBackground  bool   `json:"drawBackground"`
	BackgroundColor string `json:"backgroundColor"`

	OpacityOver  float64 `json:"opacityOver"`
	OpacityOut   float64 `json:"opacityOut"`
	OpacitySpeed float64 `json:"opacitySpeed"`

	FOV   float64 `json:"fov"`
	Speed float64 `json:"speed"`

	AnimatingSpeed       float64 `json:"animatingSpeed"`
	AnimatingRadiusLimit float64 `json:"animatingRadiusLimit"`

	Font    FontStyle    `json:"font"`
	Tooltip TooltipStyle `json:"tooltip"`

	// HoverSound is an optional wav, mp3 or flac file played when a tag is hovered.
	HoverSound string `json:"hoverSound"`
	Mute       bool   `json:"mute"`
}

// Default returns the stock option set.
func Default() Options {
	return Options{
		Width:                Pixels(480),
		Height:               Pixels(480),
		Radius:               Percent(70),
		RadiusMin:            75,
		DrawBackground:       true,
		BackgroundColor:      "#000",
		OpacityOver:          1.0,
		OpacityOut:           0.05,
		OpacitySpeed:         6,
		FOV:                  800,
		Speed:                0.5,
		AnimatingSpeed:       0.1,
		AnimatingRadiusLimit: 1.3,
		Font: FontStyle{
			Family:  "Arial, sans-serif",
			Size:    "12",
			Color:   "#fff",
			Weight:  "normal",
			Style:   "normal",
			Stretch: "normal",
		},
		Tooltip: TooltipStyle{
			FontStyle: FontStyle{
				Family:  "Arial, sans-serif",
				Size:    "15",
				Color:   "#fff",
				Weight:  "normal",
				Style:   "normal",
				Stretch: "normal",
			},
			TextAnchor: "left",
			DiffX:      0,
			DiffY:      10,
		},
	}
}

// Validate reports the first out-of-range option.
func (o Options) Validate() error {
	switch {
	case o.Width.Value <= 0 || o.Height.Value <= 0:
		return fmt.Errorf("%w: width and height must be positive, got %s x %s", ErrInvalidOptions, o.Width, o.Height)
	case o.Radius.Value <= 0:
		return fmt.Errorf("%w: radius must be positive, got %s", ErrInvalidOptions, o.Radius)
	case o.RadiusMin < 0:
		return fmt.Errorf("%w: radiusMin must not be negative, got %g", ErrInvalidOptions, o.RadiusMin)
	case o.OpacityOut < 0 || o.OpacityOut > 1 || o.OpacityOver < 0 || o.OpacityOver > 1:
		return fmt.Errorf("%w: opacities must be within [0,1], got over=%g out=%g", ErrInvalidOptions, o.OpacityOver, o.OpacityOut)
	case o.OpacitySpeed < 1:
		return fmt.Errorf("%w: opacitySpeed must be at least 1, got %g", ErrInvalidOptions, o.OpacitySpeed)
	case o.FOV <= 0:
		return fmt.Errorf("%w: fov must be positive, got %g", ErrInvalidOptions, o.FOV)
	case o.AnimatingSpeed <= 0:
		return fmt.Errorf("%w: animatingSpeed must be positive, got %g", ErrInvalidOptions, o.AnimatingSpeed)
	case o.AnimatingRadiusLimit <= 1:
		return fmt.Errorf("%w: animatingRadiusLimit must be greater than 1, got %g", ErrInvalidOptions, o.AnimatingRadiusLimit)
	}
	return nil
}

// Parse decodes a JSON option document over the defaults.
func Parse(data []byte) (Options, error) {
	opts := Default()
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Load reads a JSON option file. An empty path yields the defaults.
func Load(path string) (Options, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return Parse(data)
}
