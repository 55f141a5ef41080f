package game

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/tagsphere/internal/cloud"
	"github.com/iburimskiy/tagsphere/internal/config"
)

// tooltip follows the highlighted item and fades in and out on a spring.
type tooltip struct {
	spring harmonica.Spring
	alpha  float64
	vel    float64

	text  string
	x, y  float64
	align text.Align
	face  *text.GoTextFace
	color color.Color
}

func newTooltip(style config.TooltipStyle, fonts *fontSet) *tooltip {
	return &tooltip{
		spring: harmonica.NewSpring(harmonica.FPS(config.TicksPerSecond), config.TooltipFrequency, config.TooltipDamping),
		align:  tooltipAlign(style.TextAnchor),
		face:   fonts.face(style.FontStyle, "", "", ""),
		color:  parseColor(style.Color, color.White),
	}
}

func tooltipAlign(anchor string) text.Align {
	switch strings.ToLower(anchor) {
	case "middle", "center":
		return text.AlignCenter
	case "end", "right":
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// update moves the tooltip one tick toward the anchor. A nil anchor fades
// the last text out in place.
func (t *tooltip) update(anchor *cloud.TooltipAnchor) {
	target := 0.0
	if anchor != nil {
		t.text = anchor.Text
		t.x, t.y = anchor.X, anchor.Y
		target = 1
	}
	t.alpha, t.vel = t.spring.Update(t.alpha, t.vel, target)
	if target == 0 && t.alpha < 0.01 {
		t.alpha, t.vel = 0, 0
		t.text = ""
	}
}

func (t *tooltip) visible() bool {
	return t.text != "" && t.alpha > 0
}

func (t *tooltip) draw(screen *ebiten.Image) {
	if !t.visible() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.x, t.y)
	op.PrimaryAlign = t.align
	op.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(t.color)
	op.ColorScale.ScaleAlpha(float32(clamp01(t.alpha)))
	text.Draw(screen, t.text, t.face, op)
}
