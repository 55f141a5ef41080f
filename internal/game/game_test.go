package game

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/tagsphere/internal/cloud"
	"github.com/iburimskiy/tagsphere/internal/config"
)

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"red", fallback},
		{"", fallback},
	}
	for _, tt := range tests {
		r, g, b, a := parseColor(tt.in, fallback).RGBA()
		got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLabelColor(t *testing.T) {
	same := func(a, b color.Color) bool {
		r1, g1, b1, a1 := a.RGBA()
		r2, g2, b2, a2 := b.RGBA()
		return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
	}
	if !same(labelColor(0, "", "#fff"), labelColor(len(labelPalette), "", "#fff")) {
		t.Error("palette does not cycle by index")
	}
	if same(labelColor(0, "", "#fff"), labelColor(1, "", "#fff")) {
		t.Error("adjacent labels share a colour")
	}
	if !same(labelColor(3, "#00ff00", "#fff"), color.RGBA{G: 255, A: 255}) {
		t.Error("item colour override ignored")
	}
	if !same(labelColor(3, "bogus", "#fff"), color.White) {
		t.Error("bad override should fall back to the default colour")
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]float64{"12": 12, "15px": 15, " 9.5 ": 9.5, "": 7, "-3": 7, "big": 7}
	for in, want := range tests {
		if got := parseSize(in, 7); got != want {
			t.Errorf("parseSize(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsBold(t *testing.T) {
	tests := map[string]bool{"bold": true, "BOLDER": true, "700": true, "600": true, "500": false, "normal": false, "": false}
	for in, want := range tests {
		if got := isBold(in); got != want {
			t.Errorf("isBold(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTooltipAlign(t *testing.T) {
	tests := map[string]text.Align{"left": text.AlignStart, "middle": text.AlignCenter, "end": text.AlignEnd, "": text.AlignStart}
	for in, want := range tests {
		if got := tooltipAlign(in); got != want {
			t.Errorf("tooltipAlign(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTooltipFade(t *testing.T) {
	fonts, err := newFontSet()
	if err != nil {
		t.Fatal(err)
	}
	tip := newTooltip(config.Default().Tooltip, fonts)
	anchor := &cloud.TooltipAnchor{Index: 2, Text: "hello", X: 40, Y: 30}

	prev := 0.0
	for i := 0; i < 10; i++ {
		tip.update(anchor)
		if tip.alpha < prev {
			t.Fatalf("alpha fell from %v to %v while fading in", prev, tip.alpha)
		}
		prev = tip.alpha
	}
	if !tip.visible() || tip.text != "hello" || tip.x != 40 || tip.y != 30 {
		t.Fatalf("tooltip after fade-in: %+v", tip)
	}

	for i := 0; i < 120; i++ {
		tip.update(nil)
	}
	if tip.visible() {
		t.Fatalf("tooltip still visible after fade-out, alpha %v", tip.alpha)
	}
}

func TestHitTest(t *testing.T) {
	s := &Surface{
		elements: map[int]*element{
			0: {index: 0, kind: cloud.KindLabel, width: 20, height: 10, url: "https://go.dev"},
			1: {index: 1, kind: cloud.KindImage, width: 16, height: 16},
		},
	}
	s.Present(cloud.Frame{Items: []cloud.FrameItem{
		{Index: 0, X: 100, Y: 100},
		{Index: 1, X: 95, Y: 98},
		{Index: 5, X: 0, Y: 0}, // not built
	}})

	tests := []struct {
		x, y float64
		want int
		ok   bool
	}{
		{100, 100, 1, true}, // both overlap; the later one is on top
		{91, 96, 0, true},
		{110, 113, 1, true},
		{0, 0, -1, false},
	}
	for _, tt := range tests {
		got, ok := s.HitTest(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("HitTest(%v, %v) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}

	if url, target, ok := s.Link(0); !ok || url != "https://go.dev" || target != "" {
		t.Errorf("Link(0) = %q, %q, %v", url, target, ok)
	}
	if _, _, ok := s.Link(1); ok {
		t.Error("Link(1) reported a link for an item without one")
	}
}

func TestBuildSkipsBrokenImages(t *testing.T) {
	s, err := NewSurface(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	s.loadImage = func(path string) (*ebiten.Image, error) {
		return nil, errors.New("no such image")
	}
	items := []cloud.Item{
		{Index: 0, Kind: cloud.KindLabel, Text: "go"},
		{Index: 1, Kind: cloud.KindImage, Spec: cloud.ItemSpec{Image: "missing.png"}},
	}
	if err := s.Build(items); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(s.elements) != 1 || s.elements[0] == nil {
		t.Fatalf("elements = %v, want only the label", s.elements)
	}
	if el := s.elements[0]; el.width <= 0 || el.height <= 0 {
		t.Fatalf("label measured %vx%v", el.width, el.height)
	}

	s.Teardown()
	if len(s.elements) != 0 {
		t.Fatal("Teardown kept elements")
	}
}

func TestSwapTags(t *testing.T) {
	opts := config.Default()
	g, err := NewGame(opts, []cloud.ItemSpec{{Label: "a"}, {Label: "b"}, {Label: "c"}}, nil, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	defer g.Close()

	next := []cloud.ItemSpec{{Label: "x"}, {Label: "y"}, {Label: "z"}, {Label: "w"}, {Label: "v"}}
	if err := g.beginSwap(next); err != nil {
		t.Fatalf("beginSwap: %v", err)
	}
	if err := g.beginSwap(next); !errors.Is(err, errBusy) {
		t.Fatalf("second beginSwap error = %v, want errBusy", err)
	}

	for i := 0; i < 100 && g.pending != nil; i++ {
		g.advanceSwap()
		g.cloud.Scheduler().Tick()
	}
	if g.pending != nil {
		t.Fatal("swap did not finish")
	}
	if n := len(g.cloud.Items()); n != len(next) {
		t.Fatalf("cloud has %d items after swap, want %d", n, len(next))
	}
	if g.cloud.Tween() != cloud.Resting || g.cloud.Factor() != 1 {
		t.Fatalf("tween %s at factor %v after swap", g.cloud.Tween(), g.cloud.Factor())
	}
	if len(g.surface.elements) != len(next) {
		t.Fatalf("surface has %d elements, want %d", len(g.surface.elements), len(next))
	}
}

func TestToggleRadius(t *testing.T) {
	g, err := NewGame(config.Default(), []cloud.ItemSpec{{Label: "a"}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	g.toggleRadius()
	if g.cloud.Tween() != cloud.Expanding {
		t.Fatalf("tween = %s after toggle, want expanding", g.cloud.Tween())
	}
	g.toggleRadius()
	if !errors.Is(g.lastErr, errBusy) {
		t.Fatalf("toggle during a tween: lastErr = %v", g.lastErr)
	}
	for i := 0; i < 10; i++ {
		g.cloud.Scheduler().Tick()
	}
	if g.cloud.Tween() != cloud.Expanded {
		t.Fatalf("tween = %s, want expanded", g.cloud.Tween())
	}
	g.toggleRadius()
	if g.lastErr != nil || g.cloud.Tween() != cloud.Contracting {
		t.Fatalf("tween = %s, lastErr = %v", g.cloud.Tween(), g.lastErr)
	}
}
