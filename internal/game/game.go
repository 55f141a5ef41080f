// Package game hosts a tag cloud in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/tagsphere/internal/cloud"
	"github.com/iburimskiy/tagsphere/internal/config"
	"github.com/iburimskiy/tagsphere/internal/tags"
)

var errBusy = errors.New("radius animation in progress")

// Cue is played when the pointer lands on a tag.
type Cue interface {
	Blip()
}

// swap replaces the tag set behind an expand/contract fade.
type swap struct {
	specs []cloud.ItemSpec
	wait  *cloud.Completion // nil when the sphere is already expanded

	// contracting is set once the new set is built and fading in.
	contracting bool
}

type Game struct {
	opts    config.Options
	cloud   *cloud.Cloud
	surface *Surface
	tooltip *tooltip
	cue     Cue
	logger  *log.Logger

	// window and canvas
	width, height int
	canvas        *ebiten.Image

	// input edge detection
	prevKey          map[ebiten.Key]bool
	cursorX, cursorY int
	hovered          int

	button  button
	pending *swap

	lastErr error
}

// NewGame builds a cloud from specs inside a window of the configured size.
// cue may be nil.
func NewGame(opts config.Options, specs []cloud.ItemSpec, cue Cue, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	surface, err := NewSurface(opts, logger)
	if err != nil {
		return nil, err
	}
	win := cloud.Viewport{Width: config.WindowWidth, Height: config.WindowHeight}
	c, err := cloud.New(opts, surface, cloud.WithLogger(logger), cloud.WithContainer(win, win))
	if err != nil {
		return nil, err
	}
	if err := c.Build(specs); err != nil {
		return nil, err
	}
	return &Game{
		opts:    opts,
		cloud:   c,
		surface: surface,
		tooltip: newTooltip(opts.Tooltip, surface.fonts),
		cue:     cue,
		logger:  logger,
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		prevKey: map[ebiten.Key]bool{},
		hovered: -1,
		button:  button{label: "Open tags"},
	}, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.button.hovered = g.button.contains(mouseX, mouseY)
	if g.button.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.button.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.button.pressed && g.button.hovered {
			if err := g.openTagsDialog(); err != nil {
				g.lastErr = err
			}
		} else if !g.button.hovered {
			g.follow(mouseX, mouseY)
		}
		g.button.pressed = false
	}

	g.track(mouseX, mouseY)

	if justPressed(ebiten.KeySpace) {
		g.toggleRadius()
	}
	if justPressed(ebiten.KeyR) {
		g.cloud.ResetRadius()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	g.advanceSwap()
	g.cloud.Scheduler().Tick()
	g.tooltip.update(g.surface.Frame().Tooltip)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	vp := g.cloud.State().Viewport
	w, h := max(int(vp.Width), 1), max(int(vp.Height), 1)
	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(w, h)
	}
	g.canvas.Clear()
	g.surface.Draw(g.canvas, vp)
	g.tooltip.draw(g.canvas)

	ox, oy := g.origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(g.canvas, op)

	g.button.draw(screen)

	status := fmt.Sprintf("%d tags - Space: expand/contract, R: reset, Esc/Q: quit", len(g.cloud.Items()))
	if g.pending != nil {
		status = "Loading tags..."
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		win := cloud.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
		g.cloud.Resize(win, win)
	}
	return g.width, g.height
}

// Close tears the cloud down. The game must not be run afterwards.
func (g *Game) Close() {
	g.cloud.Teardown()
	if g.canvas != nil {
		g.canvas.Deallocate()
		g.canvas = nil
	}
}

// origin is where the cloud's viewport sits in the window.
func (g *Game) origin() (float64, float64) {
	vp := g.cloud.State().Viewport
	return (float64(g.width) - vp.Width) / 2, (float64(g.height) - vp.Height) / 2
}

// track feeds cursor movement and tag hovering to the cloud.
func (g *Game) track(mouseX, mouseY int) {
	ox, oy := g.origin()
	x, y := float64(mouseX)-ox, float64(mouseY)-oy

	idx, ok := g.surface.HitTest(x, y)
	if !ok {
		idx = -1
	}
	if idx != g.hovered {
		if idx >= 0 && g.cloud.Hover(idx) {
			if g.cue != nil {
				g.cue.Blip()
			}
		} else {
			g.cloud.Unhover()
			idx = -1
		}
		g.hovered = idx
	}

	if mouseX != g.cursorX || mouseY != g.cursorY {
		g.cursorX, g.cursorY = mouseX, mouseY
		g.cloud.PointerMove(x, y)
	}
}

// follow logs the link of the tag under the cursor.
func (g *Game) follow(mouseX, mouseY int) {
	ox, oy := g.origin()
	idx, ok := g.surface.HitTest(float64(mouseX)-ox, float64(mouseY)-oy)
	if !ok {
		return
	}
	if url, target, ok := g.surface.Link(idx); ok {
		if target == "" {
			target = "_self"
		}
		g.logger.Printf("open %s (target %s)", url, target)
	}
}

func (g *Game) toggleRadius() {
	var ok bool
	switch g.cloud.Tween() {
	case cloud.Resting:
		_, ok = g.cloud.Expand()
	case cloud.Expanded:
		_, ok = g.cloud.Contract()
	}
	if !ok {
		g.lastErr = errBusy
		return
	}
	g.lastErr = nil
}

func (g *Game) openTagsDialog() error {
	path, err := tags.Pick()
	if err != nil || path == "" {
		return err
	}
	specs, err := tags.Load(path)
	if err != nil {
		return err
	}
	g.logger.Printf("loaded %d tags from %s", len(specs), path)
	return g.beginSwap(specs)
}

// beginSwap fades the current set out. The new set is built once the
// sphere is fully expanded.
func (g *Game) beginSwap(specs []cloud.ItemSpec) error {
	if g.pending != nil {
		return errBusy
	}
	if g.cloud.Tween() == cloud.Expanded {
		g.pending = &swap{specs: specs}
		return nil
	}
	wait, ok := g.cloud.Expand()
	if !ok {
		return errBusy
	}
	g.pending = &swap{specs: specs, wait: wait}
	return nil
}

func (g *Game) advanceSwap() {
	p := g.pending
	if p == nil {
		return
	}
	var err error
	if p.wait != nil {
		select {
		case <-p.wait.Done():
		default:
			return
		}
		err = p.wait.Err()
	}
	if err != nil || p.contracting {
		g.pending = nil
		if err != nil {
			g.logger.Printf("tag swap stopped: %v", err)
		}
		return
	}

	if err := g.cloud.SetItems(p.specs); err != nil {
		g.pending = nil
		g.lastErr = err
		return
	}
	g.hovered = -1
	wait, ok := g.cloud.Contract()
	if !ok {
		g.pending = nil
		return
	}
	p.wait = wait
	p.contracting = true
	g.lastErr = nil
}
