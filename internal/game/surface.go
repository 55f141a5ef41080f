package game

import (
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/tagsphere/internal/cloud"
	"github.com/iburimskiy/tagsphere/internal/config"
)

// element is what the surface paints for one item.
type element struct {
	index  int
	kind   cloud.Kind
	label  string
	face   *text.GoTextFace
	color  color.Color
	image  *ebiten.Image
	width  float64
	height float64
	url    string
	target string
}

// Surface paints cloud frames with ebiten. It keeps the latest frame so
// Draw, which ebiten may call at a different rate than Update, always has
// something to show.
type Surface struct {
	opts       config.Options
	fonts      *fontSet
	logger     *log.Logger
	background color.Color

	elements map[int]*element
	frame    cloud.Frame

	// loadImage is swapped out in tests.
	loadImage func(path string) (*ebiten.Image, error)
}

func NewSurface(opts config.Options, logger *log.Logger) (*Surface, error) {
	fonts, err := newFontSet()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Surface{
		opts:       opts,
		fonts:      fonts,
		logger:     logger,
		background: parseColor(opts.BackgroundColor, color.Black),
		elements:   make(map[int]*element),
		loadImage:  loadImageFile,
	}, nil
}

func loadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// Build prepares one element per item. Items whose assets cannot be loaded
// are left out of the painting; the rest of the cloud is unaffected.
func (s *Surface) Build(items []cloud.Item) error {
	for _, it := range items {
		el, err := s.paint(it)
		if err != nil {
			s.logger.Printf("item %d: %v", it.Index, err)
			continue
		}
		s.elements[it.Index] = el
	}
	return nil
}

func (s *Surface) paint(it cloud.Item) (*element, error) {
	el := &element{
		index:  it.Index,
		kind:   it.Kind,
		url:    it.Spec.URL,
		target: it.Spec.Target,
	}
	switch it.Kind {
	case cloud.KindLabel:
		el.label = it.Text
		el.face = s.fonts.face(s.opts.Font, it.Spec.FontSize, it.Spec.FontWeight, it.Spec.FontStyle)
		el.color = labelColor(it.Index, it.Spec.FontColor, s.opts.Font.Color)
		el.width, el.height = text.Measure(el.label, el.face, el.face.Size)
	case cloud.KindImage:
		img, err := s.loadImage(it.Spec.Image)
		if err != nil {
			return nil, fmt.Errorf("load image %q: %w", it.Spec.Image, err)
		}
		el.image = img
		el.width, el.height = it.Spec.Width, it.Spec.Height
		if el.width == 0 || el.height == 0 {
			b := img.Bounds()
			el.width, el.height = float64(b.Dx()), float64(b.Dy())
		}
	default:
		return nil, fmt.Errorf("unsupported item kind %s", it.Kind)
	}
	return el, nil
}

func (s *Surface) Present(frame cloud.Frame) {
	s.frame = frame
}

func (s *Surface) Teardown() {
	for _, el := range s.elements {
		if el.image != nil {
			el.image.Deallocate()
		}
	}
	s.elements = make(map[int]*element)
	s.frame = cloud.Frame{}
}

// Frame returns the last presented frame.
func (s *Surface) Frame() cloud.Frame { return s.frame }

// bounds is the screen rectangle of an element at its frame position.
// Labels are centred on their point; images are already offset by the
// cloud to put their top-left corner there.
func (s *Surface) bounds(el *element, fi cloud.FrameItem) (x, y, w, h float64) {
	if el.kind == cloud.KindLabel {
		return fi.X - el.width/2, fi.Y - el.height/2, el.width, el.height
	}
	return fi.X, fi.Y, el.width, el.height
}

// HitTest returns the topmost item under (x, y).
func (s *Surface) HitTest(x, y float64) (int, bool) {
	items := s.frame.Items
	for i := len(items) - 1; i >= 0; i-- {
		el, ok := s.elements[items[i].Index]
		if !ok {
			continue
		}
		bx, by, bw, bh := s.bounds(el, items[i])
		if inRect(x, y, bx, by, bw, bh) {
			return items[i].Index, true
		}
	}
	return -1, false
}

// Link returns the link target of an item, if it has one.
func (s *Surface) Link(index int) (url, target string, ok bool) {
	el, found := s.elements[index]
	if !found || el.url == "" {
		return "", "", false
	}
	return el.url, el.target, true
}

// Draw paints the background and every item in frame order.
func (s *Surface) Draw(screen *ebiten.Image, vp cloud.Viewport) {
	if s.opts.DrawBackground {
		vector.DrawFilledRect(screen, 0, 0, float32(vp.Width), float32(vp.Height), s.background, false)
	}
	for _, fi := range s.frame.Items {
		el, ok := s.elements[fi.Index]
		if !ok {
			continue
		}
		alpha := float32(clamp01(fi.Opacity))
		switch el.kind {
		case cloud.KindLabel:
			op := &text.DrawOptions{}
			op.GeoM.Translate(fi.X, fi.Y)
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
			op.ColorScale.ScaleWithColor(el.color)
			op.ColorScale.ScaleAlpha(alpha)
			text.Draw(screen, el.label, el.face, op)
		case cloud.KindImage:
			b := el.image.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(el.width/float64(b.Dx()), el.height/float64(b.Dy()))
			op.GeoM.Translate(fi.X, fi.Y)
			op.ColorScale.ScaleAlpha(alpha)
			screen.DrawImage(el.image, op)
		}
	}
}
