package game

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/tagsphere/internal/config"
)

type fontKey struct {
	bold, italic bool
}

// fontSet maps weight and style onto the Go font family. The configured
// family name is not consulted; only the Go fonts are bundled.
type fontSet struct {
	sources map[fontKey]*text.GoTextFaceSource
}

func newFontSet() (*fontSet, error) {
	files := map[fontKey][]byte{
		{false, false}: goregular.TTF,
		{true, false}:  gobold.TTF,
		{false, true}:  goitalic.TTF,
		{true, true}:   gobolditalic.TTF,
	}
	fs := &fontSet{sources: make(map[fontKey]*text.GoTextFaceSource, len(files))}
	for k, ttf := range files {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("load font (bold=%v italic=%v): %w", k.bold, k.italic, err)
		}
		fs.sources[k] = src
	}
	return fs, nil
}

// face builds a face for the given style. Item-level fields win over the
// defaults when set.
func (fs *fontSet) face(def config.FontStyle, size, weight, style string) *text.GoTextFace {
	if size == "" {
		size = def.Size
	}
	if weight == "" {
		weight = def.Weight
	}
	if style == "" {
		style = def.Style
	}
	k := fontKey{
		bold:   isBold(weight),
		italic: strings.EqualFold(style, "italic") || strings.EqualFold(style, "oblique"),
	}
	return &text.GoTextFace{Source: fs.sources[k], Size: parseSize(size, 12)}
}

func isBold(weight string) bool {
	switch strings.ToLower(weight) {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}
