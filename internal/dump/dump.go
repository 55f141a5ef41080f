// Package dump is a headless cloud surface that writes every frame as one
// JSON line.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iburimskiy/tagsphere/internal/cloud"
)

type Option func(*Surface)

// WithLimit calls done once n frames have been written and drops any frame
// presented after that. Zero means no limit.
func WithLimit(n uint64, done func()) Option {
	return func(s *Surface) {
		s.limit = n
		s.done = done
	}
}

type itemRecord struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
	URL   string `json:"url,omitempty"`
}

type frameItem struct {
	Index       int     `json:"index"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Scale       float64 `json:"scale"`
	Opacity     float64 `json:"opacity"`
	Highlighted bool    `json:"highlighted,omitempty"`
}

type tooltipRecord struct {
	Index int     `json:"index"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type record struct {
	Event   string         `json:"event"`
	Frame   uint64         `json:"frame,omitempty"`
	Items   []itemRecord   `json:"items,omitempty"`
	Frames  []frameItem    `json:"frameItems,omitempty"`
	Tooltip *tooltipRecord `json:"tooltip,omitempty"`
}

// Surface implements cloud.Surface. The first write error is kept and
// later writes are dropped.
type Surface struct {
	enc     *json.Encoder
	limit   uint64
	done    func()
	written uint64
	err     error
}

func New(w io.Writer, options ...Option) *Surface {
	s := &Surface{enc: json.NewEncoder(w)}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Surface) Build(items []cloud.Item) error {
	rec := record{Event: "build", Items: make([]itemRecord, len(items))}
	for i, it := range items {
		rec.Items[i] = itemRecord{
			Index: it.Index,
			Kind:  it.Kind.String(),
			Text:  it.Text,
			Image: it.Spec.Image,
			URL:   it.Spec.URL,
		}
	}
	s.write(rec)
	return s.err
}

func (s *Surface) Present(frame cloud.Frame) {
	if s.limit > 0 && s.written >= s.limit {
		return
	}
	rec := record{Event: "frame", Frame: frame.Number, Frames: make([]frameItem, len(frame.Items))}
	for i, fi := range frame.Items {
		rec.Frames[i] = frameItem(fi)
	}
	if a := frame.Tooltip; a != nil {
		rec.Tooltip = &tooltipRecord{Index: a.Index, Text: a.Text, X: a.X, Y: a.Y}
	}
	s.write(rec)
	s.written++
	if s.limit > 0 && s.written == s.limit && s.done != nil {
		s.done()
	}
}

func (s *Surface) Teardown() {
	s.write(record{Event: "teardown"})
}

// Frames is the number of frames presented so far.
func (s *Surface) Frames() uint64 { return s.written }

func (s *Surface) Err() error { return s.err }

func (s *Surface) write(rec record) {
	if s.err != nil {
		return
	}
	if err := s.enc.Encode(rec); err != nil {
		s.err = fmt.Errorf("dump %s: %w", rec.Event, err)
	}
}
