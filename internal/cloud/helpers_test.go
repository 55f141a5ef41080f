package cloud

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/iburimskiy/tagsphere/internal/config"
)

type recordingSurface struct {
	builds    [][]Item
	frames    []Frame
	teardowns int
	buildErr  error
}

func (s *recordingSurface) Build(items []Item) error {
	if s.buildErr != nil {
		return s.buildErr
	}
	s.builds = append(s.builds, items)
	return nil
}

func (s *recordingSurface) Present(frame Frame) { s.frames = append(s.frames, frame) }
func (s *recordingSurface) Teardown()           { s.teardowns++ }

func (s *recordingSurface) last() Frame {
	if len(s.frames) == 0 {
		return Frame{}
	}
	return s.frames[len(s.frames)-1]
}

func labels(names ...string) []ItemSpec {
	specs := make([]ItemSpec, len(names))
	for i, n := range names {
		specs[i] = ItemSpec{Label: n}
	}
	return specs
}

func newTestCloud(t *testing.T, opts config.Options) (*Cloud, *recordingSurface) {
	t.Helper()
	surface := &recordingSurface{}
	c, err := New(opts, surface, WithContainer(Viewport{480, 480}, Viewport{1024, 768}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, surface
}

func itemByIndex(t *testing.T, items []Item, index int) Item {
	t.Helper()
	for _, it := range items {
		if it.Index == index {
			return it
		}
	}
	t.Fatalf("no item with index %d", index)
	return Item{}
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}
