package dump

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/iburimskiy/tagsphere/internal/cloud"
	"github.com/iburimskiy/tagsphere/internal/config"
)

func decode(t *testing.T, buf *bytes.Buffer) []record {
	t.Helper()
	var out []record
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		out = append(out, rec)
	}
	return out
}

func TestCloudFrames(t *testing.T) {
	var buf bytes.Buffer
	stopped := 0
	s := New(&buf, WithLimit(3, func() { stopped++ }))

	vp := cloud.Viewport{Width: 480, Height: 480}
	c, err := cloud.New(config.Default(), s, cloud.WithContainer(vp, vp))
	if err != nil {
		t.Fatal(err)
	}
	specs := []cloud.ItemSpec{{Label: "go"}, {Label: "ebiten", URL: "https://ebitengine.org"}, {Image: "icon.png", Width: 16, Height: 16}}
	if err := c.Build(specs); err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 4; i++ {
		c.Scheduler().Tick()
	}
	c.Teardown()

	if stopped != 1 {
		t.Fatalf("done called %d times, want 1", stopped)
	}
	if s.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", s.Frames())
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}

	recs := decode(t, &buf)
	if len(recs) != 5 {
		t.Fatalf("got %d records, want build + 3 frames + teardown", len(recs))
	}
	if recs[0].Event != "build" || len(recs[0].Items) != 3 {
		t.Fatalf("first record = %+v", recs[0])
	}
	if recs[0].Items[2].Kind != "image" || recs[0].Items[1].URL == "" {
		t.Fatalf("build items = %+v", recs[0].Items)
	}
	for i, rec := range recs[1:4] {
		if rec.Event != "frame" || len(rec.Frames) != 3 {
			t.Fatalf("record %d = %+v", i+1, rec)
		}
		if rec.Frame != uint64(i+1) {
			t.Fatalf("record %d frame = %d", i+1, rec.Frame)
		}
	}
	if recs[4].Event != "teardown" {
		t.Fatalf("last record = %+v", recs[4])
	}
}

func TestLimitDropsLateFrames(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, WithLimit(2, func() {}))
	for n := 0; n < 5; n++ {
		s.Present(cloud.Frame{Number: uint64(n + 1)})
	}
	if s.Frames() != 2 {
		t.Fatalf("Frames() = %d, want 2", s.Frames())
	}
	recs := decode(t, &buf)
	if len(recs) != 2 || recs[1].Frame != 2 {
		t.Fatalf("got %+v", recs)
	}
}

func TestTooltip(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Present(cloud.Frame{
		Number:  7,
		Items:   []cloud.FrameItem{{Index: 0, X: 1, Y: 2, Scale: 1, Opacity: 1, Highlighted: true}},
		Tooltip: &cloud.TooltipAnchor{Index: 0, Text: "hi", X: 1, Y: -8},
	})
	recs := decode(t, &buf)
	if len(recs) != 1 || recs[0].Tooltip == nil {
		t.Fatalf("got %+v", recs)
	}
	if tt := recs[0].Tooltip; tt.Text != "hi" || tt.Y != -8 {
		t.Fatalf("tooltip = %+v", tt)
	}
	if !recs[0].Frames[0].Highlighted {
		t.Fatal("highlight lost")
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestWriteErrorSticks(t *testing.T) {
	w := &failWriter{}
	s := New(w)
	if err := s.Build(nil); err == nil {
		t.Fatal("Build returned nil error on failed write")
	}
	s.Present(cloud.Frame{})
	s.Teardown()
	if w.n != 1 {
		t.Fatalf("writer called %d times after first failure, want 1", w.n)
	}
	if s.Err() == nil {
		t.Fatal("Err() = nil")
	}
}
