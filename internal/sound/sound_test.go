package sound

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep/wav"
)

func TestToneLength(t *testing.T) {
	buf := Buffer(Tone(SampleRate, 880, 40*time.Millisecond, 0.25))
	if want := SampleRate.N(40 * time.Millisecond); buf.Len() != want {
		t.Fatalf("tone has %d samples, want %d", buf.Len(), want)
	}
}

func TestToneAmplitude(t *testing.T) {
	const volume = 0.25
	s := Tone(SampleRate, 440, 20*time.Millisecond, volume)
	samples := make([][2]float64, 512)
	peak := 0.0
	for {
		n, ok := s.Stream(samples)
		for _, smp := range samples[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ: %v", smp)
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		if !ok {
			break
		}
	}
	if peak == 0 || peak > volume {
		t.Fatalf("peak amplitude %v outside (0, %v]", peak, volume)
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.ogg")
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Load(.ogg) error = %v, want ErrUnsupported", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	want := SampleRate.N(50 * time.Millisecond)
	if err := wav.Encode(f, Tone(SampleRate, 660, 50*time.Millisecond, 0.5), Format); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	buf, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if buf.Len() != want {
		t.Fatalf("decoded %d samples, want %d", buf.Len(), want)
	}
}

func TestNilPlayer(t *testing.T) {
	var p *Player
	p.Blip()
	p.Close()
}
