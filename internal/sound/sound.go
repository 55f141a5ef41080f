// Package sound plays the short cue heard when the pointer lands on a tag.
package sound

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SampleRate is the rate the speaker runs at. Decoded files are resampled to it.
const SampleRate beep.SampleRate = 44100

var ErrUnsupported = errors.New("unsupported file type")

// Format is the buffer format every cue is stored in.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Player holds one buffered cue and plays it on demand. A nil *Player is
// silent.
type Player struct {
	cue    *beep.Buffer
	logger *log.Logger
}

// New buffers the cue at path, or a synthesized tone when path is empty,
// and initializes the speaker.
func New(path string, hz float64, d time.Duration, volume float64, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	var (
		cue *beep.Buffer
		err error
	)
	if path == "" {
		cue = Buffer(Tone(SampleRate, hz, d, volume))
	} else if cue, err = Load(path); err != nil {
		return nil, err
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	logger.Printf("hover cue ready: %d samples", cue.Len())
	return &Player{cue: cue, logger: logger}, nil
}

// Blip plays the cue from the start. Overlapping blips mix.
func (p *Player) Blip() {
	if p == nil || p.cue == nil {
		return
	}
	speaker.Play(p.cue.Streamer(0, p.cue.Len()))
}

// Close silences anything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// Buffer drains s into a buffer in Format.
func Buffer(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return buf
}

// Load decodes a wav, mp3 or flac file and buffers it at SampleRate.
func Load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, streamer)
	}
	buf := Buffer(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// Tone is a sine wave of the given length. Its amplitude ramps down
// linearly so the cue ends without a click.
func Tone(sr beep.SampleRate, hz float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := volume * env * math.Sin(2*math.Pi*hz*float64(pos)/float64(sr))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
