package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/tagsphere/internal/cloud"
	"github.com/iburimskiy/tagsphere/internal/config"
	"github.com/iburimskiy/tagsphere/internal/dump"
	"github.com/iburimskiy/tagsphere/internal/game"
	"github.com/iburimskiy/tagsphere/internal/sound"
	"github.com/iburimskiy/tagsphere/internal/tags"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON options file")
		tagsPath   = flag.String("tags", "", "JSON tags file (default: built-in demo set)")
		headless   = flag.Bool("headless", false, "write frames as JSON lines to stdout instead of opening a window")
		frames     = flag.Uint64("frames", 300, "frames to write in headless mode, 0 to run until interrupted")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "tagsphere: ", log.LstdFlags)

	opts, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(err)
	}
	specs := tags.Default()
	if *tagsPath != "" {
		if specs, err = tags.Load(*tagsPath); err != nil {
			logger.Fatal(err)
		}
	}

	if *headless {
		if err := runHeadless(opts, specs, *frames, logger); err != nil {
			logger.Fatal(err)
		}
		return
	}

	var cue game.Cue
	if !opts.Mute {
		p, err := sound.New(opts.HoverSound, config.HoverToneHz, config.HoverToneMillis*time.Millisecond, config.HoverToneVolume, logger)
		if err != nil {
			logger.Printf("hover sound disabled: %v", err)
		} else {
			defer p.Close()
			cue = p
		}
	}

	g, err := game.NewGame(opts, specs, cue, logger)
	if err != nil {
		logger.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Tag Sphere - Space: expand/contract, R: reset, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}

// runHeadless drives the cloud from a ticker and writes each frame to stdout.
func runHeadless(opts config.Options, specs []cloud.ItemSpec, frames uint64, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := dump.New(os.Stdout, dump.WithLimit(frames, stop))
	c, err := cloud.New(opts, out, cloud.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := c.Build(specs); err != nil {
		return err
	}
	// Steer as if the pointer rested in the lower right quadrant.
	vp := c.State().Viewport
	c.PointerMove(vp.Width*0.75, vp.Height*0.75)

	err = c.Scheduler().Run(ctx, time.Second/config.TicksPerSecond)
	c.Teardown()
	if err := out.Err(); err != nil {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
