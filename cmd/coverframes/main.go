// Command coverframes renders an animated cover document to PNG frames.
//
// Usage:
//
//	coverframes init [cover.yaml]
//	coverframes [flags] cover.yaml
//
// Every flag defaults to its COVER_* environment variable when set.
// The keyframe export and the transition to a second cover are optional.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/gg"
	"golang.org/x/sync/errgroup"

	cover "github.com/gogpu/gg-cover"
	"github.com/gogpu/gg-cover/canvas"
	"github.com/gogpu/gg-cover/internal/document"
	"github.com/gogpu/gg-cover/keyframe"
	"github.com/gogpu/gg-cover/render"
)

var errUsage = errors.New("usage: coverframes [flags] cover.yaml | coverframes init [cover.yaml]")

type config struct {
	Out       string        `env:"COVER_OUT"`
	Width     int           `env:"COVER_WIDTH"`
	Height    int           `env:"COVER_HEIGHT"`
	FPS       int           `env:"COVER_FPS"`
	Duration  time.Duration `env:"COVER_DURATION"`
	Workers   int           `env:"COVER_WORKERS"`
	Keyframes string        `env:"COVER_KEYFRAMES"`
	Next      string        `env:"COVER_NEXT"`
	Verbose   bool          `env:"COVER_VERBOSE"`
}

func defaultConfig() config {
	return config{
		Out:      "frames",
		FPS:      30,
		Duration: keyframe.DefaultTiming.Duration,
		Workers:  runtime.NumCPU(),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "coverframes:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "init" {
		return initDocument(args[1:])
	}

	cfg := defaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	fs := flag.NewFlagSet("coverframes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output directory")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "override the cover width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "override the cover height")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "cover animation length")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel frame workers")
	fs.StringVar(&cfg.Keyframes, "keyframes", cfg.Keyframes, "write keyframe JSON to this file")
	fs.StringVar(&cfg.Next, "next", cfg.Next, "cover to transition to")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	if cfg.FPS <= 0 || cfg.Duration <= 0 {
		return fmt.Errorf("fps %d and duration %v must be positive", cfg.FPS, cfg.Duration)
	}
	cfg.Workers = max(cfg.Workers, 1)

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	cover.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer cover.SetLogger(nil)

	c, doc, err := loadCover(fs.Arg(0), cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return err
	}

	r := render.New()
	start := time.Now()
	n := frameCount(cfg.FPS, cfg.Duration)
	err = renderFrames(ctx, cfg, c.Width, c.Height, n, "frame", func() (frameFunc, error) {
		p, err := r.Prepare(c)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, dc *gg.Context, i int) error {
			return p.DrawFrame(ctx, dc, p.Progress(render.FrameProgress(i, n)))
		}, nil
	})
	if err != nil {
		return err
	}
	cover.Logger().Info("frames rendered", "count", n, "dir", cfg.Out, "elapsed", time.Since(start))

	if cfg.Keyframes != "" {
		if err := writeKeyframes(r, c, cfg); err != nil {
			return err
		}
	}
	if cfg.Next != "" {
		return renderTransition(ctx, r, c, doc, cfg)
	}
	return nil
}

// initDocument writes the example document without replacing an existing
// file.
func initDocument(args []string) error {
	path := "cover.yaml"
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return errUsage
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return document.Write(document.Example(), path)
}

func loadCover(path string, cfg config) (*render.Cover, *document.Document, error) {
	doc, err := document.Read(path)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Width > 0 {
		doc.Width = cfg.Width
	}
	if cfg.Height > 0 {
		doc.Height = cfg.Height
	}
	c, err := doc.Cover(filepath.Dir(path))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	cover.Logger().Debug("document loaded", "path", path, "width", doc.Width, "height", doc.Height)
	return c, doc, nil
}

// frameCount is the number of frames covering d at fps, at least one.
func frameCount(fps int, d time.Duration) int {
	return max(1, int(math.Round(float64(fps)*d.Seconds())))
}

// frameFunc draws frame i into dc.
type frameFunc func(ctx context.Context, dc *gg.Context, i int) error

// renderFrames saves frames 0..n-1 as <prefix>_NNNNN.png. Each worker
// builds its own frameFunc and owns one gg.Context.
func renderFrames(ctx context.Context, cfg config, w, h, n int, prefix string, setup func() (frameFunc, error)) error {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range n {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for range min(cfg.Workers, n) {
		g.Go(func() error {
			draw, err := setup()
			if err != nil {
				return err
			}
			dc := gg.NewContext(w, h)
			defer dc.Close()
			for i := range jobs {
				if err := draw(ctx, dc, i); err != nil {
					return fmt.Errorf("%s %d: %w", prefix, i, err)
				}
				path := filepath.Join(cfg.Out, fmt.Sprintf("%s_%05d.png", prefix, i))
				if err := dc.SavePNG(path); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func writeKeyframes(r *render.Renderer, c *render.Cover, cfg config) error {
	p, err := r.Prepare(c)
	if err != nil {
		return err
	}
	t := keyframe.DefaultTiming
	t.Duration = cfg.Duration
	data, err := json.MarshalIndent(p.Keyframes(t), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Keyframes, data, 0o644); err != nil {
		return err
	}
	cover.Logger().Info("keyframes written", "path", cfg.Keyframes)
	return nil
}

// renderTransition renders the document's transition from the last frame of
// c to the first frame of the next cover.
func renderTransition(ctx context.Context, r *render.Renderer, c *render.Cover, doc *document.Document, cfg config) error {
	tr, ok := canvas.ParseTransition(doc.Transition)
	if !ok {
		tr = canvas.TransitionFade
	}
	next, _, err := loadCover(cfg.Next, config{Width: c.Width, Height: c.Height})
	if err != nil {
		return err
	}
	from, err := r.RenderFrame(ctx, c, 1)
	if err != nil {
		return err
	}
	defer from.Close()
	to, err := r.RenderFrame(ctx, next, 0)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Next, err)
	}
	defer to.Close()
	fromImg, toImg := from.Image(), to.Image()

	n := frameCount(cfg.FPS, tr.Duration())
	err = renderFrames(ctx, cfg, c.Width, c.Height, n, "transition", func() (frameFunc, error) {
		return func(ctx context.Context, dc *gg.Context, i int) error {
			elapsed := time.Duration(render.FrameProgress(i, n) * float64(tr.Duration()))
			return render.DrawTransition(ctx, dc, tr, elapsed, fromImg, toImg)
		}, nil
	})
	if err != nil {
		return err
	}
	cover.Logger().Info("transition rendered", "transition", tr, "count", n)
	return nil
}
