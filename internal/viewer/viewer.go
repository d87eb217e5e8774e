package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireview/internal/engine/camera"
	"github.com/Faultbox/wireview/internal/engine/ui2d"
)

// ErrPickCancelled is returned by Presentation.PickFile when the user
// dismisses the file picker.
var ErrPickCancelled = errors.New("file selection cancelled")

// Presentation is the platform the viewer runs on: input polling,
// primitive drawing and a file picker. Every method except PickFile is
// called from the goroutine running the loop.
type Presentation interface {
	ui2d.Canvas

	// PollInput returns input gathered since the previous call without blocking.
	PollInput() Input

	Clear(c ui2d.Color)
	DrawLine(x1, y1, x2, y2 float32, c ui2d.Color)
	Present()

	// PickFile asks the user for a model path. It may block and is
	// called off the loop goroutine.
	PickFile() (string, error)
}

// Options configures a Viewer.
type Options struct {
	Viewport Viewport
	Camera   camera.Camera

	// ModelPath is loaded before the first frame when set.
	ModelPath string

	// Watch reloads the current model when its file changes on disk.
	Watch         bool
	WatchDebounce time.Duration

	// MaxFrames stops Run after this many frames; zero runs until quit.
	MaxFrames int
}

// DefaultOptions returns the stock 500x500 viewer.
func DefaultOptions() Options {
	return Options{
		Viewport:      DefaultViewport(),
		Camera:        camera.New(5),
		WatchDebounce: 200 * time.Millisecond,
	}
}

// Viewer drives Step against a Presentation.
type Viewer struct {
	opts  Options
	p     Presentation
	log   *zap.Logger
	scene *Scene
	state State

	watcher *Watcher
	picking atomic.Bool
	wg      sync.WaitGroup

	frames int
}

// New creates a viewer. A startup model that fails to load is logged and
// shown in the status line; it is not fatal.
func New(p Presentation, opts Options, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	v := &Viewer{
		opts:  opts,
		p:     p,
		log:   log,
		scene: NewScene(),
		state: NewState(opts.Viewport, opts.Camera),
	}

	if opts.Watch {
		w, err := NewWatcher(opts.WatchDebounce, v.reload, log)
		if err != nil {
			return nil, fmt.Errorf("creating model watcher: %w", err)
		}
		v.watcher = w
	}

	if opts.ModelPath != "" {
		v.load(opts.ModelPath)
	}

	return v, nil
}

// Scene returns the model store.
func (v *Viewer) Scene() *Scene {
	return v.scene
}

// State returns the state after the most recent frame.
func (v *Viewer) State() State {
	return v.state
}

// Run steps frames until the window closes, Escape is pressed, ctx is
// done, or MaxFrames is reached.
func (v *Viewer) Run(ctx context.Context) error {
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, quit := v.RunFrame()
		if quit {
			v.log.Info("render loop stopped", zap.Int("frames", v.frames))
			return nil
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("lines", len(frame.Lines)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if v.opts.MaxFrames > 0 && v.frames >= v.opts.MaxFrames {
			v.log.Info("frame limit reached", zap.Int("frames", v.frames))
			return nil
		}
	}
}

// RunFrame polls input, steps, draws and presents one frame, then carries
// out the actions it requested. It reports whether the loop should stop.
func (v *Viewer) RunFrame() (Frame, bool) {
	in := v.p.PollInput()
	if in.Quit {
		return Frame{}, true
	}

	prev := v.state
	next, frame := Step(v.state, v.scene.Snapshot(), in)
	v.state = next
	v.frames++

	if prev.Camera.Ortho != next.Camera.Ortho {
		v.log.Info("projection changed", zap.String("mode", next.Camera.ProjectionName()))
	}

	v.p.Clear(ui2d.ColorBackground)
	for _, l := range frame.Lines {
		v.p.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y, ui2d.ColorWireframe)
	}
	frame.UI.Render(v.p)
	v.p.Present()

	for _, a := range frame.Actions {
		switch a {
		case ActionOpen:
			v.Open()
		case ActionClear:
			v.log.Info("scene cleared")
			v.scene.Clear()
		case ActionQuit:
			return frame, true
		}
	}

	return frame, false
}

// Open shows the file picker on a background goroutine and loads the
// chosen model. Requests made while a picker is already open are ignored.
func (v *Viewer) Open() {
	if !v.picking.CompareAndSwap(false, true) {
		return
	}

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		defer v.picking.Store(false)

		path, err := v.p.PickFile()
		if err != nil {
			if errors.Is(err, ErrPickCancelled) {
				v.log.Debug("file selection cancelled")
			} else {
				v.log.Warn("file picker failed", zap.Error(err))
			}
			return
		}
		v.load(path)
	}()
}

// Wait blocks until background pickers and loads have finished.
func (v *Viewer) Wait() {
	v.wg.Wait()
}

// Close stops the model watcher and waits for background work.
func (v *Viewer) Close() error {
	var err error
	if v.watcher != nil {
		err = v.watcher.Close()
	}
	v.Wait()
	return err
}

func (v *Viewer) load(path string) {
	if err := v.scene.Load(path); err != nil {
		v.log.Warn("failed to load model", zap.String("path", path), zap.Error(err))
		return
	}

	snap := v.scene.Snapshot()
	v.log.Info("model loaded",
		zap.String("path", path),
		zap.Int("vertices", len(snap.Model.Vertices)),
		zap.Int("triangles", snap.Model.TriangleCount()),
	)
	if lo, hi, ok := snap.Model.Bounds(); ok {
		v.log.Debug("model bounds",
			zap.Float32s("min", []float32{lo.X, lo.Y, lo.Z}),
			zap.Float32s("max", []float32{hi.X, hi.Y, hi.Z}),
		)
	}

	if v.watcher != nil {
		if err := v.watcher.Watch(path); err != nil {
			v.log.Warn("cannot watch model file", zap.String("path", path), zap.Error(err))
		}
	}
}

// reload is called by the watcher when the watched file changes. A file
// that stops parsing mid-edit keeps the last good model on screen.
func (v *Viewer) reload(path string) {
	reloaded, err := v.scene.Reload(path)
	switch {
	case err != nil:
		v.log.Warn("reload failed", zap.String("path", path), zap.Error(err))
	case !reloaded:
		v.log.Debug("reload skipped, model changed", zap.String("path", path))
	default:
		v.log.Info("model reloaded", zap.String("path", path))
	}
}
