// Package app wires the viewer to an SDL2 window and a native file picker.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"github.com/Faultbox/wireview/internal/config"
	"github.com/Faultbox/wireview/internal/engine/camera"
	"github.com/Faultbox/wireview/internal/engine/input"
	"github.com/Faultbox/wireview/internal/engine/renderer"
	"github.com/Faultbox/wireview/internal/engine/window"
	"github.com/Faultbox/wireview/internal/logger"
	"github.com/Faultbox/wireview/internal/viewer"
	"github.com/Faultbox/wireview/pkg/math"
)

// App is the windowed viewer. It implements viewer.Presentation; drawing
// goes straight to the embedded renderer.
type App struct {
	*renderer.Renderer

	config *config.Config
	window *window.Window
	input  *input.Input
	viewer *viewer.Viewer
}

var _ viewer.Presentation = (*App)(nil)

// New opens the window and creates the viewer.
func New(cfg *config.Config) (*App, error) {
	logger.Sugar.Infow("initializing viewer",
		"title", cfg.Window.Title,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
	)

	a := &App{config: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.Renderer, err = renderer.New(a.window.SDL(), renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	a.viewer, err = viewer.New(a, viewerOptions(cfg), logger.Log.Named("viewer"))
	if err != nil {
		a.Renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create viewer: %w", err)
	}

	logger.Info("viewer initialized successfully")
	return a, nil
}

// Run runs the render loop until the window is closed.
func (a *App) Run(ctx context.Context) error {
	return a.viewer.Run(ctx)
}

// Close releases the viewer, renderer and window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.viewer != nil {
		if err := a.viewer.Close(); err != nil {
			logger.Sugar.Warnw("closing viewer", "error", err)
		}
	}
	if a.Renderer != nil {
		a.Renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// PollInput implements viewer.Presentation.
func (a *App) PollInput() viewer.Input {
	a.input.Update()
	st := a.input.State()

	in := viewer.Input{
		MouseX:       float32(st.MouseX),
		MouseY:       float32(st.MouseY),
		MouseDown:    st.MouseLeftDown,
		MousePressed: st.MouseLeftPressed,
		Quit:         st.Quit,
	}
	for _, k := range st.Keys {
		if k == input.KeyEscape {
			k = viewer.KeyEscape
		}
		in.Keys = append(in.Keys, k)
	}
	return in
}

// PickFile implements viewer.Presentation with the native open dialog.
func (a *App) PickFile() (string, error) {
	path, err := dialog.File().
		Filter("OBJ models", "obj").
		Filter("All Files", "*").
		Title("Open Model").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", viewer.ErrPickCancelled
		}
		return "", err
	}
	return path, nil
}

// viewerOptions maps configuration onto the viewer.
func viewerOptions(cfg *config.Config) viewer.Options {
	opts := viewer.DefaultOptions()

	opts.Viewport.Width = float32(cfg.Window.Width)
	opts.Viewport.Height = float32(cfg.Window.Height)
	opts.Viewport.PixelScale = cfg.Viewer.PixelScale
	opts.Viewport.CameraDistance = cfg.Viewer.CameraDistance

	cam := camera.New(cfg.Viewer.InitialZoom)
	cam.Limits.MinZoom = cfg.Viewer.MinZoom
	cam.Limits.MaxZoom = cfg.Viewer.MaxZoom
	cam.Zoom = math.Clamp(cfg.Viewer.InitialZoom, cam.Limits.MinZoom, cam.Limits.MaxZoom)
	cam.ZoomStep = cfg.Viewer.ZoomStep
	cam.RotateSpeed = cfg.Viewer.RotateSpeed
	cam.Ortho = cfg.Viewer.Ortho
	opts.Camera = cam

	opts.ModelPath = cfg.Viewer.Model
	opts.Watch = cfg.Viewer.Watch
	opts.WatchDebounce = cfg.Viewer.WatchDebounce
	opts.MaxFrames = cfg.Viewer.MaxFrames

	return opts
}
