package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/wireview/internal/config"
	"github.com/Faultbox/wireview/internal/engine/debug"
	"github.com/Faultbox/wireview/internal/engine/headless"
	"github.com/Faultbox/wireview/internal/logger"
	"github.com/Faultbox/wireview/internal/viewer"
)

// RunHeadless runs the viewer without a window for cfg.Viewer.MaxFrames
// frames (one if unset) and logs what each frame drew. A non-empty
// screenshot saves the last frame: to that file if it ends in .png,
// otherwise under a timestamped name in that directory.
func RunHeadless(ctx context.Context, cfg *config.Config, screenshot string) error {
	opts := viewerOptions(cfg)
	opts.Watch = false
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = 1
	}

	p := headless.New()
	p.QuitWhenDone = false
	if screenshot != "" {
		p.Canvas = debug.NewCanvas(cfg.Window.Width, cfg.Window.Height)
	}

	v, err := viewer.New(p, opts, logger.Log.Named("viewer"))
	if err != nil {
		return err
	}
	defer v.Close()

	if err := v.Run(ctx); err != nil {
		return err
	}

	snap := v.Scene().Snapshot()
	if snap.Err != nil {
		return snap.Err
	}
	for i, f := range p.Frames {
		logger.Debug("frame",
			zap.Int("index", i),
			zap.Int("lines", len(f.Lines)),
			zap.Int("labels", len(f.Texts)),
		)
	}
	if screenshot != "" {
		path, err := saveScreenshot(screenshot, p.Canvas)
		if err != nil {
			return err
		}
		logger.Info("screenshot saved", zap.String("path", path))
	}
	logger.Info("headless run complete",
		zap.String("model", snap.Path),
		zap.Int("frames", len(p.Frames)),
		zap.Int("lines", len(p.Last().Lines)),
	)
	return nil
}

func saveScreenshot(dest string, c *debug.Canvas) (string, error) {
	if strings.EqualFold(filepath.Ext(dest), ".png") {
		return dest, debug.SavePNG(dest, c.Image())
	}
	return debug.NewScreenshots(dest, "wireview").Capture(c.Image())
}
