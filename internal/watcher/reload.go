package watcher

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/config"
	"github.com/Faultbox/shellview/internal/logger"
	"github.com/Faultbox/shellview/internal/surface"
)

// ConfigReloader re-reads a config file on change and forwards the shape
// section to the frame loop.
type ConfigReloader struct {
	fw     *FileWatcher
	shapes chan surface.ShapeParameters
}

// WatchConfig starts watching path. Reloaded shapes are delivered on
// Shapes; a file that fails to load or validate is logged and skipped.
func WatchConfig(path string, cfg config.WatchConfig) (*ConfigReloader, error) {
	fw, err := NewFileWatcher(cfg.Debounce)
	if err != nil {
		return nil, err
	}

	r := &ConfigReloader{
		fw:     fw,
		shapes: make(chan surface.ShapeParameters, 1),
	}
	if err := fw.Watch([]string{path}, r.reload); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()

	logger.Info("config watcher started", zap.String("path", path))
	return r, nil
}

// Shapes returns the channel of reloaded shape parameters.
func (r *ConfigReloader) Shapes() <-chan surface.ShapeParameters {
	return r.shapes
}

// Close stops watching.
func (r *ConfigReloader) Close() error {
	return r.fw.Close()
}

func (r *ConfigReloader) reload(path string) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		logger.Warn("config reload failed", zap.String("path", path), zap.Error(err))
		return
	}

	// Keep only the newest pending shape.
	select {
	case <-r.shapes:
	default:
	}
	select {
	case r.shapes <- cfg.Shape:
		logger.Info("config reloaded", zap.String("path", path))
	default:
	}
}
