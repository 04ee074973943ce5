// Command triangle opens a window and presents a triangle every frame until
// the window is closed or the process is interrupted.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/andewx/presentvk"
	"github.com/andewx/presentvk/window"
	"github.com/pkg/errors"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	// Teardown happens on the locked main thread; the closer only asks the
	// loop to stop and waits for it.
	closer.Bind(func() {
		cancel()
		<-done
	})

	err := run(ctx, *configPath)
	close(done)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func run(ctx context.Context, configPath string) error {
	cfg := presentvk.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = presentvk.LoadConfig(configPath); err != nil {
			return err
		}
	}
	log := presentvk.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	shaders, err := presentvk.LoadShaderBlobs(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	if err := window.Init(); err != nil {
		return err
	}
	defer window.Terminate()

	win, err := window.New(window.Config{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
	}, log)
	if err != nil {
		return err
	}
	defer win.Destroy()

	renderer, err := presentvk.NewRenderer(presentvk.NewDriver(), win, cfg, shaders, log,
		presentvk.NewReporter(os.Stdout))
	if err != nil {
		return errors.Wrap(err, "renderer startup")
	}
	defer renderer.Destroy()

	return renderer.Run(ctx)
}
