// Command pixed is a terminal pixel-art editor over the px drawing engine.
//
// Usage:
//
//	pixed [flags] [file.pxl]
//
// With -export, pixed renders the file to a PNG and exits without starting
// the interactive editor.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gopx/px"
	"github.com/gopx/px/internal/config"
	"github.com/gopx/px/internal/tui"
)

func main() {
	var (
		configPath = flag.String("config", "pixed.toml", "config file")
		width      = flag.Int("width", 0, "canvas width (overrides config)")
		height     = flag.Int("height", 0, "canvas height (overrides config)")
		exportPath = flag.String("export", "", "render the file to this PNG and exit")
		scale      = flag.Int("scale", 8, "export pixel scale")
		debug      = flag.Bool("debug", false, "write debug logs to pixed.log")
	)
	flag.Parse()

	if err := run(*configPath, flag.Arg(0), *width, *height, *exportPath, *scale, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "pixed:", err)
		os.Exit(1)
	}
}

func run(configPath, file string, width, height int, exportPath string, scale int, debug bool) error {
	if debug {
		f, err := os.Create("pixed.log")
		if err != nil {
			return err
		}
		defer f.Close()
		px.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	pal, err := cfg.BuildPalette()
	if err != nil {
		return err
	}
	if width == 0 {
		width = cfg.Canvas.Width
	}
	if height == 0 {
		height = cfg.Canvas.Height
	}

	opts := []px.Option{px.WithPalette(pal)}
	if file != "" {
		if data, err := os.ReadFile(file); err == nil {
			buf, err := px.Decode(strings.TrimSpace(string(data)))
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			opts = append(opts, px.WithBuffer(buf))
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	ed, err := px.NewEditor(width, height, opts...)
	if err != nil {
		return err
	}
	ed.SetColor(uint8(cfg.Tools.Color))
	ed.SetAltColor(uint8(cfg.Tools.AltColor))
	ed.SetBrushSize(cfg.Tools.BrushSize)
	ed.SetFillShapes(cfg.Tools.Fill)

	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return ed.ExportPNG(f, scale)
	}

	app, err := tui.New(ed, cfg, file)
	if err != nil {
		return err
	}
	return app.Run()
}
