// Command fxdemo renders a transformed ramp merged over a checker
// background and writes it as a PNG.
//
// Usage:
//
//	fxdemo -config scene.toml -output out.png
//	fxdemo -dump-config > scene.toml
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/fxmath"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML scene file (defaults when empty)")
		output     = flag.String("output", "fxdemo.png", "output PNG file")
		width      = flag.Int("width", 0, "image width, overrides the format")
		height     = flag.Int("height", 0, "image height, overrides the format")
		verbose    = flag.Bool("v", false, "log debug messages")
		dump       = flag.Bool("dump-config", false, "print the effective config as TOML and exit")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fxmath.SetLogger(logger)

	if err := run(*configPath, *output, *width, *height, *dump); err != nil {
		logger.Error("fxdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, output string, width, height int, dump bool) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	if dump {
		return writeConfig(os.Stdout, cfg)
	}

	bounds := outputBounds(cfg, width, height)
	if bounds.Empty() {
		return fmt.Errorf("%w: empty output %v", errConfig, bounds)
	}
	img, err := renderScene(cfg, bounds)
	if err != nil {
		return err
	}

	f, err := os.Create(output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fxmath.Logger().Info("fxdemo: saved",
		"path", output, "size", bounds.Size(), "format", cfg.Format, "operator", cfg.Operator)
	return nil
}
