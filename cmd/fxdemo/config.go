package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/draw"

	"github.com/gogpu/fxmath"
	"github.com/gogpu/fxmath/merge"
	"github.com/gogpu/fxmath/ramp"
)

var errConfig = errors.New("fxdemo: invalid config")

// config is the demo scene. Every field has a default, so an empty file
// is a valid config. Positions are canonical coordinates.
type config struct {
	Format       fxmath.Format    `toml:"format"`
	MipmapLevel  uint             `toml:"mipmap_level"`
	Operator     merge.Operator   `toml:"operator"`
	AlphaMasking bool             `toml:"alpha_masking"`
	Filter       string           `toml:"filter"`
	Invert       bool             `toml:"invert"`
	Transform    fxmath.Transform `toml:"transform"`
	Pixel        fxmath.Pixel     `toml:"pixel"`
	Ramp         rampConfig       `toml:"ramp"`
}

type rampConfig struct {
	Type ramp.Type `toml:"type"`
	X0   float64   `toml:"x0"`
	Y0   float64   `toml:"y0"`
	X1   float64   `toml:"x1"`
	Y1   float64   `toml:"y1"`
}

func defaultConfig() config {
	t := fxmath.IdentityTransform()
	t.Rotate = fxmath.ToRadians(20)
	t.ScaleX, t.ScaleY = 0.75, 0.75

	return config{
		Format:    fxmath.FormatPCVideo,
		Operator:  merge.Over,
		Filter:    "bilinear",
		Transform: t,
		Pixel:     fxmath.Pixel{RenderScaleX: 1, RenderScaleY: 1},
		Ramp:      rampConfig{Type: ramp.Smooth},
	}
}

// loadConfig decodes TOML from r over the defaults.
func loadConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return config{}, fmt.Errorf("fxdemo: decode config: %w", err)
	}
	if err := cfg.finish(md); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// loadConfigFile is loadConfig for a file path. An empty path yields the
// defaults.
func loadConfigFile(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, cfg.finish(toml.MetaData{})
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("fxdemo: read config %s: %w", path, err)
	}
	if err := cfg.finish(md); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// finish rejects unknown keys, derives the values left unset from the
// format and validates the result.
func (c *config) finish(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown keys %v", errConfig, undecoded)
	}

	w, _, par := c.Format.Resolution()
	if w == 0 {
		return fmt.Errorf("%w: format %v", errConfig, c.Format)
	}
	if !md.IsDefined("pixel", "par") {
		c.Pixel.PAR = par
	}
	bounds := c.Format.Bounds()
	cx, cy := (bounds.X1+bounds.X2)/2, (bounds.Y1+bounds.Y2)/2
	if !md.IsDefined("transform", "center_x") {
		c.Transform.CenterX = cx
	}
	if !md.IsDefined("transform", "center_y") {
		c.Transform.CenterY = cy
	}
	if !md.IsDefined("ramp", "x0") && !md.IsDefined("ramp", "x1") {
		c.Ramp.X0, c.Ramp.X1 = bounds.X1, bounds.X2
	}
	if !md.IsDefined("ramp", "y0") && !md.IsDefined("ramp", "y1") {
		c.Ramp.Y0, c.Ramp.Y1 = cy, cy
	}

	if c.MipmapLevel > 0 {
		s := fxmath.ScaleFromMipmapLevel(c.MipmapLevel)
		c.Pixel.RenderScaleX, c.Pixel.RenderScaleY = s, s
	}
	return c.validate()
}

func (c *config) validate() error {
	if c.Pixel.PAR <= 0 {
		return fmt.Errorf("%w: pixel.par must be positive, got %v", errConfig, c.Pixel.PAR)
	}
	for _, s := range []float64{c.Pixel.RenderScaleX, c.Pixel.RenderScaleY} {
		if s <= 0 || s > 1 {
			return fmt.Errorf("%w: render scale must be in (0, 1], got %v", errConfig, s)
		}
	}
	if _, err := c.interpolator(); err != nil {
		return err
	}
	return nil
}

// interpolator maps the filter name to an x/image/draw kernel.
func (c *config) interpolator() (draw.Interpolator, error) {
	switch c.Filter {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "approx-bilinear":
		return draw.ApproxBiLinear, nil
	case "bilinear", "":
		return draw.BiLinear, nil
	case "catmull-rom":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("%w: unknown filter %q", errConfig, c.Filter)
	}
}

// writeConfig encodes c as TOML.
func writeConfig(w io.Writer, c config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("fxdemo: encode config: %w", err)
	}
	return nil
}
