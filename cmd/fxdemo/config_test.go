package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/fxmath"
	"github.com/gogpu/fxmath/merge"
	"github.com/gogpu/fxmath/ramp"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != fxmath.FormatPCVideo || cfg.Operator != merge.Over || cfg.Ramp.Type != ramp.Smooth {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Pixel.PAR != 1 || cfg.Pixel.RenderScaleX != 1 || cfg.Pixel.RenderScaleY != 1 {
		t.Errorf("pixel = %+v", cfg.Pixel)
	}
	if cfg.Transform.CenterX != 320 || cfg.Transform.CenterY != 240 {
		t.Errorf("center = (%v, %v), want (320, 240)", cfg.Transform.CenterX, cfg.Transform.CenterY)
	}
	if cfg.Ramp.X0 != 0 || cfg.Ramp.X1 != 640 || cfg.Ramp.Y0 != 240 || cfg.Ramp.Y1 != 240 {
		t.Errorf("ramp = %+v", cfg.Ramp)
	}

	fromFile, err := loadConfigFile("")
	if err != nil {
		t.Fatal(err)
	}
	if fromFile != cfg {
		t.Errorf("loadConfigFile(\"\") = %+v, want %+v", fromFile, cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	const doc = `
format = "PAL"
operator = "Soft-Light"
alpha_masking = true
filter = "catmull-rom"

[transform]
rotate = 0.5
scale_x = 2.0
scale_y = 2.0
center_x = 10.0

[ramp]
type = "ease-in"
`
	cfg, err := loadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != fxmath.FormatPAL || cfg.Operator != merge.SoftLight || !cfg.AlphaMasking {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Pixel.PAR != 1.09 {
		t.Errorf("par = %v, want 1.09 from the format", cfg.Pixel.PAR)
	}
	if cfg.Transform.CenterX != 10 || cfg.Transform.CenterY != 288 {
		t.Errorf("center = (%v, %v), want (10, 288)", cfg.Transform.CenterX, cfg.Transform.CenterY)
	}
	if cfg.Transform.Rotate != 0.5 || cfg.Transform.ScaleX != 2 {
		t.Errorf("transform = %+v", cfg.Transform)
	}
	if cfg.Ramp.Type != ramp.EaseIn || math.Abs(cfg.Ramp.X1-720*1.09) > 1e-9 {
		t.Errorf("ramp = %+v", cfg.Ramp)
	}
}

func TestLoadConfigMipmapLevel(t *testing.T) {
	cfg, err := loadConfig(strings.NewReader("mipmap_level = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pixel.RenderScaleX != 0.25 || cfg.Pixel.RenderScaleY != 0.25 {
		t.Errorf("render scale = %+v, want 0.25", cfg.Pixel)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"unknown key", "colour = 3\n", errConfig},
		{"unknown nested key", "[transform]\nspin = 1.0\n", errConfig},
		{"bad filter", "filter = \"lanczos\"\n", errConfig},
		{"zero par", "[pixel]\npar = 0.0\n", errConfig},
		{"render scale above one", "[pixel]\nrender_scale_x = 2.0\n", errConfig},
		{"bad operator", "operator = \"blend\"\n", nil},
		{"bad format", "format = \"VHS\"\n", nil},
		{"bad ramp", "[ramp]\ntype = \"cubic\"\n", nil},
		{"syntax", "format = \n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("loadConfig() succeeded")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("loadConfig() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	cfg, err := loadConfig(strings.NewReader("format = \"HD\"\noperator = \"pin-light\"\ninvert = true\n"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeConfig(&buf, cfg); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `operator = "pinlight"`) {
		t.Errorf("encoded config lacks the operator name:\n%s", buf.String())
	}

	back, err := loadConfig(&buf)
	if err != nil {
		t.Fatalf("decode encoded config: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}
