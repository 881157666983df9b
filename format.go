package fxmath

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognized name.
var ErrUnknownFormat = errors.New("fxmath: unknown format")

// Format is a standard image format.
type Format int

// Standard formats. See Resolution for their sizes.
const (
	FormatPCVideo Format = iota
	FormatNTSC
	FormatPAL
	FormatHD
	FormatNTSC169
	FormatPAL169
	Format1kSuper35
	Format1kCinemascope
	Format2kSuper35
	Format2kCinemascope
	Format4kSuper35
	Format4kCinemascope
	FormatSquare256
	FormatSquare512
	FormatSquare1k
	FormatSquare2k

	formatCount
)

type formatInfo struct {
	name          string
	width, height int
	par           float64
}

var formats = [formatCount]formatInfo{
	FormatPCVideo:       {"PC_Video", 640, 480, 1},
	FormatNTSC:          {"NTSC", 720, 486, 0.91},
	FormatPAL:           {"PAL", 720, 576, 1.09},
	FormatHD:            {"HD", 1920, 1080, 1},
	FormatNTSC169:       {"NTSC-16:9", 720, 486, 1.21},
	FormatPAL169:        {"PAL-16:9", 720, 576, 1.46},
	Format1kSuper35:     {"1K-Super35-full-ap", 1024, 778, 1},
	Format1kCinemascope: {"1K-Cinemascope", 914, 778, 2},
	Format2kSuper35:     {"2K-Super35-full-ap", 2048, 1556, 1},
	Format2kCinemascope: {"2K-Cinemascope", 1828, 1556, 2},
	Format4kSuper35:     {"4K-Super35-full-ap", 4096, 3112, 1},
	Format4kCinemascope: {"4K-Cinemascope", 3656, 3112, 2},
	FormatSquare256:     {"Square-256", 256, 256, 1},
	FormatSquare512:     {"Square-512", 512, 512, 1},
	FormatSquare1k:      {"Square-1k", 1024, 1024, 1},
	FormatSquare2k:      {"Square-2k", 2048, 2048, 1},
}

// Resolution returns the pixel size and pixel aspect ratio of f.
// Unknown formats return zeros.
func (f Format) Resolution() (width, height int, par float64) {
	if f < 0 || f >= formatCount {
		return 0, 0, 0
	}
	info := formats[f]
	return info.width, info.height, info.par
}

// Bounds returns the canonical region of definition of f: the pixel
// rectangle stretched horizontally by the pixel aspect ratio.
func (f Format) Bounds() RectD {
	w, h, par := f.Resolution()
	return RectD{X1: 0, Y1: 0, X2: float64(w) * par, Y2: float64(h)}
}

// String returns the format name.
func (f Format) String() string {
	if f < 0 || f >= formatCount {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].name
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || f >= formatCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(formats[f].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFormat returns the format with the given name, ignoring case.
// Underscores and spaces are accepted in place of dashes.
func ParseFormat(name string) (Format, error) {
	key := normalizeName(name)
	for f := range formatCount {
		if normalizeName(formats[f].name) == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

var nameReplacer = strings.NewReplacer("_", "-", " ", "-")

func normalizeName(s string) string {
	return nameReplacer.Replace(cases.Fold().String(strings.TrimSpace(s)))
}
