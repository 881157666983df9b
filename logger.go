package fxmath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so log calls
// on the hot merge and resample paths return before building attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var discard = slog.New(discardHandler{})

var current atomic.Pointer[slog.Logger]

func init() { current.Store(discard) }

// SetLogger installs l as the logger shared by fxmath, merge and imaging.
// A nil l restores the default, which discards everything.
// It may be called while other goroutines are merging or resampling.
//
// What gets logged:
//   - [slog.LevelWarn]: merge.NewMerger given an unknown operator (its output
//     is all zero), imaging.Resample given a matrix with no finite inverse.
//   - [slog.LevelDebug]: imaging.Resample taking the identity copy path or the
//     interpolated path, imaging.MergeImages with the merge bounds and operator.
//
// The fxdemo command also logs the resampled layer bounds at Debug and each
// written file at Info.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
