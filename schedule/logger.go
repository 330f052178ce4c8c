package schedule

import (
	"context"
	"log/slog"
)

// nopHandler discards all log records; used as the Pool's default
// logger so schedule never depends on thorvg's logger package (which
// would cycle, since thorvg.Engine constructs a Pool).
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func nopLogger() *slog.Logger { return slog.New(nopHandler{}) }
