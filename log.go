package ot

import "go.uber.org/zap"

// logger is the package-level sink for the trace/debug instrumentation the
// algebra emits at the same branch points original_source's Rust
// implementation traces with log::trace!/log::debug!. It defaults to a
// no-op core so importers pay nothing unless they opt in.
var logger = zap.NewNop().Sugar()

// SetLogger installs l as the destination for the package's internal
// tracing. Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}
