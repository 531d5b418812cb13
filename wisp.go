// Package wisp is the front door of the lexer/parser front end: Parse turns
// a named source buffer into a flat token Module plus whatever diagnostics
// accumulated along the way.
package wisp

import (
	"log/slog"

	"github.com/wisplang/wisp/internal/parser"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/types"
)

// config holds the options Parse accepts.
type config struct {
	logger *slog.Logger
}

// Option configures a Parse call.
type Option func(*config)

// WithLogger attaches a logger to the parse. Passing nil (or omitting this
// option) disables logging entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Parse lexes and parses source under the given module name, returning the
// built Module (always well-formed, even when partial) alongside every
// diagnostic collected. Parse never returns a Go error: malformed source is
// reported through the returned Diagnostics, not through error plumbing
// (spec.md §7).
func Parse(name string, source []byte, opts ...Option) (*token.Module, types.Diagnostics) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return parser.New(source, cfg.logger).ParseModule(name)
}
