package problembuilder

import "github.com/sirupsen/logrus"

// Option customizes a Build call by mutating a config before the Problem is
// constructed, mirroring the teacher builder package's BuilderOption shape.
type Option func(*config)

type config struct {
	logger       *logrus.Logger
	useColor     bool
	searchARCap  int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger:      logrus.StandardLogger(),
		useColor:    true,
		searchARCap: 0,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger overrides the logrus logger the resulting Problem reports
// saturation diagnostics to. Passing nil is a no-op (keeps the default
// standard logger), matching the teacher's "ignore nil inputs" option
// contract rather than panicking.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithColor controls whether Render's rendered proof highlights goal lines
// with ANSI color. Defaults to true.
func WithColor(enabled bool) Option {
	return func(c *config) { c.useColor = enabled }
}

// WithSearchARCap bounds the number of points SearchAR sweeps over
// (proof.Problem.SetSearchARCap). n<=0 (the default) means unbounded.
func WithSearchARCap(n int) Option {
	return func(c *config) { c.searchARCap = n }
}
