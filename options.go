package abbrevgo

type options struct {
	logger         *Logger
	crossCheck     bool
	analyzeWorkers int
}

// Option configures Matcher constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. logger-specific constructor variants).
type Option func(*options)

// WithLogger configures the logger used for query diagnostics.
//
// If nil is passed, NoopLogger() is used; the scorer-divergence
// diagnostic is silent by default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithCrossCheck enables the legacy scorer as a cross-check: every
// FindAll additionally runs the old word-order scorer, compares the
// deduplicated result sets, and logs a divergence diagnostic when they
// disagree. The primary scorer's answer is always the one returned.
//
// Intended for test and debug builds; production builds leave the
// legacy scorer disabled.
func WithCrossCheck() Option {
	return func(o *options) {
		o.crossCheck = true
	}
}

// WithAnalyzeWorkers caps the number of goroutines used when a query
// analyzes a large backlog of pending entries. Values below 1 select
// the number of CPUs.
func WithAnalyzeWorkers(n int) Option {
	return func(o *options) {
		o.analyzeWorkers = n
	}
}
