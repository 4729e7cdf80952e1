package lexutil

// TelemetryMode controls production-safe counters collected during a pass.
// Grounded on runtime/lexer/v2's TelemetryMode: off by default so the hot
// loop pays nothing for instrumentation it wasn't asked for.
type TelemetryMode int

const (
	TelemetryOff TelemetryMode = iota
	TelemetryBasic
)

// DebugLevel controls development-only tracing, never enabled in a host
// editor's production coloring path.
type DebugLevel int

const (
	DebugOff DebugLevel = iota
	DebugTrace
)

// Config is the small option bag both lexers accept, mirroring
// runtime/lexer/v2's LexerConfig/LexerOpt pattern.
type Config struct {
	Telemetry TelemetryMode
	Debug     DebugLevel
	Trace     func(event string)
}

// Option mutates a Config.
type Option func(*Config)

// WithTelemetryBasic turns on byte/segment counters.
func WithTelemetryBasic() Option {
	return func(c *Config) { c.Telemetry = TelemetryBasic }
}

// WithTrace enables development tracing and directs events to fn.
func WithTrace(fn func(event string)) Option {
	return func(c *Config) {
		c.Debug = DebugTrace
		c.Trace = fn
	}
}

// Apply folds a list of options into a Config.
func Apply(opts ...Option) Config {
	var c Config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Telemetry accumulates the production-safe counters for a single pass.
type Telemetry struct {
	BytesProcessed   int
	SegmentsEmitted  int
	LinesVisited     int
}

// Record is a no-op unless the config enabled TelemetryBasic, keeping the
// hot loop branch-free in the common case.
func (t *Telemetry) Record(cfg *Config, bytes, segments, lines int) {
	if cfg.Telemetry == TelemetryOff {
		return
	}
	t.BytesProcessed += bytes
	t.SegmentsEmitted += segments
	t.LinesVisited += lines
}
