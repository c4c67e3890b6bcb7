package lexer

import "time"

// Opt represents a lexer configuration option.
type Opt func(*Config)

// TelemetryMode controls telemetry collection (production-safe).
type TelemetryMode int

const (
	TelemetryOff    TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                       // Token counts only
	TelemetryTiming                      // Token counts + timing per stage
)

// DebugLevel controls debug tracing (development only).
type DebugLevel int

const (
	DebugOff    DebugLevel = iota // No debug info (default)
	DebugStages                   // Per-stage fragment/line counts
)

// Config holds lexer configuration.
type Config struct {
	telemetry TelemetryMode
	debug     DebugLevel
}

// WithTelemetryBasic enables basic telemetry (token counts only).
func WithTelemetryBasic() Opt {
	return func(c *Config) { c.telemetry = TelemetryBasic }
}

// WithTelemetryTiming enables timing telemetry (counts + timing per stage).
func WithTelemetryTiming() Opt {
	return func(c *Config) { c.telemetry = TelemetryTiming }
}

// WithDebugStages records DebugStages in the Config. Lex does not read the
// debug level, so this option changes no output.
func WithDebugStages() Opt {
	return func(c *Config) { c.debug = DebugStages }
}

// Telemetry holds lexer performance metrics (production-safe).
type Telemetry struct {
	ScanTime       time.Duration // time spent in the physical scanner + splitter
	AssembleTime   time.Duration // time spent joining logical lines
	IndentTime     time.Duration // time spent in the indentation tracker
	TotalTime      time.Duration
	PhysicalLines  int
	LogicalLines   int
	FragmentCount  int
	TokenCount     int
	IndentCount    int
	DedentCount    int
}
