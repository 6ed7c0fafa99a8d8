package jsoncol

import (
	"log/slog"

	"github.com/reoring/jsoncol/internal/buffer"
	eng "github.com/reoring/jsoncol/internal/engine"
)

// SentinelConfig describes how values JSON cannot represent are spelled as
// JSON strings. Nil fields are absent.
type SentinelConfig struct {
	NaNString           *string
	InfinityString      *string
	MinusInfinityString *string
	// MissingString stands in for missing values on output. When absent,
	// NaNString is reused for missing values if configured, else null.
	MissingString *string
	// TreatSentinelStringsAsFloat turns input strings equal to one of the
	// non-finite sentinels into the corresponding float.
	TreatSentinelStringsAsFloat bool
}

// Ptr returns a pointer to s, for filling SentinelConfig literals.
func Ptr(s string) *string { return &s }

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

var severityNames = [...]string{Ignore: "ignore", Warn: "warn", Error: "error"}

func (s Severity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// ParseOpt bundles ingestion options. When several are passed to a variadic
// entry point the last one wins.
type ParseOpt struct {
	Sentinels SentinelConfig
	// MaxDepth limits container nesting (0 = unlimited).
	MaxDepth int
	// MaxBytes limits consumed input (0 = unlimited).
	MaxBytes int64
	// OnDuplicateKey decides what a repeated key inside one object does.
	// Ignore and Warn keep the first occurrence.
	OnDuplicateKey Severity
	// Initial and Resize control buffer growth (defaults 1024 and 1.5).
	Initial int
	Resize  float64
	Logger  *slog.Logger
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

func (o ParseOpt) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o ParseOpt) bufferOptions() buffer.Options {
	return buffer.Options{Initial: o.Initial, Resize: o.Resize}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
