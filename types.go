package lottie

import "log/slog"

// Severity expresses the severity level for input issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Fail
)

// Strictness configures input enforcement.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Fail on duplicate JSON keys.
}

// ParseOpt bundles parsing options. The zero value parses leniently with the
// default go-json driver and no limits.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 = unlimited
	MaxBytes   int64 // 0 = unlimited
	// StrictOptional turns malformed optional fields into hard errors. By
	// default they are reported to IssueSink and treated as absent.
	StrictOptional bool
	// SkipUnsupported leaves out layers, shapes and assets of recognised but
	// unimplemented variants, reporting them to IssueSink instead of failing.
	SkipUnsupported bool
	// Driver selects the JSON tokenizer for byte and reader inputs.
	Driver JSONDriver
	// IssueSink receives warnings. Nil drops them.
	IssueSink func(*Error)
	// Logger receives breadcrumb debug traces. Nil disables tracing.
	Logger *slog.Logger
}

// Warn forwards e to the IssueSink, if any.
func (o ParseOpt) Warn(e *Error) {
	if o.IssueSink != nil {
		o.IssueSink(e)
	}
}

// LastOpt returns the last option or the zero value.
func LastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}
