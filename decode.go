package lottie

import (
	"errors"

	eng "github.com/reoring/golottie/internal/engine"
)

// DecodeObject reads one JSON document from src and returns its top-level
// object. Syntax errors map to file_not_json, any other top-level value to
// file_not_object, and enforcement failures to duplicate_key, max_depth or
// truncated.
func DecodeObject(src Source, opts ...ParseOpt) (map[string]any, error) {
	opt := LastOpt(opts)
	var ts eng.TokenSource = src
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
	}
	if opt.IssueSink != nil && opt.Strictness.OnDuplicateKey == Warn {
		// only warnings go to the sink; fatal issues come back as the error
		eo.IssueSink = func(si eng.SimpleIssue) {
			if si.Code == eng.CodeDuplicateKey {
				opt.IssueSink(fromEngineIssue(si, nil))
			}
		}
	}
	if eo.Enabled() {
		ts = eng.WrapWithEnforcement(ts, eo)
	}

	v, err := eng.DecodeDocument(ts)
	if err != nil {
		var ie eng.IssueError
		if errors.As(err, &ie) {
			return nil, fromEngineIssue(ie.SimpleIssue, err)
		}
		return nil, &Error{Code: CodeFileNotJSON, Cause: err}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &Error{Code: CodeFileNotObject}
	}
	return obj, nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Fail:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssue(si eng.SimpleIssue, cause error) *Error {
	return &Error{Code: si.Code, Pointer: si.Path, Cause: cause}
}
