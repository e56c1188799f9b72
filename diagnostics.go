// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "fmt"

// DiagnosticKind classifies a Diagnostic for structured consumers (such as
// the --trace logging path in cmd/laxjson). It plays no role in the reader's
// control flow, which never branches on anything but the warning-promotion
// rule in addWarning.
type DiagnosticKind byte

// The two diagnostic severities.
const (
	DiagError DiagnosticKind = iota
	DiagWarning
)

func (k DiagnosticKind) String() string {
	if k == DiagWarning {
		return "Warning"
	}
	return "Error"
}

// Diagnostic is a single formatted error or warning, along with the source
// position and severity that produced it.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Col     int
	Message string
}

// String renders d exactly as the flat message surface does:
// "Error: line L, col C - message" or "Warning: line L, col C - message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: line %d, col %d - %s", d.Kind, d.Line, d.Col, d.Message)
}

// diagnosticsSink is a bounded pair of ordered diagnostic collections. It
// implements the warning-to-error promotion rule (addWarning) and the
// capacity rule: at most maxErrors entries per list, then one "too many"
// sentinel, then nothing.
type diagnosticsSink struct {
	flags     Flags
	maxErrors int

	errors   []Diagnostic
	warnings []Diagnostic
}

func newDiagnosticsSink(flags Flags, maxErrors int) *diagnosticsSink {
	return &diagnosticsSink{flags: flags, maxErrors: maxErrors}
}

func (d *diagnosticsSink) reset() {
	d.errors = d.errors[:0]
	d.warnings = d.warnings[:0]
}

// addError appends a formatted error at (line, col), subject to the bound.
func (d *diagnosticsSink) addError(line, col int, msg string) {
	if len(d.errors) < d.maxErrors {
		d.errors = append(d.errors, Diagnostic{DiagError, line, col, msg})
	} else if len(d.errors) == d.maxErrors {
		d.errors = append(d.errors, Diagnostic{DiagError, line, col, "too many error messages - ignoring further errors"})
	}
}

func (d *diagnosticsSink) addErrorf(line, col int, format string, args ...any) {
	d.addError(line, col, fmt.Sprintf(format, args...))
}

// addWarning appends a formatted warning at (line, col), routing through
// addError instead when kind is nonzero and not enabled in flags — the
// warning-to-error promotion rule.
func (d *diagnosticsSink) addWarning(kind Flags, line, col int, msg string) {
	if kind != 0 && !d.flags.Has(kind) {
		d.addError(line, col, msg)
		return
	}
	if len(d.warnings) < d.maxErrors {
		d.warnings = append(d.warnings, Diagnostic{DiagWarning, line, col, msg})
	} else if len(d.warnings) == d.maxErrors {
		d.warnings = append(d.warnings, Diagnostic{DiagWarning, line, col, "too many warning messages - ignoring further warnings"})
	}
}

func (d *diagnosticsSink) addWarningf(kind Flags, line, col int, format string, args ...any) {
	d.addWarning(kind, line, col, fmt.Sprintf(format, args...))
}

// errorStrings and warningStrings render the flat message surface (§6.3).
func (d *diagnosticsSink) errorStrings() []string   { return renderDiagnostics(d.errors) }
func (d *diagnosticsSink) warningStrings() []string { return renderDiagnostics(d.warnings) }

func renderDiagnostics(ds []Diagnostic) []string {
	if len(ds) == 0 {
		return nil
	}
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}
