package diagnostic

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Diagnostic codes.
const (
	CodeUnresolvedType     = "UNRESOLVED_TYPE"
	CodePassthroughField   = "PASSTHROUGH_FIELD"
	CodeMissingConstructor = "MISSING_CONSTRUCTOR"
	CodeRegistryMismatch   = "REGISTRY_MISMATCH"
	CodeTypeProcessed      = "TYPE_PROCESSED"
	CodeFileEmitted        = "FILE_EMITTED"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message about one record type or one of its fields.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code    string
	Message string
	// Type is the qualified record type name, if any.
	Type string
	// Field is the field name within Type, if any.
	Field string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}
	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}
	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}
	return msg
}

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Report(d Diagnostic)
}

// Infof reports an info diagnostic.
func Infof(s Sink, code, typ, field, format string, args ...any) {
	report(s, SeverityInfo, code, typ, field, format, args...)
}

// Warnf reports a warning diagnostic.
func Warnf(s Sink, code, typ, field, format string, args ...any) {
	report(s, SeverityWarning, code, typ, field, format, args...)
}

// Errorf reports an error diagnostic.
func Errorf(s Sink, code, typ, field, format string, args ...any) {
	report(s, SeverityError, code, typ, field, format, args...)
}

func report(s Sink, sev Severity, code, typ, field, format string, args ...any) {
	if s == nil {
		return
	}
	s.Report(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Type:     typ,
		Field:    field,
	})
}

// Collector keeps every reported diagnostic in memory.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report implements Sink.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// All returns a snapshot of the collected diagnostics in report order.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// ByCode returns the collected diagnostics carrying code.
func (c *Collector) ByCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.All() {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors returns true if any error diagnostic was reported.
func (c *Collector) HasErrors() bool {
	for _, d := range c.All() {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

type zapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a Sink that writes diagnostics to logger.
func NewZapSink(logger *zap.Logger) Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapSink{logger: logger}
}

func (z *zapSink) Report(d Diagnostic) {
	fields := make([]zap.Field, 0, 3)
	if d.Code != "" {
		fields = append(fields, zap.String("code", d.Code))
	}
	if d.Type != "" {
		fields = append(fields, zap.String("type", d.Type))
	}
	if d.Field != "" {
		fields = append(fields, zap.String("field", d.Field))
	}

	switch d.Severity {
	case SeverityError:
		z.logger.Error(d.Message, fields...)
	case SeverityWarning:
		z.logger.Warn(d.Message, fields...)
	default:
		z.logger.Info(d.Message, fields...)
	}
}

type multiSink []Sink

// Multi fans every diagnostic out to all sinks.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiSink) Report(d Diagnostic) {
	for _, s := range m {
		s.Report(d)
	}
}

type discard struct{}

// Discard returns a Sink that drops everything.
func Discard() Sink { return discard{} }

func (discard) Report(Diagnostic) {}
