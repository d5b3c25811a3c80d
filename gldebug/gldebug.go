// SPDX-License-Identifier: Unlicense OR MIT

// Package gldebug turns KHR_debug output into readable log lines or
// structured messages.
package gldebug

import (
	"fmt"
	"log"

	"github.com/go-gfx/glbind/gl"
)

// Message is a decoded debug message.
type Message struct {
	Source   gl.Enum
	Type     gl.Enum
	Severity gl.Enum
	ID       uint
	Text     string
}

func (m Message) String() string {
	return fmt.Sprintf("%s %s %s 0x%x: %s",
		SourceString(m.Source), TypeString(m.Type), SeverityString(m.Severity), m.ID, m.Text)
}

// Option configures Install.
type Option func(*config)

type config struct {
	logger      *log.Logger
	handler     func(Message)
	minSeverity gl.Enum
	synchronous bool
}

// Logger directs messages to l instead of the default logger.
func Logger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Handler delivers decoded messages to fn instead of logging them.
func Handler(fn func(Message)) Option {
	return func(c *config) { c.handler = fn }
}

// MinSeverity drops messages below sev. The default drops notifications
// only.
func MinSeverity(sev gl.Enum) Option {
	return func(c *config) { c.minSeverity = sev }
}

// Synchronous delivers messages on the thread of the offending call, which
// makes stack traces useful at some driver cost.
func Synchronous() Option {
	return func(c *config) { c.synchronous = true }
}

// Install enables debug output on f and forwards every message to the
// configured sink. It reports an error when the context lacks the KHR_debug
// entry points; contexts not created with the debug flag may deliver
// nothing even after a successful install.
func Install(f *gl.Functions, opts ...Option) error {
	c := config{
		logger:      log.Default(),
		minSeverity: gl.DEBUG_SEVERITY_LOW,
	}
	for _, o := range opts {
		o(&c)
	}
	if err := f.DebugMessageCallback(newHandler(&c)); err != nil {
		return err
	}
	f.Enable(gl.DEBUG_OUTPUT)
	if c.synchronous {
		f.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}
	// Ask the driver for everything; filtering happens in the handler.
	return f.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, true)
}

func newHandler(c *config) gl.DebugProc {
	min := severityRank(c.minSeverity)
	logger, handler := c.logger, c.handler
	return func(source, gtype gl.Enum, id uint, severity gl.Enum, text string) {
		if severityRank(severity) < min {
			return
		}
		m := Message{Source: source, Type: gtype, Severity: severity, ID: id, Text: text}
		if handler != nil {
			handler(m)
			return
		}
		logger.Printf("gl: %s", m)
	}
}

// severityRank orders severities for filtering. Unknown values rank
// highest so they are never dropped.
func severityRank(sev gl.Enum) int {
	switch sev {
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		return 0
	case gl.DEBUG_SEVERITY_LOW:
		return 1
	case gl.DEBUG_SEVERITY_MEDIUM:
		return 2
	case gl.DEBUG_SEVERITY_HIGH:
		return 3
	default:
		return 3
	}
}

// SourceString names a debug source. Unrecognized values render as UNKNOWN.
func SourceString(source gl.Enum) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "WINDOW_SYSTEM"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "SHADER_COMPILER"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "THIRD_PARTY"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "APPLICATION"
	case gl.DEBUG_SOURCE_OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// TypeString names a debug message type. Unrecognized values render as
// UNKNOWN.
func TypeString(gtype gl.Enum) string {
	switch gtype {
	case gl.DEBUG_TYPE_ERROR:
		return "ERROR"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "DEPRECATED_BEHAVIOR"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "UNDEFINED_BEHAVIOR"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "PORTABILITY"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "PERFORMANCE"
	case gl.DEBUG_TYPE_MARKER:
		return "MARKER"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		return "PUSH_GROUP"
	case gl.DEBUG_TYPE_POP_GROUP:
		return "POP_GROUP"
	case gl.DEBUG_TYPE_OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// SeverityString names a severity. Unrecognized values render as UNKNOWN.
func SeverityString(sev gl.Enum) string {
	switch sev {
	case gl.DEBUG_SEVERITY_HIGH:
		return "HIGH"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "MEDIUM"
	case gl.DEBUG_SEVERITY_LOW:
		return "LOW"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		return "NOTIFICATION"
	default:
		return "UNKNOWN"
	}
}
