/* Package ipp implements the IPP core protocol in pure Go.
 *
 * Optional debug logging for the stream parser
 */

package ipp

import (
	"log"
	"os"
)

// Logger is the one-method interface the stream parser uses to trace
// its scan progress. It deliberately mirrors the shape of a single
// printf-style method rather than pulling in a structured logging
// dependency: nothing in this codec's domain needs levels, fields or
// sinks beyond "print this debug line somewhere".
type Logger interface {
	Debugf(format string, args ...interface{})
}

// stdLogger adapts the standard library's *log.Logger to the Logger
// interface above.
type stdLogger struct {
	*log.Logger
}

// Debugf implements Logger.
func (l stdLogger) Debugf(format string, args ...interface{}) {
	l.Printf(format, args...)
}

// NewStdLogger returns a Logger that writes to stderr with the given
// prefix, suitable for StreamParser.SetLogger during development.
func NewStdLogger(prefix string) Logger {
	return stdLogger{log.New(os.Stderr, prefix, log.LstdFlags)}
}

// nullLogger discards everything; it is the StreamParser default so
// callers never need a nil check.
type nullLogger struct{}

func (nullLogger) Debugf(string, ...interface{}) {}
