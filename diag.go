package gsh

import (
	"fmt"
	"io"
	"os"
)

// Level orders diagnostic messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// DiagHandler receives every emitted diagnostic. Replacing it redirects
// output away from the default writer.
type DiagHandler func(level Level, msg string)

// Diag is a leveled diagnostic sink. Debug messages are suppressed unless
// verbose mode is on; Fatal terminates the process.
type Diag struct {
	out     io.Writer
	verbose bool
	handler DiagHandler
	exit    func(int)
}

func NewDiag(out io.Writer) *Diag {
	return &Diag{out: out, exit: os.Exit}
}

func (d *Diag) SetVerbose(v bool) { d.verbose = v }

// SetHandler replaces the default formatting with h. A nil h restores
// the default.
func (d *Diag) SetHandler(h DiagHandler) { d.handler = h }

func (d *Diag) Debugf(format string, args ...interface{}) {
	if !d.verbose {
		return
	}
	d.emit(LevelDebug, format, args...)
}

func (d *Diag) Infof(format string, args ...interface{}) {
	d.emit(LevelInfo, format, args...)
}

func (d *Diag) Warnf(format string, args ...interface{}) {
	d.emit(LevelWarning, format, args...)
}

func (d *Diag) Errorf(format string, args ...interface{}) {
	d.emit(LevelError, format, args...)
}

// Fatalf reports the message and exits with status 1.
func (d *Diag) Fatalf(format string, args ...interface{}) {
	d.emit(LevelFatal, format, args...)
	d.exit(1)
}

func (d *Diag) emit(level Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if d.handler != nil {
		d.handler(level, msg)
		return
	}
	fmt.Fprintf(d.out, "%s: [%s] %s\n", Name, level, msg)
}
