// Package lol (log of location) is a leveled logging library that prints a
// high precision timestamp and the source location of each print to make
// tracing simpler. Higher levels can be filtered out for quieter output.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/atomic"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints a list of values with spaces in between.
	Ln func(a ...any)
	// F prints like fmt.Printf with the log prefix and location appended.
	F func(format string, a ...any)
	// S prints a spew.Sdump of the values for deep structure inspection.
	S func(a ...any)
	// C accepts a closure so the computation of an expensive log line is
	// skipped when the level is filtered out.
	C func(closure func() string)
	// Chk prints the error if there is one and reports whether it was nil,
	// for use directly inside an if condition.
	Chk func(e error) bool
	// Err constructs an error via fmt.Errorf, logs it at the site, and
	// passes it through for returning.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of print primitives at one log level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the name and colorizer of a log level.
	LevelSpec struct {
		Name      string
		Colorizer func(a ...any) string
	}
)

var LevelSpecs = []LevelSpec{
	{"", func(a ...any) string { return "" }},
	{"FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
	{"ERR", color.New(color.FgHiRed).Sprint},
	{"WRN", color.New(color.FgHiYellow).Sprint},
	{"INF", color.New(color.FgHiGreen).Sprint},
	{"DBG", color.New(color.FgHiBlue).Sprint},
	{"TRC", color.New(color.FgHiMagenta).Sprint},
}

// Log is the set of LevelPrinter for each level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of Chk predicates for each level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of log-and-return error constructors for each level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles the printers, checkers and error constructors.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the level the logger is printing at; anything above it is
// dropped.
var Level atomic.Int32

// Main is the package level logger, writing to stderr.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	Level.Store(Info)
}

// SetLogLevel configures the log level from its string name. Unknown names
// leave the level at Info.
func SetLogLevel(level string) {
	Level.Store(int32(GetLogLevel(level)))
}

// GetLogLevel returns the level number of a string level name.
func GetLogLevel(level string) (i int) {
	for i = range LevelNames {
		if strings.ToLower(level) == LevelNames[i] {
			return
		}
	}
	return Info
}

var locCol = color.New(color.FgBlue).Sprint

// emit is the single output path for every printer: timestamp, colored
// level tag, the message, and the code location of the caller's caller.
func emit(w io.Writer, level int32, text string) {
	fmt.Fprintf(w, "%s %s %s %s\n",
		locCol(timestamp()),
		LevelSpecs[level].Colorizer(LevelSpecs[level].Name),
		text,
		locCol(loc(3)),
	)
}

func timestamp() string {
	return time.Now().Format("2006-01-02T15:04:05.000Z07:00")
}

func loc(skip int) string {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}

func joined(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

func printer(level int32, w io.Writer) LevelPrinter {
	on := func() bool { return Level.Load() >= level }
	return LevelPrinter{
		Ln: func(a ...any) {
			if on() {
				emit(w, level, joined(a...))
			}
		},
		F: func(format string, a ...any) {
			if on() {
				emit(w, level, fmt.Sprintf(format, a...))
			}
		},
		S: func(a ...any) {
			if on() {
				emit(w, level, spew.Sdump(a...))
			}
		},
		C: func(closure func() string) {
			if on() {
				emit(w, level, closure())
			}
		},
		Chk: func(e error) bool {
			if e != nil {
				if on() {
					emit(w, level, e.Error())
				}
				return true
			}
			return false
		},
		Err: func(format string, a ...any) error {
			if on() {
				emit(w, level, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// New creates a logger bundle writing to the provided writer.
func New(w io.Writer) (l *Log, c *Check, e *Errorf) {
	l = &Log{
		F: printer(Fatal, w),
		E: printer(Error, w),
		W: printer(Warn, w),
		I: printer(Info, w),
		D: printer(Debug, w),
		T: printer(Trace, w),
	}
	c = &Check{
		F: l.F.Chk, E: l.E.Chk, W: l.W.Chk,
		I: l.I.Chk, D: l.D.Chk, T: l.T.Chk,
	}
	e = &Errorf{
		F: l.F.Err, E: l.E.Err, W: l.W.Err,
		I: l.I.Err, D: l.D.Err, T: l.T.Err,
	}
	return
}
