package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

func (l LogLevel) String() string {
	s := "unknown"
	switch l {
	case LogLevel_None:
		s = "None"
	case LogLevel_Warn:
		s = "Warn"
	case LogLevel_Info:
		s = "Info"
	case LogLevel_Debug:
		s = "Debug"
	}
	return fmt.Sprintf("%s(%d)", s, int(l))
}

var Level = LogLevel_Warn

// Output receives every message. Tests swap it for a buffer.
var Output io.Writer = os.Stderr

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

// indent is shared by every goroutine and only touched atomically.
var indent int32

func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		cyan.Fprintf(Output, strings.Repeat("  ", int(atomic.LoadInt32(&indent)))+f+"\n", args...)
	}
}

func Enter() {
	atomic.AddInt32(&indent, 1)
}

func Leave() {
	for {
		n := atomic.LoadInt32(&indent)
		if n <= 0 || atomic.CompareAndSwapInt32(&indent, n, n-1) {
			return
		}
	}
}

// SetLevelByFlags applies the --debug / --silent / --quiet switches shared by every command.
func SetLevelByFlags(debug, silent, quiet bool) {
	switch {
	case debug:
		Level = LogLevel_Debug
	case silent:
		Level = LogLevel_None
	case quiet:
		Level = LogLevel_Warn
	default:
		Level = LogLevel_Info
	}
}
