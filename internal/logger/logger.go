package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel accepts a level name ("warn" and "warning" are the same) or its
// number.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "0":
		return LevelError, nil
	case "warn", "warning", "1":
		return LevelWarning, nil
	case "info", "2":
		return LevelInfo, nil
	case "debug", "3":
		return LevelDebug, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var (
	Error *log.Logger
	Warn  *log.Logger
	Info  *log.Logger
	Debug *log.Logger

	mu      sync.Mutex
	current = LevelInfo
	out     io.Writer = os.Stdout
	errOut  io.Writer = os.Stderr
)

func init() {
	Setup(LevelInfo)
}

// Setup rebuilds every logger for level. Levels above it write to io.Discard.
func Setup(level Level) {
	mu.Lock()
	defer mu.Unlock()

	current = level
	Error = log.New(errOut, "Error: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = enabled(level >= LevelWarning, errOut, "Warning: ", log.Ldate|log.Ltime)
	Info = enabled(level >= LevelInfo, out, "Info: ", log.Ldate|log.Ltime)
	Debug = enabled(level >= LevelDebug, out, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func enabled(on bool, w io.Writer, prefix string, flags int) *log.Logger {
	if !on {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, prefix, flags)
}

// SetLevel switches level by name, keeping the current level on error.
func SetLevel(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	Setup(level)
	return nil
}

// setOutputs sends info and debug to stdout and warnings and errors to stderr.
func setOutputs(stdout, stderr io.Writer) {
	mu.Lock()
	out, errOut = stdout, stderr
	level := current
	mu.Unlock()

	Setup(level)
}

func CurrentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return current
}
