// Package logging is the leveled stderr logger shared by the plotter packages.
//
// Each package holds a Logger tagged with its component name, so lines read
// "[INFO] [series] ..." without callers repeating the tag.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var threshold int32 = int32(LevelInfo)

var out = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLevel sets the global threshold from a name such as "debug" or "WARN".
// It returns false and leaves the threshold alone for unknown names.
func SetLevel(name string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	atomic.StoreInt32(&threshold, int32(l))
	return true
}

func CurrentLevel() Level { return Level(atomic.LoadInt32(&threshold)) }

// SetOutput redirects every logger.
func SetOutput(w io.Writer) { out.SetOutput(w) }

// Logger tags lines with a component name.
type Logger struct {
	component string
}

func For(component string) Logger { return Logger{component: component} }

func (l Logger) emit(level Level, format string, args []interface{}) {
	if CurrentLevel() > level {
		return
	}
	msg := format
	// pre-formatted messages may carry a literal %
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if l.component == "" {
		out.Printf("[%s] %s", levelTags[level], msg)
		return
	}
	out.Printf("[%s] [%s] %s", levelTags[level], l.component, msg)
}

func (l Logger) Debugf(format string, args ...interface{}) { l.emit(LevelDebug, format, args) }
func (l Logger) Infof(format string, args ...interface{})  { l.emit(LevelInfo, format, args) }
func (l Logger) Warnf(format string, args ...interface{})  { l.emit(LevelWarn, format, args) }
func (l Logger) Errorf(format string, args ...interface{}) { l.emit(LevelError, format, args) }

// Elapsed logs the time since start at debug level: defer log.Elapsed(time.Now(), "load").
func (l Logger) Elapsed(start time.Time, what string) {
	l.Debugf("%s took %s", what, time.Since(start))
}
