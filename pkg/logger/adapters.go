package logger

import (
	"bytes"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
)

// Level selects the Interface method a foreign log line is forwarded to.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (lvl Level) emit(l Interface, line string) {
	switch lvl {
	case LevelDebug:
		l.Debug(line)
	case LevelInfo:
		l.Info("%s", line)
	case LevelWarn:
		l.Warn("%s", line)
	case LevelError:
		l.Error(line)
	}
}

// Printf returns a printf-style sink for libraries that take a logging
// callback, such as chromedp's WithLogf. Each line is prefixed.
func Printf(l Interface, lvl Level, prefix string) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		lvl.emit(l, prefix+fmt.Sprintf(format, args...))
	}
}

// lineWriter turns io.Writer output into one log entry per write.
type lineWriter struct {
	l   Interface
	lvl Level
}

func (w lineWriter) Write(p []byte) (int, error) {
	if line := bytes.TrimRight(p, "\r\n"); len(line) > 0 {
		w.lvl.emit(w.l, string(line))
	}

	return len(p), nil
}

// SetupStdLog routes the standard library log output through l at warn level.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(lineWriter{l: l, lvl: LevelWarn})
}

// SetupGin routes Gin's logs through l.
func SetupGin(l Interface) {
	gin.DefaultWriter = lineWriter{l: l, lvl: LevelInfo}
	gin.DefaultErrorWriter = lineWriter{l: l, lvl: LevelError}
}
