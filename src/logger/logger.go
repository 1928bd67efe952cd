package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Opens filename for appending, creating it and its directory if needed.
func NewLogFile(filename string) (*os.File, error) {
	var dir = filepath.Dir(filename)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

type logger struct {
	Loglevel Loglevel
	prefix   string
	File     io.Writer
	mu       sync.Mutex
	now      func() time.Time
}

// Newlogger returns a Logger writing to w everything at or below loglevel.
//
// The optional prefix is written inside the level brackets, e.g. "[avl-DEBUG]".
func Newlogger(loglevel Loglevel, w io.Writer, prefix ...string) Logger {
	var l = &logger{
		Loglevel: loglevel,
		File:     w,
		now:      time.Now,
	}
	if len(prefix) > 0 {
		l.prefix = prefix[0] + "-"
	}
	return l
}

func (l *logger) Critical(err error) {
	l.logLine(CRITICAL, err.Error())
}

// Write an error message, loglevel error
func (l *logger) Error(args ...any) {
	l.logLine(ERROR, fmt.Sprint(args...))
}

func (l *logger) Errorf(format string, args ...any) {
	l.log(ERROR, fmt.Sprintf(format, args...))
}

// Write a warning message, loglevel warning
func (l *logger) Warning(args ...any) {
	l.logLine(WARNING, fmt.Sprint(args...))
}

func (l *logger) Warningf(format string, args ...any) {
	l.log(WARNING, fmt.Sprintf(format, args...))
}

// Write an info message, loglevel info
func (l *logger) Info(args ...any) {
	l.logLine(INFO, fmt.Sprint(args...))
}

func (l *logger) Infof(format string, args ...any) {
	l.log(INFO, fmt.Sprintf(format, args...))
}

// Write a debug message, loglevel debug
func (l *logger) Debug(args ...any) {
	l.logLine(DEBUG, fmt.Sprint(args...))
}

func (l *logger) Debugf(format string, args ...any) {
	l.log(DEBUG, fmt.Sprintf(format, args...))
}

// Write a test message, loglevel test
func (l *logger) Test(args ...any) {
	l.logLine(TEST, fmt.Sprint(args...))
}

func (l *logger) Testf(format string, args ...any) {
	l.log(TEST, fmt.Sprintf(format, args...))
}

func (l *logger) logLine(level Loglevel, msg string) {
	l.log(level, msg+"\n")
}

func (l *logger) log(level Loglevel, msg string) {
	if level > l.Loglevel {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.File, "%s%s", l.generatePrefix(level), msg)
}

func (l *logger) generatePrefix(level Loglevel) string {
	var msg = fmt.Sprintf("%s [%s%s] ", l.now().Format("2006-01-02 15:04:05"), l.prefix, level)
	return Colorize(msg, getLogLevelColor(level))
}
