package logger

import "strings"

// Logger is what the trees and the shell log through.
//
// A nil Logger is never called; callers check before logging.
type Logger interface {
	Critical(err error)
	Error(args ...any)
	Errorf(format string, args ...any)
	Warning(args ...any)
	Warningf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Debug(args ...any)
	Debugf(format string, args ...any)
	Test(args ...any)
	Testf(format string, args ...any)
}

type Loglevel int8

// A logger writes every message at or below its own level.
const (
	CRITICAL Loglevel = iota
	ERROR
	WARNING
	INFO
	DEBUG
	TEST
)

var levelNames = map[Loglevel]string{
	CRITICAL: "CRITICAL",
	ERROR:    "ERROR",
	WARNING:  "WARNING",
	INFO:     "INFO",
	DEBUG:    "DEBUG",
	TEST:     "TEST",
}

func (l Loglevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// LoglevelFromString parses a level name, case-insensitively.
//
// Unknown names fall back to INFO.
func LoglevelFromString(s string) Loglevel {
	s = strings.ToUpper(strings.TrimSpace(s))
	for level, name := range levelNames {
		if name == s {
			return level
		}
	}
	return INFO
}
