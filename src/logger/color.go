package logger

import "github.com/fatih/color"

// Colors shared by the log prefixes and the shell.
var (
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
	Purple = color.New(color.FgMagenta)
	Cyan   = color.New(color.FgCyan)
	White  = color.New(color.FgWhite)
)

var levelColors = map[Loglevel]*color.Color{
	CRITICAL: color.New(color.FgRed, color.Bold),
	ERROR:    Red,
	WARNING:  Yellow,
	INFO:     Green,
	DEBUG:    Blue,
	TEST:     Purple,
}

func getLogLevelColor(level Loglevel) *color.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return White
}

// Colorize wraps msg in the escape codes of c.
//
// Nothing is added when color output is disabled, see DisableColor.
func Colorize(msg string, c *color.Color) string {
	return c.Sprint(msg)
}

// DisableColor turns color output off for the whole process.
func DisableColor(disabled bool) {
	color.NoColor = disabled
}
