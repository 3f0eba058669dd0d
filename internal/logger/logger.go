// Package logger configures the logrus logger shared by the commands.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Init sets the level and the formatter of Log. JSON is used in production,
// text everywhere else.
func Init(level, mode string) {
	InitWriter(os.Stderr, level, mode)
}

func InitWriter(w io.Writer, level, mode string) {
	Log.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		Log.Warnf("invalid log level %q, using info", level)
	} else {
		Log.SetLevel(lvl)
	}

	switch strings.ToLower(mode) {
	case "production", "staging":
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}

// With returns an entry of Log tagged with the given component.
func With(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
