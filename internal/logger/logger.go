// Package logger holds the logger shared by the commands of the module.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// L is the process-wide logger. It writes to stderr at the info level until
// reconfigured with Setup.
var L = New(os.Stderr, logrus.InfoLevel)

// New constructs a logger writing to w at the given level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out:   w,
		Level: level,
		Hooks: make(logrus.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			ForceFormatting: true,
		},
	}
}

// Setup sets the level of L, enabling debug logs when verbose is true.
func Setup(verbose bool) {
	if verbose {
		L.SetLevel(logrus.DebugLevel)
	} else {
		L.SetLevel(logrus.InfoLevel)
	}
}
