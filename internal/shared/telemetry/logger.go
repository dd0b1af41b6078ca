package telemetry

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "msg",
		},
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure sets the log level. debug forces the debug level regardless of levelStr.
func Configure(levelStr string, debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(levelStr))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// SetOutput redirects log output. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	logger.WithFields(logrus.Fields(fields)).Error(msg)
}
