package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Safe to use before Init; Init only adds the rotating file sink.
var (
	InfoLogger  = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stdout, logrus.ErrorLevel)
)

// Init points the process-wide loggers at a size-rotated file, mirrored to
// stdout. Call once from main before serving.
func Init(logFile string) {
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	out := io.MultiWriter(os.Stdout, rotator)
	InfoLogger.SetOutput(out)
	ErrorLogger.SetOutput(out)
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	return l
}
