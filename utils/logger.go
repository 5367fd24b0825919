package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLogger sets up the info/error logger pair. When logFile is non-empty
// both loggers additionally write to a size-rotated file.
func InitLogger(logFile string) {
	formatter := &logrus.TextFormatter{FullTimestamp: true}

	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(formatter)
	InfoLogger.SetLevel(logrus.InfoLevel)

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(formatter)
	ErrorLogger.SetLevel(logrus.ErrorLevel)

	if logFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		InfoLogger.SetOutput(io.MultiWriter(os.Stdout, rotated))
		ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, rotated))
	}
}
