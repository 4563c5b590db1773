// logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"

	"github.com/mensylisir/xmprogress/common"
)

// fieldsOrder is the display order for the well-known log fields attached by
// the progress engine and its listeners.
var fieldsOrder = []string{
	common.LogFieldApp, common.LogFieldList, common.LogFieldStep,
	common.LogFieldStepCode, common.LogFieldState,
}

// New creates a configured logrus.Logger. With an empty outputPath the
// logger writes colorized output to stdout; otherwise it writes to a daily
// rotated file under outputPath via a hook and discards its default output.
func New(outputPath string, verbose bool, defaultLevel logrus.Level) (*logrus.Logger, error) {
	log := logrus.New()

	currentLogLevel := defaultLevel
	if verbose {
		currentLogLevel = logrus.DebugLevel
	}
	log.SetLevel(currentLogLevel)

	displayLevelConfig := ShowAboveWarn
	if verbose {
		displayLevelConfig = ShowAll
	}

	if outputPath != "" {
		if err := os.MkdirAll(outputPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log output directory %s: %w", outputPath, err)
		}
		logFilePath := filepath.Join(outputPath, "app.log")

		writer, err := rotatelogs.New(
			logFilePath+".%Y%m%d", // Daily rotation
			rotatelogs.WithLinkName(logFilePath),
			rotatelogs.WithMaxAge(7*24*time.Hour),
			rotatelogs.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rotatelogs for %s: %w", logFilePath, err)
		}

		log.SetReportCaller(true)
		fileFormatter := &Formatter{
			TimestampFormat:        "2006-01-02 15:04:05.000 MST",
			NoColors:               true,
			DisplayLevelName:       displayLevelConfig,
			FieldsDisplayWithOrder: fieldsOrder,
			FieldSeparator:         " | ",
			CustomCallerFormatter: func(frame *runtime.Frame) string {
				return fmt.Sprintf(" [%s:%d %s]", filepath.Base(frame.File), frame.Line, filepath.Base(frame.Function))
			},
		}
		log.SetFormatter(fileFormatter)

		logWriters := lfshook.WriterMap{}
		for _, level := range logrus.AllLevels {
			if log.IsLevelEnabled(level) {
				logWriters[level] = writer
			}
		}
		log.Hooks.Add(lfshook.NewHook(logWriters, fileFormatter))
		// File logging goes through the hook; the default stream would
		// duplicate every line.
		log.SetOutput(io.Discard)
	} else {
		consoleFormatter := &Formatter{
			TimestampFormat:        "15:04:05",
			NoColors:               false,
			DisplayLevelName:       displayLevelConfig,
			DisableCaller:          true, // Caller info often too verbose for console
			FieldsDisplayWithOrder: fieldsOrder,
		}
		log.SetFormatter(consoleFormatter)
		log.SetOutput(os.Stdout)
	}

	return log, nil
}

// Discard returns a logger entry that drops everything. It is the default
// logging collaborator for components whose caller did not inject one.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
