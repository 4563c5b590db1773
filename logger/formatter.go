package logger

import (
	"bytes"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	resetColorCode         = 0
	defaultFieldSeparator  = " | "
	defaultTimestampFormat = time.RFC3339
)

// LevelNameDisplayMode defines how log level names are displayed.
type LevelNameDisplayMode int

const (
	// ShowAll shows all level names.
	ShowAll LevelNameDisplayMode = iota
	// ShowAboveWarn shows level names for WARN, ERROR, FATAL, PANIC.
	ShowAboveWarn
	// HideAll hides all level names.
	HideAll
)

// Formatter implements logrus.Formatter with ordered fields and a compact
// single-line layout.
type Formatter struct {
	// TimestampFormat specifies the format of the timestamp. Default: time.RFC3339.
	TimestampFormat string
	// NoColors disables colorized output.
	NoColors bool
	// DisableTimestamp disables timestamp output.
	DisableTimestamp bool
	// DisplayLevelName configures which log level names are displayed.
	DisplayLevelName LevelNameDisplayMode
	// HideKeys hides field keys, showing only field values.
	HideKeys bool
	// FieldsDisplayWithOrder specifies field keys to display first, in order.
	// Fields not in this list are appended alphabetically.
	FieldsDisplayWithOrder []string
	// FieldSeparator defines the separator between fields. Default: " | ".
	FieldSeparator string
	// DisableCaller disables caller information output.
	DisableCaller bool
	// CustomCallerFormatter allows a custom function to format caller information.
	CustomCallerFormatter func(*runtime.Frame) string
}

// Format formats the log entry.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	if !f.DisableTimestamp {
		timestampFormat := f.TimestampFormat
		if timestampFormat == "" {
			timestampFormat = defaultTimestampFormat
		}
		b.WriteString(entry.Time.Format(timestampFormat))
		b.WriteString(" ")
	}

	showLevelName := false
	switch f.DisplayLevelName {
	case ShowAll:
		showLevelName = true
	case ShowAboveWarn:
		showLevelName = entry.Level <= logrus.WarnLevel
	case HideAll:
		showLevelName = false
	}

	if showLevelName {
		if !f.NoColors {
			fmt.Fprintf(b, "\x1b[%dm", getColorByLevel(entry.Level))
		}

		levelStr := entry.Level.String()
		if len(levelStr) > 4 {
			levelStr = levelStr[:4]
		}
		fmt.Fprintf(b, "[%s]", strings.ToUpper(levelStr))

		if !f.NoColors {
			fmt.Fprintf(b, "\x1b[%dm", resetColorCode)
		}
		b.WriteString(" ")
	}

	fieldSeparator := f.FieldSeparator
	if fieldSeparator == "" {
		fieldSeparator = defaultFieldSeparator
	}

	if len(entry.Data) > 0 {
		b.WriteString("[")
		if len(f.FieldsDisplayWithOrder) == 0 {
			f.writeFieldsAlphabetically(b, entry, fieldSeparator)
		} else {
			f.writeOrderedFields(b, entry, fieldSeparator)
		}
		b.WriteString("] ")
	}

	b.WriteString(entry.Message)

	if !f.DisableCaller && entry.HasCaller() {
		b.WriteString(" ")
		f.writeCaller(b, entry)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *Formatter) writeFieldsAlphabetically(b *bytes.Buffer, entry *logrus.Entry, separator string) {
	fields := make([]string, 0, len(entry.Data))
	for field := range entry.Data {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for i, field := range fields {
		f.writeKeyValue(b, field, entry.Data[field])
		if i < len(fields)-1 {
			b.WriteString(separator)
		}
	}
}

func (f *Formatter) writeOrderedFields(b *bytes.Buffer, entry *logrus.Entry, separator string) {
	displayedCount := 0
	foundInOrder := make(map[string]bool)

	for _, field := range f.FieldsDisplayWithOrder {
		if value, ok := entry.Data[field]; ok {
			if displayedCount > 0 {
				b.WriteString(separator)
			}
			f.writeKeyValue(b, field, value)
			foundInOrder[field] = true
			displayedCount++
		}
	}

	if displayedCount < len(entry.Data) {
		remainingFields := make([]string, 0, len(entry.Data)-displayedCount)
		for field := range entry.Data {
			if !foundInOrder[field] {
				remainingFields = append(remainingFields, field)
			}
		}
		sort.Strings(remainingFields)

		for _, field := range remainingFields {
			if displayedCount > 0 {
				b.WriteString(separator)
			}
			f.writeKeyValue(b, field, entry.Data[field])
			displayedCount++
		}
	}
}

func (f *Formatter) writeKeyValue(b *bytes.Buffer, key string, value interface{}) {
	if f.HideKeys {
		fmt.Fprintf(b, "%v", value)
	} else {
		fmt.Fprintf(b, "%s:%v", key, value)
	}
}

func (f *Formatter) writeCaller(b *bytes.Buffer, entry *logrus.Entry) {
	if !entry.HasCaller() {
		return
	}
	if f.CustomCallerFormatter != nil {
		fmt.Fprint(b, f.CustomCallerFormatter(entry.Caller))
		return
	}
	callerFile := filepath.Base(entry.Caller.File)
	callerFunc := filepath.Base(entry.Caller.Function)
	if parts := strings.Split(callerFunc, "."); len(parts) > 1 {
		callerFunc = parts[len(parts)-1]
	}
	fmt.Fprintf(b, "(%s:%d %s)", callerFile, entry.Caller.Line, callerFunc)
}

func getColorByLevel(level logrus.Level) int {
	switch level {
	case logrus.TraceLevel:
		return colorGray
	case logrus.DebugLevel:
		return colorBlue
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default: // InfoLevel
		return colorGray
	}
}

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)
