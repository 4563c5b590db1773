// logger_test.go
package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensylisir/xmprogress/common"
)

func TestNew_ConsoleLogger(t *testing.T) {
	log, err := New("", false, logrus.InfoLevel)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	_, ok := log.Formatter.(*Formatter)
	assert.True(t, ok)
}

func TestNew_VerboseOverridesLevel(t *testing.T) {
	log, err := New("", true, logrus.WarnLevel)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_FileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := New(dir, false, logrus.InfoLevel)
	require.NoError(t, err)

	log.WithField(common.LogFieldApp, common.AppName).Info("hello from the test")

	// Rotatelogs creates a dated file plus a symlink named app.log.
	matches, err := filepath.Glob(filepath.Join(dir, "app.log*"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "expected a log file under %s", dir)

	var content []byte
	for _, m := range matches {
		b, readErr := os.ReadFile(m)
		if readErr == nil && len(b) > 0 {
			content = b
			break
		}
	}
	assert.Contains(t, string(content), "hello from the test")
}

func TestDiscard(t *testing.T) {
	entry := Discard()
	require.NotNil(t, entry)
	entry.WithField("k", "v").Error("should vanish quietly")
}

func TestFormatter_OrderedFields(t *testing.T) {
	f := &Formatter{
		DisableTimestamp:       true,
		NoColors:               true,
		DisableCaller:          true,
		DisplayLevelName:       ShowAll,
		FieldsDisplayWithOrder: []string{common.LogFieldList, common.LogFieldStep},
	}

	log := logrus.New()
	entry := log.WithFields(logrus.Fields{
		common.LogFieldStep: "Build",
		common.LogFieldList: "release",
		"extra":             1,
	})
	entry.Level = logrus.InfoLevel
	entry.Time = time.Now()
	entry.Message = "running"

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] [List:release | Step:Build | extra:1] running\n", string(out))
}

func TestFormatter_HideKeysAndLevels(t *testing.T) {
	f := &Formatter{
		DisableTimestamp: true,
		NoColors:         true,
		DisableCaller:    true,
		DisplayLevelName: ShowAboveWarn,
		HideKeys:         true,
	}

	log := logrus.New()
	entry := logrus.NewEntry(log)
	entry.Level = logrus.InfoLevel
	entry.Time = time.Now()
	entry.Message = "quiet level"

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "quiet level\n", string(out))

	entry.Level = logrus.WarnLevel
	entry.Message = "loud level"
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[WARN] loud level\n", string(out))
}
