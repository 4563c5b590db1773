// Package listener provides ready-made progress.Listener implementations
// for the common cases of logging a run and rendering a textual bar.
package listener

import (
	"github.com/sirupsen/logrus"

	"github.com/mensylisir/xmprogress/common"
	"github.com/mensylisir/xmprogress/logger"
	"github.com/mensylisir/xmprogress/progress"
	"github.com/mensylisir/xmprogress/step"
	xmtime "github.com/mensylisir/xmprogress/time"
)

// LogListener reports run progress through a logrus entry.
type LogListener struct {
	log  *logrus.Entry
	done float64
}

// NewLogListener creates a listener logging through entry. A nil entry logs
// nowhere.
func NewLogListener(entry *logrus.Entry) *LogListener {
	if entry == nil {
		entry = logger.Discard()
	}
	return &LogListener{log: entry}
}

func (ll *LogListener) entry(s step.Step, state common.OperationState) *logrus.Entry {
	return ll.log.WithFields(logrus.Fields{
		common.LogFieldStep:     s.Name(),
		common.LogFieldStepCode: s.Code(),
		common.LogFieldState:    state.String(),
	})
}

// ProgressStepStarted logs that the step is about to run.
func (ll *LogListener) ProgressStepStarted(s step.Step) error {
	ll.entry(s, common.StateRunning).Infof("Executing step: %s", s.Description())
	return nil
}

// ProgressChanged logs the completed step with its increment and duration.
func (ll *LogListener) ProgressChanged(s step.Step, stepProgress float64, maxProgress int) error {
	ll.done += stepProgress
	ll.entry(s, common.StateSuccess).Infof("Progress %.1f/%d (+%.1f) after %s",
		ll.done, maxProgress, stepProgress, xmtime.ShortDur(s.Time()))
	return nil
}

// Failed logs that the run stopped at this step.
func (ll *LogListener) Failed(s step.Step) {
	ll.entry(s, common.StateFailed).Error("Step failed, run stopped")
}

var _ progress.Listener = (*LogListener)(nil)
