package listener

import (
	"github.com/mensylisir/xmprogress/progress"
	"github.com/mensylisir/xmprogress/step"
)

// Recorder captures notifications for later inspection. Embedding callers
// use it to learn how a run ended, since a failed run stops silently.
type Recorder struct {
	Started    []string
	Completed  []string
	Progress   float64
	FailedStep step.Step
}

func (r *Recorder) ProgressStepStarted(s step.Step) error {
	r.Started = append(r.Started, s.Code())
	return nil
}

func (r *Recorder) ProgressChanged(s step.Step, stepProgress float64, maxProgress int) error {
	r.Completed = append(r.Completed, s.Code())
	r.Progress += stepProgress
	return nil
}

func (r *Recorder) Failed(s step.Step) {
	r.FailedStep = s
}

var _ progress.Listener = (*Recorder)(nil)
