package progress

import (
	"github.com/mensylisir/xmprogress/step"
)

// Listener observes the execution of a List. Implementations typically drive
// a progress bar, a log, or a telemetry sink; the List makes no assumption
// about what they do.
//
// Errors returned from ProgressStepStarted are treated like a failure of the
// step itself: the run is aborted and Failed is delivered. Errors returned
// from ProgressChanged are not guarded and abort Start with that error.
type Listener interface {
	// ProgressStepStarted is called before the step begins executing.
	ProgressStepStarted(s step.Step) error

	// ProgressChanged is called after the step completed successfully.
	// stepProgress is the progress increment contributed by this step on
	// the maxProgress scale.
	ProgressChanged(s step.Step, stepProgress float64, maxProgress int) error

	// Failed is called when the step (or a started-phase listener) failed.
	// The run stops at the failing step; no further notifications follow.
	Failed(s step.Step)
}
