package step

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Step represents an individual unit of work executed by a progress list.
type Step interface {
	// Code returns the identifying token of the step, used for lookup.
	// Codes are not required to be unique; lookup returns the first match.
	Code() string

	// Name returns the short name of the step.
	Name() string

	// Description returns a human-readable description of what the step does.
	Description() string

	// Execute performs the primary action of the step. The step measures
	// its own execution time; callers read it back through Time.
	// The logger entry is pre-configured with step context.
	Execute(logger *logrus.Entry) error

	// Time returns how long the last Execute call took. It is zero before
	// the step has been executed.
	Time() time.Duration
}
