package progress

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mensylisir/xmprogress/common"
	"github.com/mensylisir/xmprogress/hook"
	"github.com/mensylisir/xmprogress/logger"
	"github.com/mensylisir/xmprogress/step"
)

// List plans the execution of several pieces of code, each contained in a
// step.Step. Start executes all the steps in the order they were inserted
// and notifies the registered listeners as each step starts, as the overall
// progress changes and when a step fails. This lets a caller build a
// progress bar (or log, or telemetry sink) without embedding any
// presentation logic into the code that does the actual work.
type List struct {
	steps       []step.Step
	maxProgress int
	elapsed     time.Duration
	listeners   []Listener
	log         *logrus.Entry
}

// Option configures a List at construction time.
type Option func(*List)

// WithLogger sets the logging collaborator used for diagnostics. Without it
// the list logs nowhere, which keeps embedding callers and tests quiet.
func WithLogger(entry *logrus.Entry) Option {
	return func(l *List) {
		if entry != nil {
			l.log = entry
		}
	}
}

// NewList creates an empty list with the given maximum progress value,
// the scale against which per-step increments are expressed (e.g. 100 for
// percent).
func NewList(maxProgress int, opts ...Option) *List {
	l := &List{
		maxProgress: maxProgress,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append adds a step at the end of the list. Insertion order is execution
// order.
func (l *List) Append(s step.Step) {
	l.steps = append(l.steps, s)
}

// Insert adds a step at position i, shifting later steps. i may equal Len(),
// which appends.
func (l *List) Insert(i int, s step.Step) error {
	if i < 0 || i > len(l.steps) {
		return errors.Errorf("insert index %d out of range [0, %d]", i, len(l.steps))
	}
	l.steps = append(l.steps, nil)
	copy(l.steps[i+1:], l.steps[i:])
	l.steps[i] = s
	return nil
}

// Remove deletes the step at position i, shifting later steps.
func (l *List) Remove(i int) error {
	if i < 0 || i >= len(l.steps) {
		return errors.Errorf("remove index %d out of range [0, %d)", i, len(l.steps))
	}
	l.steps = append(l.steps[:i], l.steps[i+1:]...)
	return nil
}

// Len returns the current number of steps.
func (l *List) Len() int {
	return len(l.steps)
}

// Steps returns a copy of the current step sequence.
func (l *List) Steps() []step.Step {
	s := make([]step.Step, len(l.steps))
	copy(s, l.steps)
	return s
}

// Get returns the first step whose code equals code. Codes are not required
// to be unique and the scan is linear; step lists are expected to hold tens
// of entries, not thousands.
func (l *List) Get(code string) (step.Step, bool) {
	for _, s := range l.steps {
		if s.Code() == code {
			return s, true
		}
	}
	return nil, false
}

// AddListener appends a listener to the notification set. There is no
// deduplication and no removal; listeners are invoked in registration order
// for every notification type.
func (l *List) AddListener(listener Listener) {
	l.listeners = append(l.listeners, listener)
}

// MaxProgress returns the caller-supplied progress scale.
func (l *List) MaxProgress() int {
	return l.maxProgress
}

// Time returns the accumulated duration of the steps that completed
// successfully during the most recent Start call. It is zero before Start
// has run.
func (l *List) Time() time.Duration {
	return l.elapsed
}

// Start executes every step in the list, in order.
//
// For each step the listeners are first notified via ProgressStepStarted,
// then the step runs. An error (or panic) from either is logged, reported to
// every listener via Failed, and stops the whole run; Start returns nil in
// that case, the caller observes the failure only through the Failed
// notification and the incomplete elapsed time.
//
// After a step succeeds its duration is accumulated and listeners are
// notified via ProgressChanged with an increment of maxProgress divided by
// the live step count. The step sequence may be mutated while Start is
// running; steps appended before the iteration reaches their position are
// executed, and the per-step increment follows the live count. A listener
// registered while a step is in flight receives nothing for that step and
// every notification from the following step onward. An error from a
// ProgressChanged listener is not guarded: Start aborts and returns it.
func (l *List) Start() error {
	l.elapsed = 0

	// Index-based iteration over the live slice so that structural mutation
	// during the run is honored.
	for i := 0; i < len(l.steps); i++ {
		s := l.steps[i]

		// The listener set is captured once per step; a listener registered
		// mid-run receives no notifications for the step in flight and
		// everything from the following step onward.
		listeners := l.listeners

		if err := hook.Call(&stepAttempt{list: l, step: s, listeners: listeners}); err != nil {
			return nil
		}

		l.elapsed += s.Time()

		singleStepProgress := float64(l.maxProgress) / float64(len(l.steps))

		for _, listener := range listeners {
			if err := listener.ProgressChanged(s, singleStepProgress, l.maxProgress); err != nil {
				return errors.Wrapf(err, "listener failed handling progress change of step '%s'", s.Name())
			}
		}
	}
	return nil
}

// stepAttempt guards the started-notification and execution phase of a
// single step, converting panics into ordinary failures. It carries the
// listener set captured for this step.
type stepAttempt struct {
	list      *List
	step      step.Step
	listeners []Listener
}

func (a *stepAttempt) Try() error {
	for _, listener := range a.listeners {
		if err := listener.ProgressStepStarted(a.step); err != nil {
			return errors.Wrapf(err, "listener failed handling start of step '%s'", a.step.Name())
		}
	}

	stepLog := a.list.log.WithFields(logrus.Fields{
		common.LogFieldStep:     a.step.Name(),
		common.LogFieldStepCode: a.step.Code(),
	})
	return a.step.Execute(stepLog)
}

func (a *stepAttempt) Catch(err error) error {
	a.list.log.WithFields(logrus.Fields{
		common.LogFieldStep:     a.step.Name(),
		common.LogFieldStepCode: a.step.Code(),
	}).Errorf("Step execution aborted the run: %v", err)

	for _, listener := range a.listeners {
		listener.Failed(a.step)
	}
	return err
}

func (a *stepAttempt) Finally() {}

var _ hook.Interface = (*stepAttempt)(nil)
