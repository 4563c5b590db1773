package listener

import (
	"fmt"
	"io"
	"strings"

	"github.com/mensylisir/xmprogress/progress"
	"github.com/mensylisir/xmprogress/step"
	xmtime "github.com/mensylisir/xmprogress/time"
)

const defaultBarWidth = 40

// BarListener renders a textual progress bar to a writer, one line per
// completed step.
type BarListener struct {
	w     io.Writer
	width int
	done  float64
}

// NewBarListener creates a bar listener writing to w.
func NewBarListener(w io.Writer) *BarListener {
	return &BarListener{w: w, width: defaultBarWidth}
}

// ProgressStepStarted announces the step about to run.
func (bl *BarListener) ProgressStepStarted(s step.Step) error {
	if s.Description() != "" {
		fmt.Fprintf(bl.w, "==> %s (%s)\n", s.Name(), s.Description())
	} else {
		fmt.Fprintf(bl.w, "==> %s\n", s.Name())
	}
	return nil
}

// ProgressChanged accumulates the increment and redraws the bar line.
func (bl *BarListener) ProgressChanged(s step.Step, stepProgress float64, maxProgress int) error {
	bl.done += stepProgress

	fraction := 0.0
	if maxProgress > 0 {
		fraction = bl.done / float64(maxProgress)
	}
	// Live step-count reweighting can overshoot the scale; keep the bar sane.
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}

	filled := int(fraction * float64(bl.width))
	fmt.Fprintf(bl.w, "[%s%s] %5.1f%% %s (%s)\n",
		strings.Repeat("#", filled),
		strings.Repeat("-", bl.width-filled),
		fraction*100,
		s.Name(),
		xmtime.ShortDur(s.Time()))
	return nil
}

// Failed marks the run as stopped at this step.
func (bl *BarListener) Failed(s step.Step) {
	fmt.Fprintf(bl.w, "==> FAILED: %s\n", s.Name())
}

var _ progress.Listener = (*BarListener)(nil)
