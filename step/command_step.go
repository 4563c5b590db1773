package step

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultShell = "/bin/sh"

// CommandStep runs a local shell command as a Step.
type CommandStep struct {
	BaseStep

	// Command is the command line passed to the shell via -c.
	Command string
	// Shell overrides the shell binary. Default: /bin/sh.
	Shell string
	// WorkDir is the working directory for the command. Empty means the
	// process working directory.
	WorkDir string
	// Env holds additional environment variables, merged over the process
	// environment.
	Env map[string]string
	// Timeout bounds the command's execution. Zero means no timeout.
	Timeout time.Duration
}

// NewCommandStep creates a step that runs command through the default shell.
func NewCommandStep(code, name, description, command string) *CommandStep {
	return &CommandStep{
		BaseStep: NewBaseStep(code, name, description),
		Command:  command,
	}
}

// Execute runs the command, capturing combined output for diagnostics.
// The duration is measured even when the command fails.
func (s *CommandStep) Execute(logger *logrus.Entry) error {
	if strings.TrimSpace(s.Command) == "" {
		return errors.Errorf("step '%s' has no command to execute", s.Name())
	}
	defer s.MeasureSince(time.Now())

	shell := s.Shell
	if shell == "" {
		shell = defaultShell
	}

	ctx := context.Background()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, shell, "-c", s.Command)
	cmd.Dir = s.WorkDir
	if len(s.Env) > 0 {
		env := os.Environ()
		for k, v := range s.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
		cmd.Env = env
	}

	logger.Debugf("Running command for step '%s': %s -c %q", s.Name(), shell, s.Command)
	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		logger.Debugf("Command output for step '%s':\n%s", s.Name(), string(output))
	}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.Wrapf(ctx.Err(), "command for step '%s' timed out after %s", s.Name(), s.Timeout)
		}
		return errors.Wrapf(err, "command for step '%s' failed: %s", s.Name(), strings.TrimSpace(string(output)))
	}
	return nil
}

var _ Step = (*CommandStep)(nil)
