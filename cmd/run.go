package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mensylisir/xmprogress/common"
	"github.com/mensylisir/xmprogress/listener"
	"github.com/mensylisir/xmprogress/logger"
	"github.com/mensylisir/xmprogress/plan"
	"github.com/mensylisir/xmprogress/progress"
	xmtime "github.com/mensylisir/xmprogress/time"
)

var (
	planFile string
	quiet    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the steps of a plan file in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevelStr)
		if err != nil {
			return errors.Wrapf(err, "invalid log level '%s'", logLevelStr)
		}

		log, err := logger.New(logDir, verbose, level)
		if err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		appLog := log.WithField(common.LogFieldApp, common.AppName)

		p, err := plan.NewLoader(planFile).Load()
		if err != nil {
			return err
		}
		listLog := appLog.WithField(common.LogFieldList, p.Metadata.Name)

		list, err := p.Build(progress.WithLogger(listLog))
		if err != nil {
			return err
		}

		recorder := &listener.Recorder{}
		list.AddListener(recorder)
		list.AddListener(listener.NewLogListener(listLog))
		if !quiet {
			list.AddListener(listener.NewBarListener(cmd.OutOrStdout()))
		}

		if err := list.Start(); err != nil {
			return errors.Wrapf(err, "run of plan '%s' aborted", p.Metadata.Name)
		}
		if recorder.FailedStep != nil {
			return errors.Errorf("plan '%s' stopped at step '%s' after %s",
				p.Metadata.Name, recorder.FailedStep.Name(), xmtime.ShortDur(list.Time()))
		}

		listLog.Infof("Plan '%s' completed, %d steps in %s",
			p.Metadata.Name, len(recorder.Completed), xmtime.ShortDur(list.Time()))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&planFile, "file", "f", "", "Path to the plan YAML file (required)")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not render the progress bar")
	_ = runCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(runCmd)
}
