package main

import (
	"github.com/spf13/cobra"

	"github.com/colornav/cnctl/pkg/calibration"
)

func NewSelfCalibrationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "selfcalibration",
		Aliases: []string{"selfcal"},
		Short:   "Control the monitor-internal SelfCalibration routine",
		GroupID: gCalibration,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Start SelfCalibration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return executeSelfCalibration(cmd, calibration.ActionRun)
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop SelfCalibration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return executeSelfCalibration(cmd, calibration.ActionStop)
			},
		},
		&cobra.Command{
			Use:   "execute",
			Short: "Prompt for an action and change the SelfCalibration execution state",
			RunE: func(cmd *cobra.Command, _ []string) error {
				answer, err := newPrompter(cmd).Choice(
					"Please input SelfCalibration action. [RUN]/[STOP]: ",
					"Specified action is invalid.",
					string(calibration.ActionRun), string(calibration.ActionStop),
				)
				if err != nil {
					return err
				}
				return executeSelfCalibration(cmd, calibration.SelfCalibrationAction(answer))
			},
		},
	)

	return cmd
}

func executeSelfCalibration(cmd *cobra.Command, action calibration.SelfCalibrationAction) error {
	m, ok, err := resolveMonitor(cmd)
	if err != nil || !ok {
		return err
	}

	if err := apiClient.SetSelfCalibration(cmd.Context(), m.ID, action); err != nil {
		return err
	}

	if action == calibration.ActionRun {
		cmd.Println("SelfCalibration started.")
	} else {
		cmd.Println("SelfCalibration stopped.")
	}
	return nil
}
