package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/colornav/cnctl/pkg/calibration"
)

func NewTargetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "target",
		Aliases: []string{"targets"},
		Short:   "Read and create calibration targets",
		GroupID: gCalibration,
	}

	cmd.AddCommand(
		newTargetListCommand(),
		newTargetCreateCommand(),
	)

	return cmd
}

func newTargetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the calibration targets stored on the target monitor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			targets, err := apiClient.ListTargets(cmd.Context(), m.ID)
			if err != nil {
				return err
			}

			cmd.Printf("%d targets were found.\n", len(targets))
			for i, target := range targets {
				cmd.Printf("Target index: %d\n", i+1)
				if err := printJSON(cmd, target); err != nil {
					return err
				}
				cmd.Println()
			}

			return nil
		},
	}
}

func newTargetCreateCommand() *cobra.Command {
	var (
		name          string
		colorModeName string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new calibration target",
		Long: `Create a new calibration target on the target monitor. The parameters
reproduce the target the ColorNavigator API examples create: 100 cd/m2,
6500 K, gamma 2.2, Adobe RGB, gray-balance calibration policy.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			target := calibration.Target{
				Name:          name,
				ColorModeName: colorModeName,
				Parameters: calibration.TargetParameters{
					Brightness: &calibration.ValueWithType{Type: "CANDELA", Value: 100},
					BlackLevel: &calibration.ValueWithType{Type: "MIN"},
					WhitePoint: &calibration.ValueWithType{Type: "TEMPERATURE", Value: 6500},
					Gamma:      &calibration.ValueWithType{Type: "GAMMA", Value: 2.2},
					Gamut: &calibration.Gamut{
						Type:     "STANDARD",
						Value:    "ADOBE_RGB",
						Clipping: false,
					},
					CalibrationPolicy:     "GRAY_BALANCE",
					SixColors:             &calibration.SixColors{},
					OptimizeForLimited109: false,
				},
				ProfileUpdateRule: "EVERYTIME",
				ProfilePolicy: &calibration.ProfilePolicy{
					ProfileVersion:    "4.2",
					ToneCurve:         "LUT",
					ReflectBlackLevel: true,
				},
				UseTargetNameAsProfileName: false,
				Protection:                 false,
			}

			cmd.Println("Create a new calibration target with the following content.")
			if err := printJSON(cmd, target); err != nil {
				return err
			}

			if err := apiClient.CreateTarget(cmd.Context(), m.ID, target); err != nil {
				return err
			}

			logrus.Infof("successfully created the calibration target")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "API_Target", "target name")
	flags.StringVar(&colorModeName, "color-mode-name", "CAL_API", "name of the color mode the target belongs to")

	return cmd
}
