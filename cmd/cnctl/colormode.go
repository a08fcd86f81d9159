package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/colornav/cnctl/pkg/colormode"
)

func NewColorModeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "color-mode",
		Aliases: []string{"color-modes", "cm"},
		Short:   "Read and change monitor color modes",
		GroupID: gMonitor,
		Long: `Read and change the color modes of the target monitor.

A monitor exposes up to 10 color modes (index 0 to 9). STANDARD and
SYNCSIGNAL modes carry display parameters directly; ADVANCED modes are
backed by a calibration target.`,
	}

	cmd.AddCommand(
		newColorModeListCommand(),
		newColorModeGetCommand(),
		newColorModeSelectCommand(),
		newColorModeSetCommand(),
		newColorModeResultsCommand(),
		newValidationResultsCommand(),
	)

	return cmd
}

func newColorModeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all color modes of the target monitor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			modes, err := apiClient.GetColorModes(cmd.Context(), m.ID)
			if err != nil {
				return err
			}

			for _, mode := range modes {
				selected := " "
				if mode.Selected {
					selected = bold("*")
				}
				cmd.Printf("%s %d: %s (%s) enabled: %s\n",
					selected, mode.Index, bold("%s", mode.Name), mode.Type, bool2Text(mode.Enabled))
			}

			return nil
		},
	}
}

func newColorModeGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [index]",
		Short: "Show one color mode in full",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			index, err := colorModeIndexFromArgs(cmd, args)
			if err != nil {
				return err
			}

			mode, err := apiClient.GetColorMode(cmd.Context(), m.ID, index)
			if err != nil {
				return err
			}

			cmd.Printf("Color mode %d information:\n", index)
			return printJSON(cmd, mode)
		},
	}
}

func newColorModeSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select [index]",
		Short: "Change the current color mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			index, err := colorModeIndexFromArgs(cmd, args)
			if err != nil {
				return err
			}

			if err := apiClient.SelectColorMode(cmd.Context(), m.ID, index); err != nil {
				return err
			}

			logrus.Infof("successfully changed the color mode index to %d", index)
			return nil
		},
	}
}

func newColorModeSetCommand() *cobra.Command {
	var (
		name       string
		brightness float64
		whitePoint string
		gamma      float64
		gamut      string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "set [index]",
		Short: "Change the settings of one color mode",
		Long: `Change the color mode at the given index to a STANDARD mode with the
given parameters. The defaults reproduce the settings the ColorNavigator
API examples apply: 100 cd/m2, D65, gamma 2.4, BT.709 with clipping.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			index, err := colorModeIndexFromArgs(cmd, args)
			if err != nil {
				return err
			}

			enable := true
			settings := colormode.Settings{
				Enable: &enable,
				Name:   name,
				Type:   colormode.TypeStandard,
				Parameters: &colormode.Parameters{
					Type: colormode.TypeStandard,
					Brightness: &colormode.Brightness{
						Type:  "CANDELA",
						Value: brightness,
					},
					WhitePoint: &colormode.WhitePoint{
						Type:  "STANDARD",
						Value: whitePoint,
					},
					Gamma: &colormode.Gamma{
						Type:  "GAMMA",
						Value: gamma,
					},
					Gamut: &colormode.Gamut{
						Type:     "STANDARD",
						Value:    gamut,
						Clipping: true,
					},
				},
			}

			cmd.Println("The specified color mode settings will be changed to below.")
			if err := printJSON(cmd, settings); err != nil {
				return err
			}

			if !yes {
				cmd.Println("Are you sure to change the color mode settings?")
				confirmed, err := newPrompter(cmd).YesNo("")
				if err != nil {
					return err
				}
				if !confirmed {
					cmd.Println("Canceled changing the color mode settings.")
					return nil
				}
			}

			if err := apiClient.UpdateColorMode(cmd.Context(), m.ID, index, settings); err != nil {
				return err
			}

			logrus.Infof("successfully changed color mode %d settings", index)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "API_Sample", "color mode name")
	flags.Float64Var(&brightness, "brightness", 100, "brightness in cd/m2")
	flags.StringVar(&whitePoint, "white-point", "D65", "standard white point")
	flags.Float64Var(&gamma, "gamma", 2.4, "gamma value")
	flags.StringVar(&gamut, "gamut", "BT_709", "standard gamut")
	flags.BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func newColorModeResultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "results [index]",
		Short: "Show calibration results of one color mode's target",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			index, err := colorModeIndexFromArgs(cmd, args)
			if err != nil {
				return err
			}

			results, err := apiClient.GetCalibrationResults(cmd.Context(), m.ID, index)
			if err != nil {
				return err
			}

			cmd.Printf("%d calibration result(s) were found.\n", len(results))
			for i, result := range results {
				cmd.Printf("Calibration result %d:\n", i)
				if err := printJSON(cmd, result); err != nil {
					return err
				}
				cmd.Println()
			}

			return nil
		},
	}
}

// newValidationResultsCommand walks every ADVANCED color mode and prints the
// validation results of each of its calibration results, the way the
// original get_validation_results example does.
func newValidationResultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validation-results",
		Short: "Show validation results of all ADVANCED color modes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			modes, err := apiClient.GetColorModes(cmd.Context(), m.ID)
			if err != nil {
				return err
			}

			rule := strings.Repeat("=", 80)
			for _, mode := range modes {
				if mode.Type != colormode.TypeAdvanced {
					continue
				}

				calResults, err := apiClient.GetCalibrationResults(cmd.Context(), m.ID, mode.Index)
				if err != nil {
					return err
				}

				for _, calResult := range calResults {
					valResults, err := apiClient.GetValidationResults(cmd.Context(), m.ID, mode.Index, calResult.ID)
					if err != nil {
						return err
					}
					if len(valResults) == 0 {
						continue
					}

					cmd.Println(rule)
					cmd.Printf("Found %d validation result(s) at calibration result id: %s\n", len(valResults), calResult.ID)
					for i, result := range valResults {
						cmd.Printf("Validation result %d:\n", i)
						if err := printJSON(cmd, result); err != nil {
							return err
						}
					}
					cmd.Println(rule)
				}
			}

			return nil
		},
	}
}

func colorModeIndexFromArgs(cmd *cobra.Command, args []string) (int, error) {
	if len(args) == 0 {
		return promptColorModeIndex(cmd)
	}

	index, err := parseIntArg(args, "color mode index")
	if err != nil {
		return 0, err
	}
	return colormode.ParseIndex(index)
}
