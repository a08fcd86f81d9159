package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/colornav/cnctl/pkg/monitor"
)

func NewPixelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pixel",
		Short:   "Inspect pixels and control the inspection marker",
		GroupID: gMonitor,
	}

	cmd.AddCommand(
		newPixelInspectCommand(),
		newPixelMarkerCommand(),
	)

	return cmd
}

func newPixelInspectCommand() *cobra.Command {
	var (
		x, y       int
		showMarker bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Read the color values of one pixel",
		Long: `Read the color values of one pixel of the target monitor: the raw value
the monitor received as input signal and the value actually displayed.
Coordinates and the marker choice are prompted for when not given as flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			p := newPrompter(cmd)
			if !cmd.Flags().Changed("x") {
				if x, err = p.Int("Please input the x coordinate of target pixel: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("y") {
				if y, err = p.Int("Please input the y coordinate of target pixel: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("show-marker") {
				cmd.Print("Do you want to show the cross marker at the target pixel? ")
				if showMarker, err = p.YesNo(""); err != nil {
					return err
				}
			}

			info, err := apiClient.GetPixelInspection(cmd.Context(), m.ID, monitor.Position{X: x, Y: y}, showMarker)
			if err != nil {
				return err
			}

			cmd.Printf("Pixel information at (%d, %d):\n", x, y)
			return printJSON(cmd, info)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&x, "x", 0, "x coordinate of the target pixel")
	flags.IntVar(&y, "y", 0, "y coordinate of the target pixel")
	flags.BoolVar(&showMarker, "show-marker", false, "show the cross marker at the target pixel")

	return cmd
}

func newPixelMarkerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marker",
		Short: "Show or hide the pixel inspection cross marker",
	}

	var x, y int
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cross marker at a pixel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			p := newPrompter(cmd)
			if !cmd.Flags().Changed("x") {
				if x, err = p.Int("Please input the x coordinate of target pixel: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("y") {
				if y, err = p.Int("Please input the y coordinate of target pixel: "); err != nil {
					return err
				}
			}

			pos := monitor.Position{X: x, Y: y}
			if err := apiClient.SetPixelMarker(cmd.Context(), m.ID, monitor.MarkerShow, &pos); err != nil {
				return err
			}

			logrus.Infof("successfully showed the cross marker at (%d, %d)", x, y)
			return nil
		},
	}
	showCmd.Flags().IntVar(&x, "x", 0, "x coordinate of the target pixel")
	showCmd.Flags().IntVar(&y, "y", 0, "y coordinate of the target pixel")

	hideCmd := &cobra.Command{
		Use:   "hide",
		Short: "Hide the cross marker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok, err := resolveMonitor(cmd)
			if err != nil || !ok {
				return err
			}

			if err := apiClient.SetPixelMarker(cmd.Context(), m.ID, monitor.MarkerHide, nil); err != nil {
				return err
			}

			logrus.Infof("successfully hid the cross marker")
			return nil
		},
	}

	cmd.AddCommand(showCmd, hideCmd)
	return cmd
}
