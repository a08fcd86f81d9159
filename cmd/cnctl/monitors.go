package main

import (
	"github.com/spf13/cobra"

	"github.com/colornav/cnctl/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewMonitorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "monitors",
		Aliases: []string{"monitor"},
		Short:   "List connected monitors",
		GroupID: gMonitor,
		Long: `List the monitors currently connected and managed by ColorNavigator.

The first monitor in this list is the one all other commands target.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			monitors, err := apiClient.ListMonitors(cmd.Context())
			if err != nil {
				return err
			}

			if len(monitors) == 0 {
				cmd.Println("No monitor found.")
				return nil
			}

			for i, m := range monitors {
				cmd.Printf("Monitor No.%d\n", i)
				cmd.Printf("  Model name: %s\n", bold("%s", m.ModelName))
				cmd.Printf("  Serial number: %s\n", m.SerialNumber)
				cmd.Printf("  ID: %s\n", m.ID)
				cmd.Println()
			}

			return nil
		},
	}
}
