package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/colornav/cnctl/internal/prompt"
	"github.com/colornav/cnctl/pkg/monitor"
)

func parseIntArg(args []string, valueName string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("invalid number of arguments")
	}

	value, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", valueName, err)
	}

	return value, nil
}

// resolveMonitor returns the first connected monitor, which every command
// targets, mirroring the original API examples. ok is false when no monitor
// is connected; the command should do nothing further in that case.
func resolveMonitor(cmd *cobra.Command) (monitor.Monitor, bool, error) {
	monitors, err := apiClient.ListMonitors(cmd.Context())
	if err != nil {
		return monitor.Monitor{}, false, err
	}
	if len(monitors) == 0 {
		cmd.Println("No monitor found.")
		return monitor.Monitor{}, false, nil
	}

	m := monitors[0]
	cmd.Printf("Target monitor: %s\n", m)
	return m, true, nil
}

func newPrompter(cmd *cobra.Command) *prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
}

func promptColorModeIndex(cmd *cobra.Command) (int, error) {
	return newPrompter(cmd).IntInRange("Please input the target color mode index (0 to 9): ", 0, 9)
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %v", err)
	}
	cmd.Println(string(b))
	return nil
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
