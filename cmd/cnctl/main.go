package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colornav/cnctl/pkg/client"
	"github.com/colornav/cnctl/pkg/config"
)

var (
	logLevel   = "info"
	apiAddress = ""
	configPath = config.DefaultPath
)

// apiClient is constructed in PersistentPreRunE once flags are parsed.
var apiClient *client.Client

var (
	gMonitor      = "Monitor Settings:"
	gCalibration  = "Calibration:"
	commandGroups = []string{
		gMonitor,
		gCalibration,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

// handleCmdError reports API failures the way the ColorNavigator examples
// do: HTTP errors as Status/Reason/Message lines, connection failures as a
// fixed communication-failure message.
func handleCmdError(err error) {
	var apiErr *client.APIError
	var transportErr *client.TransportError

	switch {
	case errors.As(err, &apiErr):
		fmt.Printf("Status: %d\n", apiErr.StatusCode)
		fmt.Printf("Reason: %s\n", apiErr.Reason)
		fmt.Printf("Message: %s\n", apiErr.Message)
	case errors.As(err, &transportErr):
		fmt.Println("Failed to communicate with the ColorNavigator API server.")
		fmt.Printf("Reason: %v\n", transportErr.Err)
		fmt.Println("Is ColorNavigator running? Is the API server enabled in its preferences?")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cnctl",
		Short: "cnctl reads and changes EIZO monitor settings through ColorNavigator",
		Long: `cnctl reads and changes EIZO monitor settings through the local HTTP API
exposed by the ColorNavigator application: color modes, key lock, pixel
inspection markers, SelfCalibration and calibration targets.

Commands target the first connected monitor, and prompt for any value not
given on the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := setupLogger(); err != nil {
				return err
			}

			address := apiAddress
			if address == "" {
				conf, err := config.NewFile(configPath)
				if err != nil {
					return err
				}
				logrus.WithFields(conf.LogrusFields()).Debug("loaded config")
				address = conf.APIAddress()
			}

			var err error
			apiClient, err = client.New(address)
			return err
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&apiAddress, "api-address", "", "ColorNavigator API server address as host:port (overrides config)")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewVersionCommand(),
		NewMonitorsCommand(),
		NewColorModeCommand(),
		NewKeyLockCommand(),
		NewPixelCommand(),
		NewSelfCalibrationCommand(),
		NewTargetCommand(),
	)

	return cmd
}
