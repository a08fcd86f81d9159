package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/colornav/cnctl/pkg/monitor"
)

func NewKeyLockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "key-lock",
		Short:   "Read and change the monitor key lock",
		GroupID: gMonitor,
		Long: `Read and change the key lock setting of the target monitor.

OFF unlocks all buttons, MENU locks the menu button, ALL locks every button
except the power button.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the current key lock setting",
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, ok, err := resolveMonitor(cmd)
				if err != nil || !ok {
					return err
				}

				setting, err := apiClient.GetKeyLock(cmd.Context(), m.ID)
				if err != nil {
					return err
				}

				cmd.Printf("Key lock setting: %s\n", bold("%s", setting))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set [OFF|MENU|ALL]",
			Short: "Change the key lock setting",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, ok, err := resolveMonitor(cmd)
				if err != nil || !ok {
					return err
				}

				var setting monitor.KeyLockSetting
				if len(args) == 0 {
					answer, err := newPrompter(cmd).Choice(
						"Please input key lock setting. [OFF]/[MENU]/[ALL]: ",
						"Specified key lock setting is invalid.",
						string(monitor.KeyLockOff), string(monitor.KeyLockMenu), string(monitor.KeyLockAll),
					)
					if err != nil {
						return err
					}
					setting = monitor.KeyLockSetting(answer)
				} else {
					setting, err = monitor.ParseKeyLockSetting(strings.ToUpper(args[0]))
					if err != nil {
						return err
					}
				}

				if err := apiClient.SetKeyLock(cmd.Context(), m.ID, setting); err != nil {
					return err
				}

				logrus.Infof("successfully changed the key lock setting to %q", setting)
				return nil
			},
		},
	)

	return cmd
}
