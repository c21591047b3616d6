package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/orgai-dev/orgai/internal/config"
)

func newSettingsCommand(a *app) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(s)
			if err != nil {
				return fmt.Errorf("marshaling settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting (theme, username, welcome_screen, has_completed_onboarding, tab_order)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.updateSettings(func(s *config.Settings) error {
				return s.Set(args[0], args[1])
			})
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "reset-tabs",
		Short: "Restore the default settings tab order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.updateSettings(func(s *config.Settings) error {
				s.ResetTabOrder()
				return nil
			})
		},
	})

	return settingsCmd
}

func (a *app) updateSettings(fn func(*config.Settings) error) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	if err := config.SaveSettings(a.cfg.SettingsPath(), s); err != nil {
		return err
	}
	a.logger.Info("settings saved", "path", a.cfg.SettingsPath())
	return nil
}
