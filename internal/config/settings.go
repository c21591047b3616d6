package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme selects the color scheme.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// WelcomeMode controls when the welcome screen is shown.
type WelcomeMode string

const (
	WelcomeFirstTimeOnly WelcomeMode = "first_time_only"
	WelcomeEveryTime     WelcomeMode = "every_time"
	WelcomeNever         WelcomeMode = "never"
)

// DefaultUsername is shown until the user picks a name.
const DefaultUsername = "Guest"

// SettingsTabs lists the settings tabs in their default order.
var SettingsTabs = []string{"Display", "App Settings", "Security", "About", "Support"}

var ErrInvalidSetting = errors.New("invalid setting")

// Settings are the user's preferences, persisted as settings.yaml.
type Settings struct {
	Theme                  Theme       `yaml:"theme"`
	Username               string      `yaml:"username"`
	HasCompletedOnboarding bool        `yaml:"has_completed_onboarding"`
	WelcomeScreen          WelcomeMode `yaml:"welcome_screen"`
	TabOrder               []string    `yaml:"tab_order"`
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:         ThemeSystem,
		Username:      DefaultUsername,
		WelcomeScreen: WelcomeFirstTimeOnly,
		TabOrder:      slices.Clone(SettingsTabs),
	}
}

// LoadSettings reads a settings file. A missing file yields DefaultSettings; fields
// absent from the file keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings validates s and writes it to path.
func SaveSettings(path string, s *Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Validate checks enum values and that TabOrder is a permutation of SettingsTabs.
func (s *Settings) Validate() error {
	switch s.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: theme %q", ErrInvalidSetting, s.Theme)
	}
	switch s.WelcomeScreen {
	case WelcomeFirstTimeOnly, WelcomeEveryTime, WelcomeNever:
	default:
		return fmt.Errorf("%w: welcome_screen %q", ErrInvalidSetting, s.WelcomeScreen)
	}
	if strings.TrimSpace(s.Username) == "" {
		return fmt.Errorf("%w: username is empty", ErrInvalidSetting)
	}
	if len(s.TabOrder) != len(SettingsTabs) {
		return fmt.Errorf("%w: tab_order must list %d tabs", ErrInvalidSetting, len(SettingsTabs))
	}
	for _, tab := range SettingsTabs {
		if !slices.Contains(s.TabOrder, tab) {
			return fmt.Errorf("%w: tab_order is missing %q", ErrInvalidSetting, tab)
		}
	}
	return nil
}

// ResetTabOrder restores the default tab order.
func (s *Settings) ResetTabOrder() {
	s.TabOrder = slices.Clone(SettingsTabs)
}

// ShowWelcome reports whether the welcome screen should be shown on this start.
func (s *Settings) ShowWelcome() bool {
	switch s.WelcomeScreen {
	case WelcomeEveryTime:
		return true
	case WelcomeFirstTimeOnly:
		return !s.HasCompletedOnboarding
	default:
		return false
	}
}

// Set assigns one setting from its yaml key and a string value, as typed on the
// command line. The result is validated.
func (s *Settings) Set(key, value string) error {
	next := *s
	next.TabOrder = slices.Clone(s.TabOrder)

	switch key {
	case "theme":
		next.Theme = Theme(strings.ToLower(value))
	case "username":
		next.Username = strings.TrimSpace(value)
	case "welcome_screen":
		next.WelcomeScreen = WelcomeMode(strings.ToLower(value))
	case "has_completed_onboarding":
		switch strings.ToLower(value) {
		case "true", "yes", "1":
			next.HasCompletedOnboarding = true
		case "false", "no", "0":
			next.HasCompletedOnboarding = false
		default:
			return fmt.Errorf("%w: has_completed_onboarding %q", ErrInvalidSetting, value)
		}
	case "tab_order":
		var tabs []string
		for _, t := range strings.Split(value, ",") {
			tabs = append(tabs, strings.TrimSpace(t))
		}
		next.TabOrder = tabs
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidSetting, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}
