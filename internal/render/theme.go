// Package render prints accounts, transactions and net-worth summaries to a terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/orgai-dev/orgai/internal/config"
	"github.com/orgai-dev/orgai/internal/model"
)

// Palette maps the model's color tokens to terminal colors.
type Palette struct {
	Primary   lipgloss.TerminalColor
	Secondary lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
	Info      lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
}

type shades struct {
	primary, secondary, success, danger, warning, info, muted string
}

var (
	dark = shades{
		primary:   "#a78bfa",
		secondary: "#a3a3a3",
		success:   "#34d399",
		danger:    "#f87171",
		warning:   "#fbbf24",
		info:      "#60a5fa",
		muted:     "#737373",
	}
	light = shades{
		primary:   "#6d28d9",
		secondary: "#525252",
		success:   "#047857",
		danger:    "#b91c1c",
		warning:   "#b45309",
		info:      "#1d4ed8",
		muted:     "#a3a3a3",
	}
)

// PaletteFor picks colors for a theme. The system theme adapts to the terminal
// background.
func PaletteFor(theme config.Theme) Palette {
	pick := func(l, d string) lipgloss.TerminalColor {
		return lipgloss.AdaptiveColor{Light: l, Dark: d}
	}
	switch theme {
	case config.ThemeDark:
		pick = func(_, d string) lipgloss.TerminalColor { return lipgloss.Color(d) }
	case config.ThemeLight:
		pick = func(l, _ string) lipgloss.TerminalColor { return lipgloss.Color(l) }
	}

	return Palette{
		Primary:   pick(light.primary, dark.primary),
		Secondary: pick(light.secondary, dark.secondary),
		Success:   pick(light.success, dark.success),
		Error:     pick(light.danger, dark.danger),
		Warning:   pick(light.warning, dark.warning),
		Info:      pick(light.info, dark.info),
		Muted:     pick(light.muted, dark.muted),
	}
}

// Color resolves a model color token.
func (p Palette) Color(token model.ColorToken) lipgloss.TerminalColor {
	switch token {
	case model.ColorPrimary:
		return p.Primary
	case model.ColorSecondary:
		return p.Secondary
	case model.ColorSuccess:
		return p.Success
	case model.ColorError:
		return p.Error
	case model.ColorWarning:
		return p.Warning
	case model.ColorInfo:
		return p.Info
	default:
		return p.Muted
	}
}
