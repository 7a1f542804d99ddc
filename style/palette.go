package style

import "github.com/charmbracelet/lipgloss"

// Colors used by the gallery views. Adaptive colors pick the variant matching the terminal background.
var (
	Base = lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"}
	Text = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}

	AccentColor  = lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	FaintColor   = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#6c7086"}
)
