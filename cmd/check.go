package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/style"
)

// checkPlayer warns when the configured video player is not in PATH.
// Playback then fails, but browsing and downloads keep working.
func checkPlayer() {
	player := viper.GetString(key.Player)
	if player == "" {
		return
	}

	if _, err := exec.LookPath(player); err != nil {
		printMissingPlayer(player)
	}
}

func printMissingPlayer(player string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + player
	case constant.Linux:
		installCmd = "sudo apt install " + player
	case constant.Windows:
		installCmd = "scoop install " + player
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Warning: Player Not Found", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The configured player '%s' was not found in your PATH.", player))

	suggestion := fmt.Sprintf(
		"\n\nInstall it, or unset it to use the system default:\n  %s",
		style.New().Foreground(style.AccentColor).Bold(true).Render(constant.App+" config reset --key "+key.Player),
	)
	if installCmd != "" {
		suggestion += fmt.Sprintf("\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
