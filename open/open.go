// Package open launches media URLs and files with the system handler or a chosen player.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vidshelf/vidshelf/constant"
)

// Start opens input with the system handler without waiting for it to exit.
func Start(input string) error {
	return StartWith(input, "")
}

// StartWith opens input with app without waiting for it to exit.
// An empty app selects the system handler.
func StartWith(input, app string) error {
	cmd, err := Command(runtime.GOOS, input, app)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", cmd.Path, err)
	}

	// reap the child once it exits
	go func() { _ = cmd.Wait() }()
	return nil
}

// Command returns the process that opens input on goos, with app or with the system handler when app is empty.
func Command(goos, input, app string) (*exec.Cmd, error) {
	if app == "" {
		return systemHandler(goos, input)
	}

	switch goos {
	case constant.Windows:
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), nil
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), nil
	case constant.Linux:
		return exec.Command(app, input), nil
	case constant.Android:
		return exec.Command("termux-open", "--choose", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

func systemHandler(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
