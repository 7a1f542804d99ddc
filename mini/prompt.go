package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/style"
	"github.com/vidshelf/vidshelf/util"
)

// prompter asks the user for a choice or a line of text.
type prompter interface {
	Select(message string, options []string) (int, error)
	Input(message string, validate func(string) error, suggest func(string) []string) (string, error)
}

type surveyPrompter struct {
	pageSize int
}

func (p *surveyPrompter) Select(message string, options []string) (int, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: p.pageSize,
	}

	var index int
	err := survey.AskOne(prompt, &index)
	return index, err
}

func (p *surveyPrompter) Input(message string, validate func(string) error, suggest func(string) []string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Suggest: suggest,
	}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(func(ans any) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("unexpected answer %v", ans)
		}
		return validate(s)
	}))
	return value, err
}

func isInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}

// bind is a menu entry that is not a video.
type bind struct {
	label string
	icon  icon.Icon
}

func (b *bind) String() string {
	if prefix := icon.Get(b.icon); prefix != "" {
		return prefix + " " + b.label
	}
	return b.label
}

var (
	next        = &bind{label: "Next page", icon: icon.Page}
	prev        = &bind{label: "Previous page", icon: icon.Page}
	first       = &bind{label: "First page", icon: icon.Page}
	last        = &bind{label: "Last page", icon: icon.Page}
	goTo        = &bind{label: "Go to page", icon: icon.Page}
	search      = &bind{label: "Search", icon: icon.Search}
	clearSearch = &bind{label: "Clear search", icon: icon.Search}
	pageSize    = &bind{label: "Page size", icon: icon.Mark}
	reload      = &bind{label: "Reload", icon: icon.Cache}
	play        = &bind{label: "Play", icon: icon.Play}
	download    = &bind{label: "Download", icon: icon.Download}
	share       = &bind{label: "Share", icon: icon.Share}
	back        = &bind{label: "Back", icon: icon.Link}
	quit        = &bind{label: "Quit", icon: icon.Fail}
)

func (m *mini) title(text string) {
	_, _ = fmt.Fprintln(m.out, style.Title(text))
}

func (m *mini) faint(text string) {
	_, _ = fmt.Fprintln(m.out, style.Faint(text))
}

func (m *mini) fail(text string) {
	_, _ = fmt.Fprintln(m.out, style.Fg(color.Red)(icon.Get(icon.Fail)+" "+text))
}

func (m *mini) success(text string) {
	_, _ = fmt.Fprintln(m.out, style.Fg(color.Green)(icon.Get(icon.Success)+" "+text))
}

func (m *mini) progress(text string) (erase func()) {
	return util.PrintErasable(m.out, icon.Get(icon.Progress)+" "+text)
}

// truncate cuts s to the terminal width.
func (m *mini) truncate(s string) string {
	runes := []rune(s)
	if m.width < 10 || len(runes) <= m.width-4 {
		return s
	}
	return string(runes[:m.width-7]) + "..."
}
