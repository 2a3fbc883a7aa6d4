// Package wizard collects the optional interactive answers of a
// bootstrap run: whether to configure credentials, the credentials
// themselves, and whether to kick off the first generation. It uses
// charmbracelet/huh for form-based input collection.
package wizard

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter asks the operator the interactive bootstrap questions.
// Handlers depend on this interface so tests can script the answers.
type Prompter interface {
	// Confirm asks a yes/no question, preselecting defaultYes.
	Confirm(ctx context.Context, title string, defaultYes bool) (bool, error)
	// Credentials asks for the router gateway address and admin
	// password. Both come back trimmed; empty answers are allowed and
	// mean the operator wants to keep the template values.
	Credentials(ctx context.Context) (gateway, password string, err error)
}

// Terminal renders the questions as huh forms on the controlling
// terminal.
type Terminal struct{}

// NewTerminal returns a terminal-backed Prompter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(ctx context.Context, title string, defaultYes bool) (bool, error) {
	answer := defaultYes

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return answer, nil
}

// Credentials implements Prompter.
func (t *Terminal) Credentials(ctx context.Context) (string, string, error) {
	var gateway, password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Router gateway IP").
				Description("e.g., 192.168.1.1 or 10.1.0.1").
				Placeholder("192.168.1.1").
				Value(&gateway),
			huh.NewInput().
				Title("Router admin password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		).Title("Router Credentials Configuration"),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(gateway), strings.TrimSpace(password), nil
}

// Aborted reports whether err means the operator canceled the form
// rather than the form failing.
func Aborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
