package wizard

import "context"

// Scripted is a Prompter answering from canned fields, for tests.
type Scripted struct {
	// ConfirmAnswers maps question titles to answers. Questions not in
	// the map get the caller's default.
	ConfirmAnswers map[string]bool
	ConfirmErr     error

	Gateway        string
	Password       string
	CredentialsErr error
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(_ context.Context, title string, defaultYes bool) (bool, error) {
	if s.ConfirmErr != nil {
		return false, s.ConfirmErr
	}
	if answer, ok := s.ConfirmAnswers[title]; ok {
		return answer, nil
	}
	return defaultYes, nil
}

// Credentials implements Prompter.
func (s *Scripted) Credentials(context.Context) (string, string, error) {
	if s.CredentialsErr != nil {
		return "", "", s.CredentialsErr
	}
	return s.Gateway, s.Password, nil
}
