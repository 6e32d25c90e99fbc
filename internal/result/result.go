package result

// Screen shows the message handed over by the minigame. Dismissing it goes back to the
// previous screen.
type Screen struct {
	message   string
	dismissed bool
}

func (s *Screen) Display(message string) {
	s.message = message
	s.dismissed = false
}

func (s *Screen) Dismiss() {
	s.dismissed = true
}

func (s *Screen) Message() string { return s.message }

func (s *Screen) Dismissed() bool { return s.dismissed }
