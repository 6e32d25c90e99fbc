package nav

type Screen string

const (
	ScreenEntry  Screen = "entry"
	ScreenMain   Screen = "main"
	ScreenDice   Screen = "dice"
	ScreenForm   Screen = "form"
	ScreenResult Screen = "result"
)

// Intent is the one-shot message handed to a screen when it is launched or resumed.
type Intent struct {
	Target        Screen
	PhoneNumber   string
	ResetFlag     bool
	ResultMessage string
	// ClearTop reuses an instance already on the stack and drops everything above it.
	ClearTop bool
}

// TakeReset reports the reset flag and clears it so a later resume does not repeat it.
func (i *Intent) TakeReset() bool {
	r := i.ResetFlag
	i.ResetFlag = false
	return r
}

type Entry struct {
	ID     int
	Screen Screen
	Intent Intent
}

type Stack struct {
	entries []Entry
	nextID  int
}

// Launch shows in.Target. fresh is false when an existing instance was resumed.
// popped lists the entries torn down to get there, top first.
func (s *Stack) Launch(in Intent) (top *Entry, fresh bool, popped []Entry) {
	if in.ClearTop {
		for i := len(s.entries) - 1; i >= 0; i-- {
			if s.entries[i].Screen != in.Target {
				continue
			}
			popped = s.popAbove(i)
			s.entries[i].Intent = in
			return &s.entries[i], false, popped
		}
	}

	s.nextID++
	s.entries = append(s.entries, Entry{ID: s.nextID, Screen: in.Target, Intent: in})
	return &s.entries[len(s.entries)-1], true, nil
}

// Back tears down the top screen and resumes the one below. The root screen is never popped.
func (s *Stack) Back() (top *Entry, popped Entry, ok bool) {
	if len(s.entries) < 2 {
		return s.Top(), Entry{}, false
	}
	popped = s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return s.Top(), popped, true
}

func (s *Stack) Top() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) Screens() []Screen {
	out := make([]Screen, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Screen)
	}
	return out
}

func (s *Stack) Len() int { return len(s.entries) }

func (s *Stack) popAbove(i int) []Entry {
	var popped []Entry
	for j := len(s.entries) - 1; j > i; j-- {
		popped = append(popped, s.entries[j])
	}
	s.entries = s.entries[:i+1]
	return popped
}
