package reveal

import (
	"strconv"
	"strings"
)

func NewIdleSession() Session {
	return Session{Phase: PhaseIdle}
}

func InRange(target int) bool {
	return target >= MinTarget && target <= MaxTarget
}

// ParseTarget reads the target typed by the user. Anything that is not an integer counts
// as 0 and is therefore out of range.
func ParseTarget(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		n = 0
	}
	if !InRange(n) {
		return n, ErrTargetOutOfRange
	}
	return n, nil
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}
