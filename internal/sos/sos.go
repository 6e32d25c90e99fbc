// Package sos builds the device actions behind the main screen buttons. The server never
// dials or plays anything itself, the client executes the actions it receives.
package sos

import (
	"errors"
	"time"

	"github.com/DoyleJ11/sosphone-backend/internal/i18n"
)

var ErrPermissionDenied = errors.New("call permission denied")
var ErrNoNumber = errors.New("no sos number")

const (
	UselessWebURL = "https://theuselessweb.com/"
	SurpriseURL   = "https://youtu.be/s_0wpGrrP5M?si=dV6O4E7iF8Shv0Rz"
	SurpriseSound = "sonido1"

	AlarmDelay = 2 * time.Minute
)

type ActionKind string

const (
	ActDial              ActionKind = "dial"
	ActOpenSettings      ActionKind = "open_settings"
	ActOpenURL           ActionKind = "open_url"
	ActPlaySound         ActionKind = "play_sound"
	ActSetAlarm          ActionKind = "set_alarm"
	ActRequestPermission ActionKind = "request_permission"
)

// Action is one capability the client must invoke. Message is a catalog key, the device
// translates it before sending.
type Action struct {
	Kind    ActionKind `json:"kind"`
	URI     string     `json:"uri,omitempty"`
	Hour    int        `json:"hour,omitempty"`
	Minute  int        `json:"minute,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Chooser draws an int in [min, max].
type Chooser interface {
	NextInRange(min, max int) int
}

// Call dials number when the call permission is granted. Without it the user is routed to
// the app settings.
func Call(number string, granted bool) ([]Action, error) {
	if number == "" {
		return nil, ErrNoNumber
	}
	if !granted {
		return []Action{{Kind: ActOpenSettings}}, ErrPermissionDenied
	}
	return []Action{{Kind: ActDial, URI: "tel:" + number}}, nil
}

// PermissionResult handles the answer to a permission prompt. A denial never re-prompts.
func PermissionResult(granted bool) ([]Action, error) {
	if granted {
		return nil, nil
	}
	return []Action{{Kind: ActOpenSettings}}, ErrPermissionDenied
}

func RequestPermission() Action {
	return Action{Kind: ActRequestPermission}
}

func OpenWeb() Action {
	return Action{Kind: ActOpenURL, URI: UselessWebURL}
}

// Surprise flips a coin between the alert sound and the video.
func Surprise(c Chooser) (Action, string) {
	if c.NextInRange(0, 1) == 0 {
		return Action{Kind: ActPlaySound, URI: SurpriseSound}, i18n.PlayingSound
	}
	return Action{Kind: ActOpenURL, URI: SurpriseURL}, i18n.OpeningMedia
}

// Alarm sets an alarm AlarmDelay after now, in now's location.
func Alarm(now time.Time) Action {
	at := now.Add(AlarmDelay)
	return Action{
		Kind:    ActSetAlarm,
		Hour:    at.Hour(),
		Minute:  at.Minute(),
		Message: i18n.AlarmLabel,
	}
}
