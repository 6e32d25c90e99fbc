package types

import "github.com/DoyleJ11/sosphone-backend/internal/device"

type ClientMessage struct {
	Type    string `json:"type"`
	Phone   string `json:"phone,omitempty"`
	Target  string `json:"target,omitempty"`
	Granted bool   `json:"granted,omitempty"`
	Name    string `json:"name,omitempty"`
	Text    string `json:"text,omitempty"`
	Option  string `json:"option,omitempty"`
	// Checks and Switch are the optional form controls.
	Checks []string `json:"checks,omitempty"`
	Switch bool     `json:"switch,omitempty"`
}

type ServerMessage struct {
	Type    string       `json:"type"` // "Snapshot" | "Error"
	Version int          `json:"version,omitempty"`
	View    *device.View `json:"view,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type CreateDeviceResponse struct {
	DeviceID string `json:"device_id"`
}

type ValidatePhoneRequest struct {
	Number string `json:"number"`
	Region string `json:"region"`
}

type ValidatePhoneResponse struct {
	Valid bool   `json:"valid"`
	E164  string `json:"e164,omitempty"`
}
