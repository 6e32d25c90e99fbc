package types

// Client -> Server
// SubmitPhone:       phone: string
// OpenDice:          {}
// OpenForm:          {}
// ChangePhone:       {}
// Call:              granted: boolean
// PermissionResult:  granted: boolean
// OpenWeb:           {}
// Surprise:          {}
// SetAlarm:          {}
// RollDice:          target: string   // raw text, non-numeric counts as 0
// DiceBack:          {}
// SubmitForm:
//   name: string
//   text: string
//   option: "option1" | "option2" | "option3"
//   checks: string[]   // optional
//   switch: boolean    // optional
// FormBack:          {}
// DismissResult:     {}
// Back:              {}

// Server -> Client
// Snapshot:
//   version: number
//   view: see snapshot.go
//
// Error:
//   error: string
