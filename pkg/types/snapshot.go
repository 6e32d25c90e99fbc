package types

// Snapshot.view:
//   screen: "entry" | "main" | "dice" | "form" | "result"
//   stack: screen[]                       // bottom first
//   entry:  { phone }                     // only when screen == "entry"
//   main:   { phone, granted }
//   dice:   { target, rolling, step, dice: [n, n, n], sum, result }
//   form:   { valid, error }
//   result: { message }
//   toasts: string[]                      // one-shot, localized
//   actions: Action[]                     // one-shot, executed by the client
//
// Action:
//   kind: "dial" | "open_settings" | "open_url" | "play_sound" | "set_alarm" | "request_permission"
//   uri: string        // tel:<number>, https URL or sound name
//   hour, minute: number
//   message: string    // alarm label
