// Package input defines the frontend-neutral intent vocabulary.
// Frontends translate their native key events into intents; the
// session loop consumes intents and never sees raw keys.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, q
	IntentPause      // ESC, p
	IntentToggleMute // m
	IntentResize     // terminal resize event

	// Movement
	IntentMoveForward // w, Up arrow
	IntentMoveBack    // s, Down arrow
	IntentStrafeLeft  // a
	IntentStrafeRight // d
	IntentTurnLeft    // Left arrow, h
	IntentTurnRight   // Right arrow, l

	// World interaction
	IntentInteract // e, Space
)

// Intent is one semantic action. Amount scales analog-capable intents
// (movement, turning); frontends without analog input leave it at 1.
type Intent struct {
	Type   IntentType
	Amount float64
}

// Make builds an intent with the default full amount
func Make(t IntentType) Intent {
	return Intent{Type: t, Amount: 1}
}
