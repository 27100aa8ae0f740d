package core

// Action represents a semantic front-end action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionToggle        // Space, Enter - the play/stop control button
	ActionReplay        // R - the replay button on the prompt
	ActionHelp          // ? - expand or collapse the help line
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggle:
		return "Toggle"
	case ActionReplay:
		return "Replay"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
