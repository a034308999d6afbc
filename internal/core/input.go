package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Move grid cursor up
	ActionDown           // Move grid cursor down
	ActionLeft           // Move grid cursor left
	ActionRight          // Move grid cursor right
	ActionSelect         // Pick the cell under the cursor
	ActionRestart        // Start a new session
	ActionHelp           // Toggle the full help view
	ActionQuit           // Exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Cursor tracks a keyboard-driven position on a square grid.
type Cursor struct {
	Row, Col int
}

// Move applies a directional action and keeps the cursor on a size x size grid.
func (c Cursor) Move(a Action, size int) Cursor {
	switch a {
	case ActionUp:
		c.Row--
	case ActionDown:
		c.Row++
	case ActionLeft:
		c.Col--
	case ActionRight:
		c.Col++
	}
	return c.Fit(size)
}

// Fit clamps the cursor onto a size x size grid.
func (c Cursor) Fit(size int) Cursor {
	if size <= 0 {
		return Cursor{}
	}
	c.Row = Clamp(c.Row, 0, size-1)
	c.Col = Clamp(c.Col, 0, size-1)
	return c
}

// Index returns the row-major cell index on a size x size grid.
func (c Cursor) Index(size int) int {
	return c.Row*size + c.Col
}
