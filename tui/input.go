package tui

// Event is a decoded key press.
type Event uint8

const (
	EventNone Event = iota
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
	EventToggleSolution
	EventNewMaze
	EventQuit
)

// String returns a short event name for logging.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoveUp:
		return "move-up"
	case EventMoveDown:
		return "move-down"
	case EventMoveLeft:
		return "move-left"
	case EventMoveRight:
		return "move-right"
	case EventToggleSolution:
		return "toggle-solution"
	case EventNewMaze:
		return "new-maze"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// decodeKey maps one raw terminal read to an Event. Arrow keys arrive as
// ESC [ A/B/C/D sequences; everything else is a single byte. Unrecognized
// input decodes to EventNone.
func decodeKey(b []byte) Event {
	if len(b) == 0 {
		return EventNone
	}

	// Ctrl-C and Ctrl-D always quit.
	if b[0] == 3 || b[0] == 4 {
		return EventQuit
	}

	if len(b) >= 3 && b[0] == 27 && b[1] == '[' {
		switch b[2] {
		case 'A':
			return EventMoveUp
		case 'B':
			return EventMoveDown
		case 'C':
			return EventMoveRight
		case 'D':
			return EventMoveLeft
		}
		return EventNone
	}

	if len(b) != 1 {
		return EventNone
	}
	switch b[0] {
	case 'k':
		return EventMoveUp
	case 'j':
		return EventMoveDown
	case 'h':
		return EventMoveLeft
	case 'l':
		return EventMoveRight
	case 's', 'S':
		return EventToggleSolution
	case 'n', 'N':
		return EventNewMaze
	case 'q', 'Q':
		return EventQuit
	}
	return EventNone
}
