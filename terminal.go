package retroui

// Terminal is the output collaborator: it writes cells to the physical
// terminal. Implementations receive only positions and cells produced by
// the buffer diff; one Flush call corresponds to one committed frame.
type Terminal interface {
	// Init prepares the terminal (raw mode, alternate screen, hidden
	// cursor). Must be called before any other method.
	Init() error

	// Fini restores the terminal state. Safe to call multiple times.
	Fini()

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Flush writes the given cell changes and makes them visible.
	Flush(changes []CellChange)

	// Clear clears the entire terminal to the default background.
	Clear()

	// ShowCursor makes the cursor visible at the given position.
	ShowCursor(x, y int)

	// HideCursor makes the cursor invisible.
	HideCursor()
}

// EventSource is the input collaborator: a blocking supplier of
// translated events. Next is the event loop's sole suspension point.
// Malformed or unrecognized raw input must be swallowed by the source
// (never surfaced as an error); errors are reserved for the source
// becoming unusable.
type EventSource interface {
	// Next blocks until the next event is available.
	Next() (Event, error)

	// Close releases the source and unblocks any pending Next call.
	Close() error
}
