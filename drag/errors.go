package drag

import "errors"

// Errors returned by the drag package.
var (
	// ErrDragInProgress is returned when a drag starts while another is active.
	ErrDragInProgress = errors.New("drag already in progress")

	// ErrIndexOutOfRange is returned when a row index is outside the collection.
	ErrIndexOutOfRange = errors.New("row index out of range")
)
