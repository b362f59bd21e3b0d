package drag

import "fmt"

// TargetIndex converts a drop boundary into the index the dragged row ends up
// at once it has been taken out of the collection.
func TargetIndex(source, boundary int) int {
	switch {
	case source > boundary:
		return boundary
	case boundary == 0:
		return 0
	default:
		return boundary - 1
	}
}

// Reorder returns a copy of rows with the element at from moved to to.
// to is an index into the collection after the element has been removed.
// rows is never modified.
func Reorder[T any](rows []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(rows) {
		return nil, fmt.Errorf("%w: source %d of %d", ErrIndexOutOfRange, from, len(rows))
	}
	if to < 0 || to >= len(rows) {
		return nil, fmt.Errorf("%w: target %d of %d", ErrIndexOutOfRange, to, len(rows))
	}

	out := make([]T, 0, len(rows))
	out = append(out, rows[:from]...)
	out = append(out, rows[from+1:]...)

	moved := rows[from]
	out = append(out, moved)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = moved
	return out, nil
}
