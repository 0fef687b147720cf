package interfaces

import "time"

// IClock abstracts wall-clock reads so tests stay deterministic.
type IClock interface {
	Now() time.Time
}
