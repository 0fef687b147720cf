package clock

import (
	"time"

	"oficina_xpto/internal/usecase/interfaces"
)

// System is the wall clock. Usecases take interfaces.IClock so tests can pin
// time; this is the implementation wired in production.
type System struct{}

var _ interfaces.IClock = System{}

func (System) Now() time.Time {
	return time.Now()
}
