package execution

import "time"

// SetClock replaces the run start time and run ID sources of r
func SetClock(r *Runner, now func() time.Time, newID func() string) {
	r.now = now
	r.newID = newID
}
