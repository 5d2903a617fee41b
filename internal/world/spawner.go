package world

import "time"

// Spawner gates star creation on elapsed simulated time and the number
// of active stars. Once the interval has passed it stays armed until a
// slot is free.
type Spawner struct {
	Interval time.Duration
	Cap      int

	elapsed time.Duration
}

// Tick advances the timer by dt and reports whether a star should be
// created now given the active count.
func (s *Spawner) Tick(dt time.Duration, active int) bool {
	s.elapsed += dt
	if s.elapsed < s.Interval || active >= s.Cap {
		return false
	}
	s.elapsed = 0
	return true
}

// Reset restarts the interval.
func (s *Spawner) Reset() {
	s.elapsed = 0
}
