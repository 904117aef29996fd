package marquee

// FrameHandle identifies a pending frame callback. The zero value is never issued.
type FrameHandle uint64

// Scheduler runs frame callbacks cooperatively on the host's single frame
// loop. A callback requested during Tick runs on the next Tick, which is how
// a driver keeps itself going one frame at a time.
//
// Scheduler is not safe for concurrent use; hosts call it from their frame loop only.
type Scheduler struct {
	next    FrameHandle
	pending map[FrameHandle]func()
	order   []FrameHandle
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[FrameHandle]func())}
}

// Request schedules fn for the next frame.
func (s *Scheduler) Request(fn func()) FrameHandle {
	s.next++
	h := s.next
	s.pending[h] = fn
	s.order = append(s.order, h)
	return h
}

// Cancel drops a pending callback. It reports whether h was pending.
func (s *Scheduler) Cancel(h FrameHandle) bool {
	if _, ok := s.pending[h]; !ok {
		return false
	}
	delete(s.pending, h)
	return true
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Tick runs every callback that was pending when it started, in request
// order, and returns how many ran. Callbacks cancelled by an earlier callback
// in the same tick are skipped.
func (s *Scheduler) Tick() int {
	due := s.order
	s.order = nil
	ran := 0
	for _, h := range due {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn()
		ran++
	}
	return ran
}
