package timestamp

// TimeSeq hands out strictly increasing instants one second apart. Atom
// validators complain when several timestamps in a feed share a value; a
// TimeSeq keeps them distinct.
type TimeSeq struct {
	t float64
}

// NewTimeSeq seeds a sequence at start, or at Now() when start is 0.
func NewTimeSeq(start float64) *TimeSeq {
	if start == 0 {
		start = Now()
	}
	return &TimeSeq{t: start}
}

// Next returns the current instant and advances the sequence by one second.
func (s *TimeSeq) Next() float64 {
	t := s.t
	s.t += 1.0
	return t
}

// Peek returns the instant the next call to Next will return.
func (s *TimeSeq) Peek() float64 {
	return s.t
}
