package app

// trendRing is a circular buffer of peak suspicion values, one per batch.
type trendRing struct {
	buf   []float64
	pos   int
	count int
}

func newTrendRing(capacity int) *trendRing {
	return &trendRing{
		buf: make([]float64, capacity),
	}
}

func (r *trendRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns the stored peaks oldest first.
func (r *trendRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Last returns the most recent peak, or 0 if empty.
func (r *trendRing) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.buf[(r.pos-1+len(r.buf))%len(r.buf)]
}

func (r *trendRing) Len() int {
	return r.count
}
