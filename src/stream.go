package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Symbol stream: the sole inter-thread interface this package
 *		exposes. A single writer (the clock detector) appends
 *		recovered symbols; any number of readers each hold their
 *		own monotonic cursor and pull symbols independently. A
 *		reader that falls behind the writer by more than the
 *		stream's capacity has overrun: its cursor is resynchronized
 *		to the writer's current position and ErrStreamOverrun is
 *		returned once so the caller knows it lost data.
 *
 * Grounded on:	_examples/original_source/sigutils/clock.c's use of
 *		su_stream_t (su_clock_detector_feed writing, su_clock_
 *		detector_read reading with a cursor and resync-on-overrun).
 *		The ring buffer itself is a plain mutex-guarded slice, the
 *		idiomatic Go replacement for the source's hand-rolled
 *		circular buffer with memmove-based wraparound.
 *
 *------------------------------------------------------------------*/

import "sync"

// SymbolStream is a single-producer, multi-consumer ring buffer of complex
// symbols.
type SymbolStream struct {
	mu   sync.Mutex
	buf  []complex128
	cap  int
	tail uint64 // total symbols ever written
}

// NewSymbolStream allocates a stream with room for capacity symbols.
func NewSymbolStream(capacity int) *SymbolStream {
	if capacity < 1 {
		capacity = 1
	}

	return &SymbolStream{
		buf: make([]complex128, capacity),
		cap: capacity,
	}
}

// Write appends one symbol, overwriting the oldest entry once the stream is
// full.
func (s *SymbolStream) Write(sym complex128) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf[int(s.tail%uint64(s.cap))] = sym
	s.tail++
}

// Tell returns the total number of symbols ever written, usable as a fresh
// reader cursor.
func (s *SymbolStream) Tell() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tail
}

// NewCursor returns a cursor positioned at the stream's current write
// position, so the first successful Read returns the next symbol written
// after this call. Read does not block: until that symbol is written it
// reports ok == false.
func (s *SymbolStream) NewCursor() uint64 {
	return s.Tell()
}

// Read returns the symbol at *cursor and advances it. If no symbol has been
// written at that position yet, ok is false. If the writer has advanced
// more than the stream's capacity past *cursor, the reader has overrun: the
// cursor is resynchronized to the writer's current position and
// ErrStreamOverrun is returned.
func (s *SymbolStream) Read(cursor *uint64) (complex128, error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if *cursor >= s.tail {
		return 0, nil, false
	}

	if s.tail-*cursor > uint64(s.cap) {
		*cursor = s.tail

		return 0, ErrStreamOverrun, false
	}

	sym := s.buf[int(*cursor%uint64(s.cap))]
	*cursor++

	return sym, nil, true
}

// Len returns the stream's capacity.
func (s *SymbolStream) Len() int {
	return s.cap
}
