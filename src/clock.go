package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Sampler and Gardner clock/timing-error detector: recovers
 *		symbol timing from an oversampled complex baseband stream
 *		and writes one recovered symbol per detected symbol
 *		boundary onto a SymbolStream.
 *
 * Grounded on:	_examples/original_source/sigutils/clock.c (su_sampler_*,
 *		su_clock_detector_*). su_clock_detector_set_bnor_limits in
 *		the source validates lo <= hi and clamps the live bnor
 *		against the *existing* bmin/bmax, but never assigns the new
 *		lo/hi to cd->bmin/cd->bmax -- a no-op bug. SetBnorLimits
 *		below fixes that: the new bounds are stored before bnor is
 *		clamped against them.
 *
 *------------------------------------------------------------------*/

// Sampler is a period/phase accumulator over bnor, the normalized rate at
// which symbol boundaries arrive (symbols/sample). Each Feed call advances
// the phase by bnor; a boundary is crossed, and the sampler fires, only
// when the accumulated phase reaches 1. At bnor == 0 the phase never
// advances, so the sampler never fires: permanently idle, matching
// su_sampler_t's behavior for a zero rate.
type Sampler struct {
	bnor  Float
	phase Float
}

// NewSampler creates a sampler at the given normalized rate bnor.
func NewSampler(bnor Float) *Sampler {
	return &Sampler{bnor: bnor}
}

// SetRate changes the sampler's normalized rate.
func (s *Sampler) SetRate(bnor Float) {
	s.bnor = bnor
}

// SetPhase sets the sampler's fractional phase accumulator directly.
func (s *Sampler) SetPhase(phase Float) {
	s.phase = phase
}

// Feed advances the phase accumulator by bnor. If the accumulated phase has
// not yet reached a symbol boundary, fired is false and out is the zero
// value. Once the boundary is crossed, fired is true and out is prev/cur
// linearly interpolated at the fractional position the boundary fell at;
// the excess phase past the boundary carries over into the next period.
func (s *Sampler) Feed(prev, cur complex128) (out complex128, fired bool) {
	if s.bnor == 0 {
		return 0, false
	}

	s.phase += s.bnor

	if s.phase < 1 {
		return 0, false
	}

	excess := s.phase - 1
	s.phase = excess

	alpha := 1 - excess/s.bnor

	return prev + complex(alpha, 0)*(cur-prev), true
}

// Default Gardner loop coefficients, matching SU_PREFERED_CLOCK_ALPHA/BETA.
const (
	preferredClockAlpha = 1e-2
	preferredClockBeta  = 1e-3
)

// ClockDetector recovers symbol timing from a complex baseband stream via
// the Gardner timing-error detector and writes one recovered symbol per
// detected symbol boundary to its SymbolStream.
type ClockDetector struct {
	stream *SymbolStream
	cursor uint64

	gain  Float
	alpha Float
	beta  Float

	bnor Float
	bmin Float
	bmax Float

	phi       Float
	halfCycle bool

	x    [3]complex128
	prev complex128
}

// NewClockDetector builds a detector with loop gain loopGain, baud hint
// bhint (symbols/sample), and a symbol stream of the given buffer size.
func NewClockDetector(loopGain, bhint Float, bufSize int) *ClockDetector {
	return &ClockDetector{
		stream: NewSymbolStream(bufSize),
		gain:   loopGain,
		alpha:  preferredClockAlpha,
		beta:   preferredClockBeta,
		phi:    0.25,
		bnor:   bhint,
		bmin:   0,
		bmax:   1,
	}
}

// Stream exposes the detector's symbol stream for readers.
func (cd *ClockDetector) Stream() *SymbolStream {
	return cd.stream
}

// Baud returns the current normalized baud rate estimate.
func (cd *ClockDetector) Baud() Float {
	return cd.bnor
}

// SetBaud resets the detector's phase accumulator and sample history and
// retunes to a new baud hint, matching su_clock_detector_set_baud.
func (cd *ClockDetector) SetBaud(bhint Float) {
	cd.bnor = bhint
	cd.phi = 0
	cd.x = [3]complex128{}
	cd.prev = 0
}

// SetBnorLimits sets the allowed range for the baud-tracking loop and
// clamps the live estimate into it. Unlike the source this stores lo/hi
// into bmin/bmax before clamping, rather than silently discarding them.
func (cd *ClockDetector) SetBnorLimits(lo, hi Float) error {
	if lo > hi {
		return configError("clock detector bnor limits require lo <= hi")
	}

	cd.bmin = lo
	cd.bmax = hi
	cd.bnor = clampFloat(cd.bnor, cd.bmin, cd.bmax)

	return nil
}

func clampFloat(v, lo, hi Float) Float {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Feed processes one oversampled complex input. On a detected symbol
// boundary it pushes the interpolated on-symbol value onto the stream and
// adjusts phi/bnor from the Gardner error; otherwise it only updates the
// half-symbol interpolation history.
func (cd *ClockDetector) Feed(val complex128) {
	cd.phi += cd.bnor

	if cd.phi >= 0.5 {
		cd.halfCycle = !cd.halfCycle

		alphaInterp := cd.bnor * (cd.phi - 0.5)
		p := complex(1-alphaInterp, 0)*val + complex(alphaInterp, 0)*cd.prev

		cd.phi -= 0.5

		if !cd.halfCycle {
			cd.x[2] = cd.x[0]
			cd.x[0] = p

			e := cd.gain * real(complex(real(cd.x[1]), -imag(cd.x[1]))*(cd.x[0]-cd.x[2]))

			cd.phi += cd.alpha * e
			cd.bnor = clampFloat(cd.bnor+cd.beta*e, cd.bmin, cd.bmax)

			cd.stream.Write(p)
		} else {
			cd.x[1] = p
		}
	}

	cd.prev = val
}

// Read reads the next recovered symbol for this detector's own cursor. On
// overrun the cursor is resynchronized and ErrStreamOverrun is returned
// with a zero symbol, matching su_clock_detector_read's resync-and-zero
// behavior.
func (cd *ClockDetector) Read() (complex128, error, bool) {
	sym, err, ok := cd.stream.Read(&cd.cursor)
	if err != nil {
		return 0, err, false
	}

	return sym, nil, ok
}
