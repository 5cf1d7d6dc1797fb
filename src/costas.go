package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Costas loop carrier synchronizer for BPSK, QPSK and 8PSK.
 *		Mixes the input down against its own NCQO, filters the
 *		result through an arm filter (see filters.go), derives a
 *		constellation-specific phase-detector error from the
 *		filtered sample, and drives the NCQO's frequency and phase
 *		from that error. Tracks a lock estimate and a smoothed
 *		output alongside the raw filtered sample.
 *
 * Grounded on:	_examples/original_source/sigutils/pll.c (su_costas_init,
 *		su_costas_feed, su_costas_set_kind). The three error
 *		detectors (BPSK, QPSK, 8PSK) and the arm-filter
 *		order/threshold selection are reproduced exactly; the 8PSK
 *		detector's (sqrt(2)-1) weight on the off-axis term is kept
 *		as a named constant. CostasNone and SetKind mirror the
 *		source's null-kind state and su_costas_set_kind: a loop can
 *		be constructed without ever picking a constellation and
 *		retuned to a different one at runtime.
 *
 *------------------------------------------------------------------*/

import "math"

// CostasKind selects the phase-detector shape. CostasNone is the loop's
// null state: Feed refuses to run the error detector and logs
// InvalidState instead, matching a loop that has never had SetKind called.
type CostasKind int

const (
	CostasNone CostasKind = iota
	CostasBPSK
	CostasQPSK
	Costas8PSK
)

// costas8PSKWeight is the (sqrt(2)-1) scale the 8PSK detector applies to
// its off-axis term, matching su_costas_feed's M_SQRT2 - 1.
const costas8PSKWeight = math.Sqrt2 - 1

// CostasLoop is a Costas carrier-synchronization loop.
type CostasLoop struct {
	kind CostasKind
	ncqo *NCQO
	arm  armFilter
	gain Float

	a, b   Float
	yAlpha Float

	y    complex128
	lock Float
}

// NewCostasLoop builds a Costas loop of the given kind, with local
// oscillator hinted at fhint (normalized frequency), loop noise bandwidth
// loopBW (normalized), arm filter order armOrder (see newArmFilter for the
// order-to-shape mapping), and a fixed mixer gain applied before the error
// detector.
func NewCostasLoop(kind CostasKind, fhint, loopBW Float, armOrder int, gain Float) *CostasLoop {
	a := normToAngular(loopBW)

	return &CostasLoop{
		kind:   kind,
		ncqo:   NewNCQO(fhint),
		arm:    newArmFilter(armOrder, loopBW),
		gain:   gain,
		a:      a,
		b:      0.5 * a * a,
		yAlpha: 1,
	}
}

// NCQO exposes the loop's local oscillator.
func (c *CostasLoop) NCQO() *NCQO {
	return c.ncqo
}

// Lock returns the current lock quality estimate.
func (c *CostasLoop) Lock() Float {
	return c.lock
}

// Kind returns the loop's current constellation kind.
func (c *CostasLoop) Kind() CostasKind {
	return c.kind
}

// SetKind changes the loop's constellation kind at runtime, matching
// su_costas_set_kind. A loop built via NewCostasLoop(CostasNone, ...) must
// have SetKind called before Feed will do anything.
func (c *CostasLoop) SetKind(kind CostasKind) {
	c.kind = kind
}

// Feed processes one input sample and returns the loop's smoothed output.
// If the loop's kind is still CostasNone, Feed logs InvalidState and
// returns the unchanged output without touching the NCQO or lock estimate.
func (c *CostasLoop) Feed(x complex128) complex128 {
	if c.kind == CostasNone {
		warnInvalidState("costas", "feed on null-kind loop")

		return c.y
	}

	s := c.ncqo.Read()
	mixed := complex(real(s), -imag(s)) * x
	z := complex(c.gain, 0) * c.arm.feed(mixed)

	e := c.detectError(z)

	c.lock += c.a * (1 - e - c.lock)
	c.y += complex(c.yAlpha, 0) * (z - c.y)

	c.ncqo.IncAngFreq(c.b * e)
	c.ncqo.IncPhase(c.a * e)

	return c.y
}

func (c *CostasLoop) detectError(z complex128) Float {
	switch c.kind {
	case CostasBPSK:
		return -real(z) * imag(z)
	case CostasQPSK:
		l := signComplex(z)

		return real(l)*imag(z) - imag(l)*real(z)
	case Costas8PSK:
		l := signComplex(z)

		if math.Abs(real(z)) >= math.Abs(imag(z)) {
			return real(l)*imag(z) - imag(l)*real(z)*costas8PSKWeight
		}

		return real(l)*imag(z)*costas8PSKWeight - imag(l)*real(z)
	default:
		return 0
	}
}

// signComplex maps each rail to its sign, giving the nearest BPSK/QPSK
// constellation-axis decision used by the QPSK and 8PSK detectors.
func signComplex(z complex128) complex128 {
	return complex(signOf(real(z)), signOf(imag(z)))
}

func signOf(v Float) Float {
	if v < 0 {
		return -1
	}

	return 1
}
