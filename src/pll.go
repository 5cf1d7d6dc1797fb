package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Second-order phase-locked loop. Two feed modes share one
 *		NCQO and one pair of loop coefficients derived at
 *		construction time from a target corner frequency and a
 *		critically-damped-ish zeta of sqrt(2)/2:
 *
 *		  Track(x):  treats x as a baseband-ish signal whose phase
 *		             should be followed; returns the down-converted
 *		             mix x * conj(ref) and nudges the NCQO by a
 *		             phase-detector error derived from arg(x).
 *
 *		  Feed(x):   treats x as a signal already known to be near
 *		             the NCQO's frequency and drives lock purely off
 *		             the NCQO's own quadrature arms; returns nothing
 *		             but updates an exported lock estimate.
 *
 * Grounded on:	_examples/original_source/sigutils/pll.c (su_pll_init,
 *		su_pll_track, su_pll_feed). The asymmetric update guard in
 *		Feed -- the frequency term is only applied when
 *		omega > -alpha*err, the phase term unconditionally -- is
 *		kept exactly as the source has it; see the Open Questions
 *		note on FeedOmegaGuard below.
 *
 *------------------------------------------------------------------*/

import "math"

// pllZeta is the fixed damping ratio used to derive loop coefficients from
// a requested corner frequency, matching the source's hardcoded 0.707.
const pllZeta = math.Sqrt2 / 2

// PLL is a second-order carrier tracking loop.
type PLL struct {
	ncqo  *NCQO
	alpha Float
	beta  Float
	lock  Float
}

// NewPLL builds a PLL whose NCQO starts at fhint (normalized frequency,
// cycles/sample) and whose loop coefficients are derived from fc, the
// normalized corner frequency of the loop response.
func NewPLL(fhint, fc Float) *PLL {
	omega := normToAngular(fc)
	dinv := 1 / (1 + 2*pllZeta*omega + omega*omega)

	return &PLL{
		ncqo:  NewNCQO(fhint),
		alpha: 4 * omega * omega * dinv,
		beta:  4 * pllZeta * omega * dinv,
	}
}

// Lock returns the current lock quality estimate (populated by Feed; Track
// does not update it).
func (p *PLL) Lock() Float {
	return p.lock
}

// NCQO exposes the loop's local oscillator, mainly for inspection/testing.
func (p *PLL) NCQO() *NCQO {
	return p.ncqo
}

// Track treats x as the signal to follow: mixes it down against the NCQO's
// current phase, derives a phase error from arg(x) relative to the NCQO's
// phase, and nudges both the NCQO's frequency and phase by that error
// scaled by alpha/beta respectively. Returns the down-converted mix.
func (p *PLL) Track(x complex128) complex128 {
	ref := p.ncqo.Read()
	mix := x * complex(real(ref), -imag(ref))

	phase := p.ncqo.GetPhase()
	errPhase := principalCycle(math.Atan2(imag(x), real(x)) - phase)

	p.ncqo.IncAngFreq(p.alpha * errPhase)
	p.ncqo.IncPhase(p.beta * errPhase)

	return mix
}

// Feed treats x as already near the NCQO's frequency and drives lock
// purely from the NCQO's own quadrature arms: err = -x*Im(s), lck = x*Re(s)
// for s = NCQO.Read(). The frequency update is applied only when
// omega > -alpha*err (FeedOmegaGuard, kept verbatim from the source); the
// phase update always applies.
func (p *PLL) Feed(x Float) {
	s := p.ncqo.Read()

	errTerm := -x * imag(s)
	lck := x * real(s)

	p.lock += p.beta * (2*lck - p.lock)

	// FeedOmegaGuard: the source applies the frequency correction only
	// when it would not push omega negative past -alpha*err; the phase
	// correction has no such guard. Kept as-is rather than symmetrized.
	if p.ncqo.GetAngFreq() > -p.alpha*errTerm {
		p.ncqo.IncAngFreq(p.alpha * errTerm)
	}

	p.ncqo.IncPhase(p.beta * errTerm)
}
