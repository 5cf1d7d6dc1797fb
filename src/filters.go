package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Arm filter construction for the Costas loop: the lowpass
 *		that follows the conj(NCQO)*input mixer and sets the loop's
 *		noise bandwidth.  Three shapes are realizable depending on
 *		the requested FIR order: a pass-through (order 0), a
 *		windowed-sinc brickwall FIR (order 1, or order at/above the
 *		FIR threshold), or an IIR Butterworth lowpass (everything
 *		else).
 *
 * Grounded on:	_examples/doismellburning-samoyed/src/dsp.go (window,
 *		gen_lowpass) for the windowed-sinc FIR shape and
 *		_examples/original_source/sigutils/pll.c
 *		(su_taps_brickwall_lp_init, su_dcof_bwlp, su_ccof_bwlp,
 *		su_sf_bwlp) for the brickwall tap count and the Butterworth
 *		design-and-scale sequence.
 *
 *------------------------------------------------------------------*/

import "math"

// FIROrderThreshold is the arm filter order at or above which a FIR
// brickwall replaces the IIR Butterworth, matching SU_COSTAS_FIR_ORDER_THRESHOLD.
const FIROrderThreshold = 20

// armFilter is the Costas loop's post-mixer lowpass. It is fed one complex
// sample at a time and returns the filtered sample.
type armFilter interface {
	feed(x complex128) complex128
}

// passthroughFilter is used for order 0: the mixer output is returned
// unfiltered.
type passthroughFilter struct{}

func (passthroughFilter) feed(x complex128) complex128 {
	return x
}

// firFilter is a real-tapped FIR convolved against a complex delay line.
type firFilter struct {
	taps  []Float
	delay []complex128
	pos   int
}

func newFIRFilter(taps []Float) *firFilter {
	return &firFilter{
		taps:  taps,
		delay: make([]complex128, len(taps)),
	}
}

func (f *firFilter) feed(x complex128) complex128 {
	f.delay[f.pos] = x

	var acc complex128

	idx := f.pos
	for _, tap := range f.taps {
		acc += complex(tap, 0) * f.delay[idx]

		idx--
		if idx < 0 {
			idx = len(f.delay) - 1
		}
	}

	f.pos++
	if f.pos >= len(f.delay) {
		f.pos = 0
	}

	return acc
}

// iirFilter is a single direct-form-I difference equation built from
// Butterworth numerator/denominator coefficients, operated on complex
// samples.
type iirFilter struct {
	b []Float // feedforward (numerator), gain-scaled
	a []Float // feedback (denominator), a[0] == 1
	x []complex128
	y []complex128
}

func newIIRFilter(b, a []Float) *iirFilter {
	return &iirFilter{
		b: b,
		a: a,
		x: make([]complex128, len(b)),
		y: make([]complex128, len(a)),
	}
}

func (f *iirFilter) feed(x complex128) complex128 {
	copy(f.x[1:], f.x[:len(f.x)-1])
	f.x[0] = x

	var acc complex128
	for i, bi := range f.b {
		acc += complex(bi, 0) * f.x[i]
	}

	for i := 1; i < len(f.a); i++ {
		acc -= complex(f.a[i], 0) * f.y[i-1]
	}

	copy(f.y[1:], f.y[:len(f.y)-1])
	f.y[0] = acc

	return acc
}

// newArmFilter builds the Costas loop's arm filter for the requested order
// and normalized 3dB bandwidth (cycles/sample). Mirrors su_costas_init's
// branch on order: 0 is a passthrough, 1 or >= FIROrderThreshold is a FIR
// brickwall sized to the order, everything else is an IIR Butterworth of
// that order.
func newArmFilter(order int, bw Float) armFilter {
	switch {
	case order <= 0:
		return passthroughFilter{}
	case order == 1 || order >= FIROrderThreshold:
		return newFIRFilter(brickwallLowpass(bw, firTapCount(order)))
	default:
		b, a := butterworthLowpass(order, bw)

		return newIIRFilter(b, a)
	}
}

// firTapCount picks an odd tap count proportional to the requested order,
// long enough to give the brickwall a usable transition band.
func firTapCount(order int) int {
	n := 4*order + 1
	if n%2 == 0 {
		n++
	}

	return n
}

// brickwallLowpass windows an ideal-lowpass sinc of cutoff fc
// (cycles/sample) into n taps using a Blackman window, then normalizes to
// unity DC gain. Grounded on gen_lowpass's windowed-sinc-then-normalize
// shape in dsp.go.
func brickwallLowpass(fc Float, n int) []Float {
	taps := make([]Float, n)
	mid := Float(n-1) / 2

	var dc Float

	for i := 0; i < n; i++ {
		t := Float(i) - mid

		var ideal Float
		if t == 0 {
			ideal = 2 * fc
		} else {
			ideal = math.Sin(twoPi*fc*t) / (math.Pi * t)
		}

		w := blackmanWindow(n, i)
		taps[i] = ideal * w
		dc += taps[i]
	}

	if dc != 0 {
		for i := range taps {
			taps[i] /= dc
		}
	}

	return taps
}

func blackmanWindow(n, j int) Float {
	if n <= 1 {
		return 1
	}

	x := twoPi * Float(j) / Float(n-1)

	return 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
}

// butterworthLowpass designs an order-n digital Butterworth lowpass at
// normalized cutoff fc via the bilinear transform of the analog prototype,
// returning direct-form-II {b, a} coefficients scaled to unity DC gain.
// Grounded on the su_dcof_bwlp/su_ccof_bwlp/su_sf_bwlp sequence: compute
// the denominator from the warped poles, the numerator as (1+z^-1)^n, then
// scale the whole response to 0dB at DC.
func butterworthLowpass(n int, fc Float) (b, a []Float) {
	warped := math.Tan(math.Pi * fc)

	poles := make([]complex128, n)
	for k := 0; k < n; k++ {
		theta := math.Pi * (2*Float(k) + 1) / (2 * Float(n))
		sPole := complex(-warped*math.Sin(theta), warped*math.Cos(theta))
		// bilinear transform s -> (z-1)/(z+1), solved for the z-domain pole.
		poles[k] = (1 + sPole) / (1 - sPole)
	}

	aCoef := polyFromRoots(poles)
	a = make([]Float, n+1)

	for i, c := range aCoef {
		a[i] = real(c)
	}

	bCoef := binomialExpansion(n)
	b = make([]Float, n+1)

	for i, c := range bCoef {
		b[i] = c
	}

	var gain Float

	var sumB, sumA Float

	for _, v := range b {
		sumB += v
	}

	for _, v := range a {
		sumA += v
	}

	if sumB != 0 {
		gain = sumA / sumB
	} else {
		gain = 1
	}

	for i := range b {
		b[i] *= gain
	}

	return b, a
}

// polyFromRoots expands prod(z - roots[i]) into monic coefficients, highest
// degree first.
func polyFromRoots(roots []complex128) []complex128 {
	coef := []complex128{1}

	for _, r := range roots {
		next := make([]complex128, len(coef)+1)
		for i, c := range coef {
			next[i] += c
			next[i+1] -= c * r
		}

		coef = next
	}

	return coef
}

// binomialExpansion returns the coefficients of (1+x)^n, which is the
// numerator shape (1+z^-1)^n used by every Butterworth lowpass design.
func binomialExpansion(n int) []Float {
	coef := make([]Float, n+1)
	coef[0] = 1

	for i := 1; i <= n; i++ {
		coef[i] = coef[i-1] * Float(n-i+1) / Float(i)
	}

	return coef
}
