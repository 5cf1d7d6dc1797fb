package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Numerically-controlled quadrature oscillator.  Maintains a
 *		phase phi and angular frequency omega and emits the unit
 *		complex exponential exp(j*phi) on demand, one sample at a
 *		time.  Every closed loop in this package (PLL, Costas) owns
 *		exactly one of these as its local oscillator.
 *
 * Grounded on:	_examples/original_source/sigutils/ncqo.c (su_ncqo_t and
 *		its su_ncqo_* operations).  The freshness-flag caching idiom
 *		for sin/cos is kept; the precalculated-table fixed mode is
 *		kept as a distinct code path rather than a shared one, same
 *		as the source.
 *
 *------------------------------------------------------------------*/

import "math"

// NCQO is a numerically-controlled quadrature oscillator.  The zero value
// is not usable; construct with NewNCQO or NewFixedNCQO.
type NCQO struct {
	phi   Float
	omega Float
	fnor  Float

	cosVal, sinVal     Float
	cosFresh, sinFresh bool

	fixed     bool
	cosTable  []Float
	sinTable  []Float
	tableSize int
	p         int
}

// NewNCQO creates an oscillator hinted at normalized frequency fnor
// (cycles/sample), phase reset to zero.
func NewNCQO(fnor Float) *NCQO {
	n := &NCQO{}
	n.init(fnor)

	return n
}

// NewFixedNCQO creates an oscillator whose frequency and phase can never
// change after construction, in exchange for exact periodicity: a full
// cycle of cos/sin is precomputed into a table of round(1/fnor) samples
// and read out by table index instead of by evaluating sin/cos per sample.
// Returns ErrConfigRejected if fnor <= 0.
func NewFixedNCQO(fnor Float) (*NCQO, error) {
	if fnor <= 0 {
		return nil, configError("fixed NCQO requires a positive normalized frequency")
	}

	n := &NCQO{}
	n.init(fnor)
	n.fixed = true

	n.tableSize = int(math.Round(1 / fnor))
	if n.tableSize < 1 {
		n.tableSize = 1
	}

	n.cosTable = make([]Float, n.tableSize)
	n.sinTable = make([]Float, n.tableSize)

	for k := 0; k < n.tableSize; k++ {
		angle := twoPi * Float(k) / Float(n.tableSize)
		n.cosTable[k] = math.Cos(angle)
		n.sinTable[k] = math.Sin(angle)
	}

	n.p = 0

	return n, nil
}

func (n *NCQO) init(fnor Float) {
	n.phi = 0
	n.omega = normToAngular(fnor)
	n.fnor = fnor
	n.cosVal = 1
	n.sinVal = 0
	n.cosFresh = true
	n.sinFresh = true
	n.fixed = false
	n.p = 0
}

// IsFixed reports whether this NCQO is in precomputed-table mode.
func (n *NCQO) IsFixed() bool {
	return n.fixed
}

// SetPhase folds phi0 into (-pi, pi] and stores it.  Refused on a fixed
// NCQO (FixedModeMutation): logged, state unchanged.
func (n *NCQO) SetPhase(phi0 Float) {
	if n.fixed {
		warnFixedMutation("ncqo", "set_phase")

		return
	}

	n.phi = principalCycle(phi0)
	n.cosFresh = false
	n.sinFresh = false
}

// GetPhase returns the current phase.
func (n *NCQO) GetPhase() Float {
	return n.phi
}

// IncPhase adds delta to phi, folding back into (-pi, pi]. Refused on a
// fixed NCQO.
func (n *NCQO) IncPhase(delta Float) {
	if n.fixed {
		warnFixedMutation("ncqo", "inc_phase")

		return
	}

	n.phi = principalCycle(n.phi + delta)
	n.cosFresh = false
	n.sinFresh = false
}

// SetFreq sets the normalized frequency, updating omega in lockstep.
// Refused on a fixed NCQO.
func (n *NCQO) SetFreq(fnor Float) {
	if n.fixed {
		warnFixedMutation("ncqo", "set_freq")

		return
	}

	n.fnor = fnor
	n.omega = normToAngular(fnor)
}

// IncFreq adds delta to the normalized frequency. Refused on a fixed NCQO.
func (n *NCQO) IncFreq(delta Float) {
	if n.fixed {
		warnFixedMutation("ncqo", "inc_freq")

		return
	}

	n.fnor += delta
	n.omega = normToAngular(n.fnor)
}

// GetFreq returns the current normalized frequency.
func (n *NCQO) GetFreq() Float {
	return n.fnor
}

// SetAngFreq sets omega directly (radians/sample). Refused on a fixed NCQO.
func (n *NCQO) SetAngFreq(omega Float) {
	if n.fixed {
		warnFixedMutation("ncqo", "set_angfreq")

		return
	}

	n.omega = omega
	n.fnor = angularToNorm(omega)
}

// IncAngFreq adds delta to omega. Refused on a fixed NCQO.
func (n *NCQO) IncAngFreq(delta Float) {
	if n.fixed {
		warnFixedMutation("ncqo", "inc_angfreq")

		return
	}

	n.omega += delta
	n.fnor = angularToNorm(n.omega)
}

// GetAngFreq returns the current angular frequency.
func (n *NCQO) GetAngFreq() Float {
	return n.omega
}

func (n *NCQO) assertCos() {
	if !n.cosFresh {
		n.cosVal = math.Cos(n.phi)
		n.cosFresh = true
	}
}

func (n *NCQO) assertSin() {
	if !n.sinFresh {
		n.sinVal = math.Sin(n.phi)
		n.sinFresh = true
	}
}

// GetI returns cos(phi) for the current sample without advancing phase.
func (n *NCQO) GetI() Float {
	if n.fixed {
		return n.cosTable[n.p]
	}

	n.assertCos()

	return n.cosVal
}

// GetQ returns sin(phi) for the current sample without advancing phase.
func (n *NCQO) GetQ() Float {
	if n.fixed {
		return n.sinTable[n.p]
	}

	n.assertSin()

	return n.sinVal
}

// Get returns the complex pair (cos phi, sin phi) without advancing phase.
func (n *NCQO) Get() complex128 {
	if n.fixed {
		return complex(n.cosTable[n.p], n.sinTable[n.p])
	}

	n.assertCos()
	n.assertSin()

	return complex(n.cosVal, n.sinVal)
}

// Step advances phi by omega, folding into (-pi, pi], and invalidates both
// freshness flags.  In fixed mode it instead advances the table index
// modulo the table length.
func (n *NCQO) Step() {
	if n.fixed {
		n.p++
		if n.p >= n.tableSize {
			n.p = 0
		}

		return
	}

	n.phi = principalCycle(n.phi + n.omega)
	n.cosFresh = false
	n.sinFresh = false
}

// ReadI returns the current cos(phi), then steps.
func (n *NCQO) ReadI() Float {
	if n.fixed {
		old := n.cosTable[n.p]
		n.Step()

		return old
	}

	n.assertCos()
	old := n.cosVal

	n.phi = principalCycle(n.phi + n.omega)
	n.cosVal = math.Cos(n.phi)
	n.cosFresh = true
	n.sinFresh = false

	return old
}

// ReadQ returns the current sin(phi), then steps.
func (n *NCQO) ReadQ() Float {
	if n.fixed {
		old := n.sinTable[n.p]
		n.Step()

		return old
	}

	n.assertSin()
	old := n.sinVal

	n.phi = principalCycle(n.phi + n.omega)
	n.sinVal = math.Sin(n.phi)
	n.sinFresh = true
	n.cosFresh = false

	return old
}

// Read returns the current complex pair, then steps.
func (n *NCQO) Read() complex128 {
	if n.fixed {
		old := complex(n.cosTable[n.p], n.sinTable[n.p])
		n.Step()

		return old
	}

	n.assertCos()
	n.assertSin()
	old := complex(n.cosVal, n.sinVal)

	n.phi = principalCycle(n.phi + n.omega)
	n.cosVal = math.Cos(n.phi)
	n.sinVal = math.Sin(n.phi)
	n.cosFresh = true
	n.sinFresh = true

	return old
}
