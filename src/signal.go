package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Synthetic complex baseband sources for benchmarking and
 *		testing the loops in this package without a live capture:
 *		a bare tone, and a PSK burst built by holding a tone's
 *		phase at one of N constellation points per symbol period.
 *
 * Grounded on:	_examples/doismellburning-samoyed/src/gen_tone.go's
 *		phase-accumulator DDS approach, adapted here onto this
 *		package's own NCQO rather than a 32-bit integer phase
 *		accumulator and sine table, since NCQO already provides
 *		that.
 *
 *------------------------------------------------------------------*/

import "math"

// ToneSource emits a pure complex exponential at a fixed normalized
// frequency. No noise is added.
type ToneSource struct {
	osc *NCQO
}

// NewToneSource builds a tone generator at normalized frequency fnor.
func NewToneSource(fnor Float) *ToneSource {
	return &ToneSource{osc: NewNCQO(fnor)}
}

// Next returns the next complex sample.
func (t *ToneSource) Next() complex128 {
	return t.osc.Read()
}

// PSKBurstSource emits a PSK-modulated burst: a carrier at fnor whose phase
// is offset by one of 2^bitsPerSymbol equally spaced constellation points,
// held for samplesPerSymbol samples before moving to the next symbol drawn
// from symbols.
type PSKBurstSource struct {
	osc              *NCQO
	symbols          []int
	bitsPerSymbol    int
	samplesPerSymbol int

	symIdx    int
	sampleIdx int
}

// NewPSKBurstSource builds a burst generator. symbols holds one
// constellation index per symbol period, each in [0, 2^bitsPerSymbol).
func NewPSKBurstSource(fnor Float, bitsPerSymbol, samplesPerSymbol int, symbols []int) *PSKBurstSource {
	return &PSKBurstSource{
		osc:              NewNCQO(fnor),
		symbols:          symbols,
		bitsPerSymbol:    bitsPerSymbol,
		samplesPerSymbol: samplesPerSymbol,
	}
}

// Next returns the next complex sample, advancing through the symbol list
// and wrapping once exhausted.
func (p *PSKBurstSource) Next() complex128 {
	if len(p.symbols) == 0 {
		return p.osc.Read()
	}

	sym := p.symbols[p.symIdx]
	levels := 1 << uint(p.bitsPerSymbol)
	offset := twoPi * Float(sym) / Float(levels)

	carrier := p.osc.Read()
	rot := complex(math.Cos(offset), math.Sin(offset))

	p.sampleIdx++
	if p.sampleIdx >= p.samplesPerSymbol {
		p.sampleIdx = 0

		p.symIdx++
		if p.symIdx >= len(p.symbols) {
			p.symIdx = 0
		}
	}

	return carrier * rot
}
