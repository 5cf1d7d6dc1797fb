package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Wires a Costas loop and a clock detector into one pipeline
 *		stage: carrier-recover each input sample, then feed the
 *		recovered baseband into timing recovery, which writes
 *		recovered symbols to its own stream for downstream
 *		consumers (bit slicing, FEC, framing -- all out of this
 *		package's scope).
 *
 * Grounded on:	spec.md's Design Notes on unifying per-stage construction
 *		behind one assembly entry point, and on the teacher's
 *		demod_9600_init/demod_9600_process_sample split between a
 *		one-time constructor and a per-sample Stage, adapted from
 *		AFSK demodulation onto Costas+Gardner carrier/clock
 *		recovery.
 *
 *------------------------------------------------------------------*/

// Stage is one sample-at-a-time pipeline stage.
type Stage interface {
	Feed(x complex128)
}

// Pipeline is an assembled carrier + clock recovery chain: each input
// sample is carrier-corrected by a Costas loop and the result fed to a
// Gardner clock detector, whose recovered symbols land on Symbols().
type Pipeline struct {
	costas *CostasLoop
	clock  *ClockDetector
}

// NewAssembly builds a Pipeline from an AssemblyConfig.
func NewAssembly(cfg AssemblyConfig) (*Pipeline, error) {
	kind, err := cfg.costasKind()
	if err != nil {
		return nil, err
	}

	if cfg.BaudMin > cfg.BaudMax {
		return nil, configError("assembly requires baud_min <= baud_max")
	}

	costas := NewCostasLoop(kind, cfg.CarrierHintFnor, cfg.LoopBandwidth, cfg.ArmFilterOrder, cfg.MixerGain)

	clock := NewClockDetector(cfg.ClockLoopGain, cfg.BaudHintBnor, cfg.SymbolStreamSize)
	if err := clock.SetBnorLimits(cfg.BaudMin, cfg.BaudMax); err != nil {
		return nil, err
	}

	return &Pipeline{costas: costas, clock: clock}, nil
}

// NewBPSKAssembly is a convenience constructor for a BPSK pipeline with the
// given carrier hint, loop bandwidth, arm filter order, and baud hint.
func NewBPSKAssembly(fhint, loopBW Float, armOrder int, bhint Float) (*Pipeline, error) {
	cfg := DefaultAssemblyConfig()
	cfg.Kind = "bpsk"
	cfg.CarrierHintFnor = fhint
	cfg.LoopBandwidth = loopBW
	cfg.ArmFilterOrder = armOrder
	cfg.BaudHintBnor = bhint

	return NewAssembly(cfg)
}

// NewQPSKAssembly is the QPSK counterpart to NewBPSKAssembly.
func NewQPSKAssembly(fhint, loopBW Float, armOrder int, bhint Float) (*Pipeline, error) {
	cfg := DefaultAssemblyConfig()
	cfg.Kind = "qpsk"
	cfg.CarrierHintFnor = fhint
	cfg.LoopBandwidth = loopBW
	cfg.ArmFilterOrder = armOrder
	cfg.BaudHintBnor = bhint

	return NewAssembly(cfg)
}

// New8PSKAssembly is the 8PSK counterpart to NewBPSKAssembly.
func New8PSKAssembly(fhint, loopBW Float, armOrder int, bhint Float) (*Pipeline, error) {
	cfg := DefaultAssemblyConfig()
	cfg.Kind = "8psk"
	cfg.CarrierHintFnor = fhint
	cfg.LoopBandwidth = loopBW
	cfg.ArmFilterOrder = armOrder
	cfg.BaudHintBnor = bhint

	return NewAssembly(cfg)
}

// Feed carrier-corrects x and times the result into the clock detector.
func (p *Pipeline) Feed(x complex128) {
	baseband := p.costas.Feed(x)
	p.clock.Feed(baseband)
}

// Symbols exposes the recovered symbol stream.
func (p *Pipeline) Symbols() *SymbolStream {
	return p.clock.Stream()
}

// CarrierLock returns the Costas loop's lock estimate.
func (p *Pipeline) CarrierLock() Float {
	return p.costas.Lock()
}

// Costas exposes the underlying carrier recovery loop.
func (p *Pipeline) Costas() *CostasLoop {
	return p.costas
}

// Clock exposes the underlying timing recovery detector.
func (p *Pipeline) Clock() *ClockDetector {
	return p.clock
}
