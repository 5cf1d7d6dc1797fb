package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Host-facing configuration for an assembled pipeline, loaded
 *		from YAML.
 *
 * Grounded on:	_examples/doismellburning-samoyed/src/deviceid.go's
 *		struct-tagged yaml.v3 loading pattern (there: mice/tocalls
 *		device ID tables; here: loop parameters).
 *
 *------------------------------------------------------------------*/

import (
	"os"

	"gopkg.in/yaml.v3"
)

// AssemblyConfig is the host-settable parameter set for one assembled
// pipeline (NCQO hint, PLL/Costas loop bandwidth, arm filter order, clock
// detector gain and baud hint).
type AssemblyConfig struct {
	Kind             string `yaml:"kind"` // "bpsk", "qpsk", "8psk"
	CarrierHintFnor  Float  `yaml:"carrier_hint_fnor"`
	LoopBandwidth    Float  `yaml:"loop_bandwidth"`
	ArmFilterOrder   int    `yaml:"arm_filter_order"`
	MixerGain        Float  `yaml:"mixer_gain"`
	ClockLoopGain    Float  `yaml:"clock_loop_gain"`
	BaudHintBnor     Float  `yaml:"baud_hint_bnor"`
	BaudMin          Float  `yaml:"baud_min"`
	BaudMax          Float  `yaml:"baud_max"`
	SymbolStreamSize int    `yaml:"symbol_stream_size"`
}

// DefaultAssemblyConfig returns reasonable defaults for a QPSK pipeline.
func DefaultAssemblyConfig() AssemblyConfig {
	return AssemblyConfig{
		Kind:             "qpsk",
		CarrierHintFnor:  0,
		LoopBandwidth:    0.01,
		ArmFilterOrder:   4,
		MixerGain:        1,
		ClockLoopGain:    1,
		BaudHintBnor:     0.1,
		BaudMin:          0,
		BaudMax:          1,
		SymbolStreamSize: 4096,
	}
}

// LoadAssemblyConfig reads and parses a YAML config file, starting from
// DefaultAssemblyConfig so unset fields keep sane values.
func LoadAssemblyConfig(path string) (AssemblyConfig, error) {
	cfg := DefaultAssemblyConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// costasKind maps the config's textual kind to a CostasKind, rejecting
// anything else.
func (c AssemblyConfig) costasKind() (CostasKind, error) {
	switch c.Kind {
	case "bpsk":
		return CostasBPSK, nil
	case "qpsk", "":
		return CostasQPSK, nil
	case "8psk":
		return Costas8PSK, nil
	default:
		return 0, configError("unrecognized assembly kind " + c.Kind)
	}
}
