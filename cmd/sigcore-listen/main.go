package main

/*-------------------------------------------------------------------
 *
 * Name:	sigcore-listen
 *
 * Purpose:	Feed live audio from the default input device through an
 *		assembled carrier + clock recovery pipeline, printing
 *		recovered symbols and lock status as they arrive. A thin
 *		demo of wiring a real capture device to package sigcore;
 *		WAV/file I/O and any downstream bit slicing are out of this
 *		package's scope.
 *
 *--------------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/spf13/pflag"

	"github.com/jedi7/sigcore/src"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "YAML assembly config (defaults used if empty)")
		sampleRate = pflag.Float64P("rate", "r", 48000, "capture sample rate in Hz")
		carrierHz  = pflag.Float64P("carrier-hz", "f", 1800, "expected carrier frequency in Hz")
	)

	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sigcore-listen"})
	sigcore.SetLogger(logger)

	cfg := sigcore.DefaultAssemblyConfig()
	if *configPath != "" {
		loaded, err := sigcore.LoadAssemblyConfig(*configPath)
		if err != nil {
			logger.Fatal("loading config", "err", err)
		}

		cfg = loaded
	} else {
		cfg.CarrierHintFnor = *carrierHz / *sampleRate
	}

	pipeline, err := sigcore.NewAssembly(cfg)
	if err != nil {
		logger.Fatal("building assembly", "err", err)
	}

	if err := portaudio.Initialize(); err != nil {
		logger.Fatal("portaudio init", "err", err)
	}
	defer portaudio.Terminate()

	in := make([]float32, 1024)

	stream, err := portaudio.OpenDefaultStream(1, 0, *sampleRate, len(in), in)
	if err != nil {
		logger.Fatal("opening input stream", "err", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		logger.Fatal("starting stream", "err", err)
	}
	defer stream.Stop()

	cursor := pipeline.Symbols().NewCursor()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case <-interrupt:
			return
		default:
		}

		if err := stream.Read(); err != nil {
			logger.Warn("stream read", "err", err)

			continue
		}

		for _, s := range in {
			pipeline.Feed(complex(float64(s), 0))
		}

		drainSymbols(pipeline, &cursor, logger)
	}
}

func drainSymbols(p *sigcore.Pipeline, cursor *uint64, logger *log.Logger) {
	for {
		sym, err, ok := p.Symbols().Read(cursor)
		if err != nil {
			logger.Warn("symbol stream overrun", "err", err)

			continue
		}

		if !ok {
			return
		}

		fmt.Printf("symbol=%.3f%+.3fi lock=%.3f\n", real(sym), imag(sym), p.CarrierLock())
	}
}
