package sigcore

/*------------------------------------------------------------------
 *
 * Purpose:	Structured logging for non-fatal anomalies the core does
 *		not propagate as errors: a mutation attempted against a
 *		fixed NCQO, or a feed() against a Costas loop still in
 *		its null (CostasNone) state.
 *
 * Description:	The teacher's dw_printf/text_color_set pair (textcolor.go)
 *		is a hand-rolled leveled-logging facade bolted onto fmt.
 *		charmbracelet/log already gives us that facade properly,
 *		with structured key/value attributes, so we use it
 *		directly instead of reimplementing color codes.
 *
 *------------------------------------------------------------------*/

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

func defaultLogger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sigcore",
		})
	})

	return logger
}

// SetLogger overrides the package-wide logger.  Hosts that want the core's
// warnings folded into their own logging pipeline can call this once at
// startup; nil restores the default stderr logger on next use.
func SetLogger(l *log.Logger) {
	loggerOnce.Do(func() {})

	if l == nil {
		logger = nil
		loggerOnce = sync.Once{}

		return
	}

	logger = l
}

func warnFixedMutation(component string, op string) {
	defaultLogger().With("component", component, "op", op).Warn("mutation refused on fixed-mode NCQO")
}

func warnInvalidState(component string, reason string) {
	defaultLogger().With("component", component).Warn("feed on uninitialized loop", "reason", reason)
}
