package logger

import (
	"log"
	"os"
)

// WarningLogger is the sink for diagnostics about non fatal conditions.
// No code in this module writes to it.
var WarningLogger = log.New(os.Stdout, "flexlayout.warning: ", log.Lmsgprefix)

// FatalLogger receives one message immediately before flex panics on a
// structural invariant violation. Logging and panicking are kept as two
// separate steps so a host can swap in its own *log.Logger (via
// Config.Logger) without losing the fatal signal.
var FatalLogger = log.New(os.Stderr, "flexlayout.fatal: ", log.Lmsgprefix)
