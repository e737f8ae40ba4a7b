package flex

import (
	"log"

	"github.com/benoitkugler/flexlayout/logger"
)

// ClonedFunc is invoked once per child copied by the copy-on-write path.
type ClonedFunc func(oldChild, newChild, parent *Node, childIndex int)

// Config holds process-wide-shared tuning knobs for one or more trees.
// It is deliberately a plain struct rather than an interface, so
// callers can read and set individual knobs directly.
type Config struct {
	// PointScaleFactor sets the pixel grid used by roundToPixelGrid; 0
	// disables rounding entirely.
	PointScaleFactor Fl

	UseWebDefaults            bool
	UseLegacyStretchBehaviour bool

	// ShouldDiffLayoutWithoutLegacyStretchBehaviour asks CalculateLayout
	// to re-run the layout with UseLegacyStretchBehaviour forced false
	// and record whether the two layouts differ. It is a diagnostic aid
	// for migrating away from the legacy behaviour, not a feature in its
	// own right.
	ShouldDiffLayoutWithoutLegacyStretchBehaviour bool

	ExperimentalFeatures FeatureSet

	// Logger receives fatal diagnostics in place of logger.FatalLogger
	// when non-nil.
	Logger *log.Logger

	Cloned ClonedFunc

	// Context is an opaque escape hatch threaded through to callbacks,
	// never inspected by the engine itself.
	Context any
}

// DefaultConfig returns the configuration NewNode attaches when given
// nil, and the one CalculateLayout uses when both its config argument and
// the root's Config are nil.
func DefaultConfig() *Config {
	return &Config{
		PointScaleFactor: 1,
	}
}

func (c *Config) hasExperimentalFeature(f ExperimentalFeature) bool {
	return c != nil && c.ExperimentalFeatures.Has(f)
}

func (c *Config) logger() *log.Logger {
	if c != nil && c.Logger != nil {
		return c.Logger
	}
	return logger.FatalLogger
}

func (c *Config) fatalf(format string, args ...any) {
	c.logger().Printf(format, args...)
	panic("flex: fatal: " + format)
}
