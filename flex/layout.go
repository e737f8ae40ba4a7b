package flex

const maxCachedMeasurements = 16

// CachedMeasurement is one entry of a node's measurement ring: the
// (width-mode, width, height-mode, height) request that produced
// (computedWidth, computedHeight).
type CachedMeasurement struct {
	AvailableWidth  Fl
	AvailableHeight Fl
	WidthMeasureMode  MeasureMode
	HeightMeasureMode MeasureMode

	ComputedWidth  Fl
	ComputedHeight Fl
}

func undefinedCachedMeasurement() CachedMeasurement {
	return CachedMeasurement{
		AvailableWidth:    -1,
		AvailableHeight:   -1,
		WidthMeasureMode:  MeasureMode(255),
		HeightMeasureMode: MeasureMode(255),
		ComputedWidth:     -1,
		ComputedHeight:    -1,
	}
}

// Layout is the computed output of a layout pass, plus the private cache
// state the recursive driver uses to avoid recomputation.
type Layout struct {
	Position [4]Fl // indexed by EdgeLeft/Top/Right/Bottom via positionIndex
	Dimensions [dimensionCount]Fl

	Margin  [6]Fl // left,top,right,bottom,start,end -- resolved, no shorthand left
	Border  [6]Fl
	Padding [6]Fl

	Direction Direction

	HadOverflow bool

	// LegacyStretchBehaviourAffectsLayout is set by CalculateLayout on
	// the root node only when Config.ShouldDiffLayoutWithoutLegacyStretchBehaviour
	// is set and the tree actually exercised the legacy cannot-flex
	// branch: true means re-running the same tree with
	// UseLegacyStretchBehaviour forced off would have produced a
	// different layout.
	LegacyStretchBehaviourAffectsLayout bool

	// usedLegacyStretchBehaviour records that this node's own
	// cannot-flex main-dimension resolution took the legacy branch
	// during the last layout pass, mirroring Yoga's didUseLegacyFlag.
	usedLegacyStretchBehaviour bool

	computedFlexBasis           Fl
	computedFlexBasisGeneration int

	generationCount     int
	lastParentDirection Direction

	nextCachedMeasurementsIndex int
	cachedMeasurements          [maxCachedMeasurements]CachedMeasurement
	measuredDimensions          [dimensionCount]Fl

	cachedLayout CachedMeasurement

	hasNewLayout bool
}

func newLayout() Layout {
	l := Layout{
		computedFlexBasis:   Undefined,
		lastParentDirection: Direction(255),
		cachedLayout:        undefinedCachedMeasurement(),
	}
	for i := range l.cachedMeasurements {
		l.cachedMeasurements[i] = undefinedCachedMeasurement()
	}
	for i := range l.measuredDimensions {
		l.measuredDimensions[i] = Undefined
	}
	return l
}

// resetCache invalidates every cached measurement and the layout cache
// entry, forcing the next layoutNodeInternal call to recompute.
func (l *Layout) resetCache() {
	l.nextCachedMeasurementsIndex = 0
	l.cachedLayout = undefinedCachedMeasurement()
	for i := range l.cachedMeasurements {
		l.cachedMeasurements[i] = undefinedCachedMeasurement()
	}
}
