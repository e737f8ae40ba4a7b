package flex

// Style is the full set of inputs a node's layout is computed from. Its
// zero value is not the set of flexbox defaults (AlignItems, AlignContent
// and AspectRatio, among others, have non-zero defaults), so a Style must
// be built through NewStyle rather than a bare struct literal when
// defaults matter.
type Style struct {
	Direction     Direction
	FlexDirection FlexDirection
	JustifyContent Justify
	AlignContent  Align
	AlignItems    Align
	AlignSelf     Align
	PositionType  PositionType
	FlexWrap      Wrap
	Overflow      Overflow
	Display       Display

	Flex       Value // undefined means "not set"; when set, splits into grow/shrink
	FlexGrow   Value
	FlexShrink Value
	FlexBasis  Value

	Margin   Edges
	Position Edges
	Padding  Edges
	Border   Edges

	Dimensions    [dimensionCount]Value
	MinDimensions [dimensionCount]Value
	MaxDimensions [dimensionCount]Value

	AspectRatio Fl // Undefined when unset

	// RowGap and ColumnGap add extra space between items and between
	// lines. With a row main axis, ColumnGap separates the items of a
	// line and RowGap separates lines; with a column main axis, RowGap
	// separates the items and ColumnGap separates lines.
	RowGap    Value
	ColumnGap Value
}

// NewStyle returns a Style with every field at its flexbox default,
// optionally shifted by useWebDefaults.
func NewStyle(useWebDefaults bool) Style {
	s := Style{
		Direction:      DirectionInherit,
		FlexDirection:  FlexDirectionColumn,
		JustifyContent: JustifyFlexStart,
		AlignContent:   AlignFlexStart,
		AlignItems:     AlignStretch,
		AlignSelf:      AlignAuto,
		PositionType:   PositionTypeRelative,
		FlexWrap:       WrapNoWrap,
		Overflow:       OverflowVisible,
		Display:        DisplayFlex,

		Flex:       ValueUndefined(),
		FlexGrow:   ValueUndefined(),
		FlexShrink: ValueUndefined(),
		FlexBasis:  ValueAuto(),

		Margin:   defaultEdges(ValueUndefined()),
		Position: defaultEdges(ValueUndefined()),
		Padding:  defaultEdges(ValueUndefined()),
		Border:   defaultEdges(ValueUndefined()),

		Dimensions:    [dimensionCount]Value{ValueAuto(), ValueAuto()},
		MinDimensions: [dimensionCount]Value{ValueUndefined(), ValueUndefined()},
		MaxDimensions: [dimensionCount]Value{ValueUndefined(), ValueUndefined()},

		AspectRatio: Undefined,

		RowGap:    ValueUndefined(),
		ColumnGap: ValueUndefined(),
	}
	if useWebDefaults {
		s.FlexDirection = FlexDirectionRow
		s.AlignContent = AlignStretch
		s.FlexShrink = ValuePoint(1)
	}
	return s
}

// resolveFlexGrow returns 0 when unset, matching Yoga's treatment of a
// missing flexGrow as non-growing.
func (s *Style) resolveFlexGrow() Fl {
	if s.Flex.isDefined() && s.Flex.Value > 0 {
		return s.Flex.Value
	}
	if s.FlexGrow.isDefined() {
		return s.FlexGrow.Value
	}
	return 0
}

// resolveFlexShrink returns 0 when unset, or 1 when useWebDefaults is
// true (NewStyle(true) also sets FlexShrink to 1 explicitly).
func (s *Style) resolveFlexShrink(useWebDefaults bool) Fl {
	if s.Flex.isDefined() && s.Flex.Value < 0 {
		return -s.Flex.Value
	}
	if s.FlexShrink.isDefined() {
		return s.FlexShrink.Value
	}
	if useWebDefaults {
		return 1
	}
	return 0
}

func (s *Style) flexBasisStyle() Value {
	if s.Flex.isDefined() {
		if s.Flex.Value > 0 || s.Flex.Value < 0 {
			return ValuePoint(0)
		}
	}
	if s.FlexBasis.Unit != UnitUndefined {
		return s.FlexBasis
	}
	return ValueAuto()
}

func (s *Style) isFlexible(useWebDefaults bool) bool {
	return s.PositionType == PositionTypeRelative && (s.resolveFlexGrow() != 0 || s.resolveFlexShrink(useWebDefaults) != 0)
}

// gapForAxis returns the extra spacing style applies between same-line
// items along the main axis.
func (s *Style) gapForAxis(mainAxis FlexDirection) Value {
	if isRow(mainAxis) {
		return s.ColumnGap
	}
	return s.RowGap
}

// gapForCrossAxis returns the extra spacing style applies between lines.
func (s *Style) gapForCrossAxis(mainAxis FlexDirection) Value {
	if isRow(mainAxis) {
		return s.RowGap
	}
	return s.ColumnGap
}
