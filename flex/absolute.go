package flex

// layoutAbsoluteChild sizes and positions an absolutely positioned
// child once the in-flow pass for node is done.
func layoutAbsoluteChild(
	node, child *Node, mainAxis, crossAxis FlexDirection,
	availableInnerWidth, availableInnerHeight Fl,
	config *Config,
) {
	child.resolveDimensions()

	direction := node.Layout.Direction

	width, widthKnown := absoluteAxisSize(node, child, FlexDirectionRow, availableInnerWidth, availableInnerWidth, direction)
	height, heightKnown := absoluteAxisSize(node, child, FlexDirectionColumn, availableInnerHeight, availableInnerWidth, direction)

	if (!widthKnown || !heightKnown) && !IsUndefined(child.Style.AspectRatio) {
		if !widthKnown && heightKnown {
			width = height * child.Style.AspectRatio
			widthKnown = true
		} else if !heightKnown && widthKnown {
			height = width / child.Style.AspectRatio
			heightKnown = true
		}
	}

	if !widthKnown || !heightKnown {
		measureWidth, widthMode := width, MeasureModeExactly
		if !widthKnown {
			if !IsUndefined(availableInnerWidth) {
				measureWidth, widthMode = availableInnerWidth, MeasureModeAtMost
			} else {
				measureWidth, widthMode = Undefined, MeasureModeUndefined
			}
		}
		measureHeight, heightMode := height, MeasureModeExactly
		if !heightKnown {
			if !IsUndefined(availableInnerHeight) {
				measureHeight, heightMode = availableInnerHeight, MeasureModeAtMost
			} else {
				measureHeight, heightMode = Undefined, MeasureModeUndefined
			}
		}
		layoutNodeInternal(child, measureWidth, measureHeight, direction, widthMode, heightMode, availableInnerWidth, availableInnerHeight, false, "abs-measure", config)
		if !widthKnown {
			width = child.Layout.measuredDimensions[DimensionWidth] + child.marginForAxis(FlexDirectionRow, availableInnerWidth)
		}
		if !heightKnown {
			height = child.Layout.measuredDimensions[DimensionHeight] + child.marginForAxis(FlexDirectionColumn, availableInnerWidth)
		}
	}

	layoutNodeInternal(child, width, height, direction, MeasureModeExactly, MeasureModeExactly, availableInnerWidth, availableInnerHeight, true, "abs-layout", config)

	positionAbsoluteChild(node, child, mainAxis, availableInnerWidth, availableInnerWidth, availableInnerHeight)
	positionAbsoluteChild(node, child, crossAxis, availableInnerWidth, availableInnerWidth, availableInnerHeight)
}

// absoluteAxisSize resolves an absolute child's outer size (margin box)
// along axisDirection when it can be determined without measurement:
// an explicit style dimension, or the span between defined leading and
// trailing position offsets.
func absoluteAxisSize(node, child *Node, axisDirection FlexDirection, containerAxisSize, availableInnerWidth Fl, direction Direction) (Fl, bool) {
	if child.isStyleDimDefined(axisDirection, containerAxisSize) {
		v := resolveValue(child.resolvedDimensions[dimensionOf(axisDirection)], containerAxisSize)
		return v + child.marginForAxis(axisDirection, availableInnerWidth), true
	}
	leading := leadingValue(child.Style.Position, axisDirection, direction)
	trailing := trailingValue(child.Style.Position, axisDirection, direction)
	if leading.isDefined() && trailing.isDefined() && !IsUndefined(containerAxisSize) {
		span := containerAxisSize - resolveValue(leading, containerAxisSize) - resolveValue(trailing, containerAxisSize)
		return maxF(span, 0), true
	}
	return Undefined, false
}

// positionAbsoluteChild resolves the final position of one axis of an
// absolutely positioned child.
func positionAbsoluteChild(node, child *Node, axisDirection FlexDirection, containerAxisSize, availableInnerWidth, availableInnerHeight Fl) {
	direction := node.Layout.Direction
	leading := leadingValue(child.Style.Position, axisDirection, direction)
	trailing := trailingValue(child.Style.Position, axisDirection, direction)

	leadingBorder := node.borderLeading(axisDirection)
	outerSize := child.dimWithMargin(axisDirection, availableInnerWidth)

	isMain := isRow(axisDirection) == isRow(resolveFlexDirection(node.Style.FlexDirection, direction))

	switch {
	case trailing.isDefined() && !leading.isDefined():
		trailingBorder := node.borderTrailing(axisDirection)
		trailingPos := resolveValue(trailing, containerAxisSize)
		if IsUndefined(containerAxisSize) {
			setLeadingPosition(child, axisDirection, leadingBorder+child.marginLeading(axisDirection, availableInnerWidth))
			return
		}
		pos := containerAxisSize - trailingPos - trailingBorder - outerSize + child.marginLeading(axisDirection, availableInnerWidth)
		setLeadingPosition(child, axisDirection, pos)
	case leading.isDefined():
		leadingPos := resolveValue(leading, containerAxisSize)
		setLeadingPosition(child, axisDirection, leadingPos+leadingBorder+child.marginLeading(axisDirection, availableInnerWidth))
	default:
		justify := justificationForAxis(node, axisDirection, isMain)
		if IsUndefined(containerAxisSize) || justify == alignDefault {
			setLeadingPosition(child, axisDirection, leadingBorder+child.marginLeading(axisDirection, availableInnerWidth))
			return
		}
		switch justify {
		case alignCentered:
			setLeadingPosition(child, axisDirection, leadingBorder+(containerAxisSize-outerSize)/2+child.marginLeading(axisDirection, availableInnerWidth))
		case alignEnd:
			setLeadingPosition(child, axisDirection, containerAxisSize-outerSize+leadingBorder+child.marginLeading(axisDirection, availableInnerWidth))
		}
	}
}

type absoluteJustify uint8

const (
	alignDefault absoluteJustify = iota
	alignCentered
	alignEnd
)

// justificationForAxis maps the parent's justify-content (main axis) or
// align-items (cross axis, with wrap-reverse flipping flex-end) onto the
// three placements an absolute child with no explicit position on that
// axis can take.
func justificationForAxis(node *Node, axisDirection FlexDirection, isMain bool) absoluteJustify {
	if isMain {
		switch node.Style.JustifyContent {
		case JustifyCenter:
			return alignCentered
		case JustifyFlexEnd:
			return alignEnd
		}
		return alignDefault
	}
	align := node.Style.AlignItems
	flexEnd := AlignFlexEnd
	if node.Style.FlexWrap == WrapWrapReverse {
		if align == AlignFlexStart {
			align = AlignFlexEnd
		} else if align == AlignFlexEnd {
			align = AlignFlexStart
		}
	}
	switch align {
	case AlignCenter:
		return alignCentered
	case flexEnd:
		return alignEnd
	}
	return alignDefault
}
