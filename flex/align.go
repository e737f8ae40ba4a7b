package flex

// alignLines aligns each line along the cross axis, first spreading
// leftover cross space across lines per align-content, then placing
// each line's own items per align-items/align-self. It is called once
// per node, after every line has been justified.
func alignLines(
	node *Node, lines []*flexLine, mainAxis, crossAxis FlexDirection,
	crossMeasureMode MeasureMode, availableInnerCrossDim, availableInnerWidth, availableInnerHeight Fl,
	mainAxisParentSize, crossAxisParentSize Fl,
	performLayout bool, config *Config,
) {
	totalLineCrossDim := Fl(0)
	for _, l := range lines {
		totalLineCrossDim += l.crossDim
	}
	gap := resolveValue(node.Style.gapForCrossAxis(mainAxis), availableInnerCrossDim)
	if IsUndefined(gap) {
		gap = 0
	}
	totalLineCrossDim += gap * Fl(maxIntArg(len(lines)-1, 0))

	isMultiLineOrBaseline := len(lines) > 1 || anyLineBaselineAligned(node)

	currentLead := node.paddingAndBorderLeading(crossAxis, availableInnerWidth)
	crossDimLead := Fl(0)
	betweenLead := gap

	if isMultiLineOrBaseline && !IsUndefined(availableInnerCrossDim) {
		remaining := availableInnerCrossDim - totalLineCrossDim
		n := Fl(len(lines))
		switch node.Style.AlignContent {
		case AlignFlexEnd:
			currentLead += remaining
		case AlignCenter:
			currentLead += remaining / 2
		case AlignStretch:
			if availableInnerCrossDim > 0 && n > 0 {
				crossDimLead = remaining / n
			}
		case AlignSpaceAround:
			if n > 0 {
				extra := remaining / n
				currentLead += extra / 2
				betweenLead += extra
			}
		case AlignSpaceBetween:
			if n > 1 {
				betweenLead += remaining / (n - 1)
			}
		}
	}

	for _, line := range lines {
		lineHeight := line.crossDim + crossDimLead
		if performLayout {
			alignItemsInLine(node, line, mainAxis, crossAxis, currentLead, lineHeight, availableInnerWidth, availableInnerHeight, crossAxisParentSize, config)
		}
		currentLead += lineHeight + betweenLead
	}
}

func maxIntArg(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func anyLineBaselineAligned(node *Node) bool {
	if node.Style.AlignItems == AlignBaseline {
		return true
	}
	for _, c := range node.Children {
		if c.Style.AlignSelf == AlignBaseline {
			return true
		}
	}
	return false
}

// alignItemsInLine places every in-flow child of line within the band
// [currentLead, currentLead+lineHeight).
func alignItemsInLine(
	node *Node, line *flexLine, mainAxis, crossAxis FlexDirection,
	currentLead, lineHeight, availableInnerWidth, availableInnerHeight, crossAxisParentSize Fl,
	config *Config,
) {
	maxAscent, maxDescent := Fl(0), Fl(0)
	baselineLine := node.Style.AlignItems == AlignBaseline
	for _, c := range line.itemsInLine {
		if c.Style.PositionType != PositionTypeRelative || childAlign(node, c) != AlignBaseline {
			continue
		}
		baselineLine = true
		ascent := nodeBaseline(c) + c.marginLeading(FlexDirectionColumn, availableInnerWidth)
		descent := c.Layout.measuredDimensions[DimensionHeight] + c.marginForAxis(FlexDirectionColumn, availableInnerWidth) - ascent
		maxAscent = maxF(maxAscent, ascent)
		maxDescent = maxF(maxDescent, descent)
	}
	line.maxAscent, line.maxDescent = maxAscent, maxDescent
	_ = baselineLine

	for _, child := range line.itemsInLine {
		if child.Style.PositionType == PositionTypeAbsolute {
			if leadingValue(child.Style.Position, crossAxis, node.Layout.Direction).isDefined() {
				pos := resolveValue(leadingValue(child.Style.Position, crossAxis, node.Layout.Direction), availableInnerCrossDimFor(mainAxis, availableInnerWidth, availableInnerHeight))
				setLeadingPosition(child, crossAxis, pos+node.borderLeading(crossAxis)+child.marginLeading(crossAxis, availableInnerWidth))
			} else {
				setLeadingPosition(child, crossAxis, node.borderLeading(crossAxis)+child.marginLeading(crossAxis, availableInnerWidth))
			}
			continue
		}
		if child.Style.Display == DisplayNone {
			continue
		}

		align := childAlign(node, child)
		if align == AlignStretch &&
			child.marginLeadingValue(crossAxis).Unit != UnitAuto && child.marginTrailingValue(crossAxis).Unit != UnitAuto {
			if !child.isStyleDimDefined(crossAxis, crossAxisParentSize) {
				childMainSize := child.Layout.measuredDimensions[dimensionOf(mainAxis)]
				var aspectCross Fl = Undefined
				if !IsUndefined(child.Style.AspectRatio) {
					if isRow(mainAxis) {
						aspectCross = childMainSize / child.Style.AspectRatio
					} else {
						aspectCross = childMainSize * child.Style.AspectRatio
					}
				}
				childCross := lineHeight - child.marginForAxis(crossAxis, availableInnerWidth)
				if !IsUndefined(aspectCross) {
					childCross = aspectCross
				}
				childWidth, childHeight := childMainSize, childCross
				if !isRow(mainAxis) {
					childWidth, childHeight = childCross, childMainSize
				}
				layoutNodeInternal(child, childWidth, childHeight, node.Layout.Direction, MeasureModeExactly, MeasureModeExactly, availableInnerWidth, availableInnerHeight, true, "stretch", config)
			}
			setLeadingPosition(child, crossAxis, currentLead+child.marginLeading(crossAxis, availableInnerWidth))
			continue
		}

		remainingCrossDim := lineHeight - child.dimWithMargin(crossAxis, availableInnerWidth)
		leadingAuto := child.marginLeadingValue(crossAxis).Unit == UnitAuto
		trailingAuto := child.marginTrailingValue(crossAxis).Unit == UnitAuto

		var leadingCrossDim Fl
		switch {
		case leadingAuto && trailingAuto:
			leadingCrossDim = maxF(0, remainingCrossDim/2)
		case trailingAuto:
			leadingCrossDim = 0
		case leadingAuto:
			leadingCrossDim = maxF(0, remainingCrossDim)
		case align == AlignBaseline:
			leadingCrossDim = maxAscent - nodeBaseline(child) - child.marginLeading(FlexDirectionColumn, availableInnerWidth)
		case align == AlignFlexStart:
			leadingCrossDim = 0
		case align == AlignCenter:
			leadingCrossDim = remainingCrossDim / 2
		case align == AlignFlexEnd:
			leadingCrossDim = remainingCrossDim
		default:
			leadingCrossDim = 0
		}

		setLeadingPosition(child, crossAxis, currentLead+leadingCrossDim+child.marginLeading(crossAxis, availableInnerWidth))
	}
}

func availableInnerCrossDimFor(mainAxis FlexDirection, availableInnerWidth, availableInnerHeight Fl) Fl {
	if isRow(mainAxis) {
		return availableInnerHeight
	}
	return availableInnerWidth
}

// nodeBaseline returns a node's ascent for baseline alignment: the
// host-supplied Baseline callback if set, else, for a node with
// children, the baseline of its first child, and for a leaf its own
// measured height (treating the box as its own baseline).
func nodeBaseline(n *Node) Fl {
	if n.Baseline != nil {
		v := n.Baseline(n, n.Layout.measuredDimensions[DimensionWidth], n.Layout.measuredDimensions[DimensionHeight])
		if IsUndefined(v) {
			n.Config.fatalf("baseline callback returned an undefined value")
		}
		return v
	}
	if len(n.Children) == 0 {
		return n.Layout.measuredDimensions[DimensionHeight]
	}
	return nodeBaseline(n.Children[0])
}
