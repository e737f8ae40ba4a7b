package flex

// setLeadingPosition stashes an absolute (relative to the container's
// border box) pixel offset on the child's leading edge for axisDirection.
// The mirror trailing edge is filled in later by
// completePositionRectangle once both axes are known, so all four
// Position slots end up populated.
func setLeadingPosition(child *Node, axisDirection FlexDirection, value Fl) {
	child.Layout.Position[positionIndex(leadingEdge(axisDirection))] = value
}

// justifyMainAxisState is threaded out of justifyMainAxis for the caller,
// which records the line's main and cross sizes from it for the line
// alignment and container sizing that follow.
type justifyMainAxisState struct {
	mainDim  Fl
	crossDim Fl
}

// justifyMainAxis positions every item of line along mainAxis and
// returns the total main and cross extents consumed.
func justifyMainAxis(
	node *Node, line *flexLine, mainAxis, crossAxis FlexDirection,
	mainMeasureMode MeasureMode, availableInnerMainDim, availableInnerCrossDim, availableInnerWidth Fl,
	performLayout bool,
) justifyMainAxisState {
	leadingPaddingBorderMain := node.paddingAndBorderLeading(mainAxis, availableInnerWidth)

	remainingFreeSpace := Fl(0)
	if !IsUndefined(availableInnerMainDim) {
		remainingFreeSpace = availableInnerMainDim - (line.mainDim - node.paddingAndBorderForAxis(mainAxis, availableInnerWidth))
	}

	if mainMeasureMode == MeasureModeAtMost && remainingFreeSpace > 0 {
		minMain := resolveValue(node.Style.MinDimensions[dimensionOf(mainAxis)], availableInnerMainDim)
		if !IsUndefined(minMain) {
			consumed := availableInnerMainDim - remainingFreeSpace
			if consumed+remainingFreeSpace < minMain {
				remainingFreeSpace = minMain - consumed
			}
		} else {
			remainingFreeSpace = 0
		}
	}

	numberOfAutoMargins := 0
	for _, c := range line.itemsInLine {
		if c.Style.PositionType != PositionTypeRelative {
			continue
		}
		if c.marginLeadingValue(mainAxis).Unit == UnitAuto {
			numberOfAutoMargins++
		}
		if c.marginTrailingValue(mainAxis).Unit == UnitAuto {
			numberOfAutoMargins++
		}
	}

	leadingMainDim, betweenMainDim := Fl(0), Fl(0)
	if numberOfAutoMargins == 0 {
		n := Fl(line.itemsOnLine)
		switch node.Style.JustifyContent {
		case JustifyCenter:
			leadingMainDim = remainingFreeSpace / 2
		case JustifyFlexEnd:
			leadingMainDim = remainingFreeSpace
		case JustifySpaceBetween:
			if n > 1 {
				betweenMainDim = remainingFreeSpace / (n - 1)
			}
		case JustifySpaceAround:
			betweenMainDim = remainingFreeSpace / n
			leadingMainDim = betweenMainDim / 2
		case JustifySpaceEvenly:
			betweenMainDim = remainingFreeSpace / (n + 1)
			leadingMainDim = betweenMainDim
		}
	}

	gap := resolveValue(node.Style.gapForAxis(mainAxis), availableInnerMainDim)
	if IsUndefined(gap) {
		gap = 0
	}

	mainDim := leadingPaddingBorderMain + leadingMainDim
	crossDim := Fl(0)
	placedOnLine := 0

	for _, child := range line.itemsInLine {
		if child.Style.PositionType == PositionTypeAbsolute {
			if leadingValue(child.Style.Position, mainAxis, node.Layout.Direction).isDefined() {
				pos := resolveValue(leadingValue(child.Style.Position, mainAxis, node.Layout.Direction), availableInnerMainDim)
				if performLayout {
					setLeadingPosition(child, mainAxis, pos+node.borderLeading(mainAxis)+child.marginLeading(mainAxis, availableInnerWidth))
				}
			}
			continue
		}
		if child.Style.Display == DisplayNone {
			continue
		}

		itemGap := Fl(0)
		if placedOnLine > 0 {
			itemGap = gap
		}
		placedOnLine++

		if performLayout {
			leadingAuto := child.marginLeadingValue(mainAxis).Unit == UnitAuto
			trailingAuto := child.marginTrailingValue(mainAxis).Unit == UnitAuto
			mainDim += itemGap
			if numberOfAutoMargins > 0 {
				if leadingAuto {
					mainDim += remainingFreeSpace / Fl(numberOfAutoMargins)
				}
			}
			setLeadingPosition(child, mainAxis, mainDim+child.marginLeading(mainAxis, availableInnerWidth))
			mainDim += child.dimWithMargin(mainAxis, availableInnerWidth)
			if numberOfAutoMargins > 0 && trailingAuto {
				mainDim += remainingFreeSpace / Fl(numberOfAutoMargins)
			}
			mainDim += betweenMainDim
		} else {
			mainDim += itemGap + child.dimWithMargin(mainAxis, availableInnerWidth) + betweenMainDim
		}

		crossDim = maxF(crossDim, child.dimWithMargin(crossAxis, availableInnerWidth))
	}

	return justifyMainAxisState{mainDim: mainDim, crossDim: crossDim}
}
