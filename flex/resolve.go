package flex

// resolveFlexibleLengths distributes a line's remaining main-axis free
// space across its grow/shrink children in two passes (freezing any
// child whose min/max bound overrides its share, then redistributing
// the remainder among the rest), then lays each relative child out at
// its final size. It returns the (possibly pinned-down) availableInnerMainDim,
// which the caller carries forward into the next line: once a line pins
// the container to its content size, later lines on the same node see
// that pinned value too, matching a wrapped flex container never growing
// back out after an earlier line shrank it.
func resolveFlexibleLengths(
	node *Node, line *flexLine, mainAxis, crossAxis FlexDirection,
	availableInnerMainDim, availableInnerCrossDim, availableInnerWidth, availableInnerHeight Fl,
	mainAxisParentSize, crossAxisParentSize Fl,
	minInnerMainDim, maxInnerMainDim Fl,
	mainMeasureMode, crossMeasureMode MeasureMode,
	performLayout bool, config *Config,
) Fl {
	consumed := line.sizeConsumedOnCurrentLine

	// When the container's main dimension isn't exactly pinned and the
	// line cannot grow to fill it, availableInnerMainDim gets pinned down
	// to what the line actually consumed instead of the (possibly much
	// larger) at-most bound -- unless UseLegacyStretchBehaviour is set, in
	// which case the pin is skipped and content is left free to stretch
	// into the larger bound, mirroring the pre-fix Yoga behaviour.
	sizeBasedOnContent := false
	if mainMeasureMode != MeasureModeExactly {
		switch {
		case !IsUndefined(minInnerMainDim) && consumed < minInnerMainDim:
			availableInnerMainDim = minInnerMainDim
		case !IsUndefined(maxInnerMainDim) && consumed > maxInnerMainDim:
			availableInnerMainDim = maxInnerMainDim
		default:
			if !config.UseLegacyStretchBehaviour && (line.totalFlexGrowFactors == 0 || node.Style.resolveFlexGrow() == 0) {
				availableInnerMainDim = consumed
			}
			if config.UseLegacyStretchBehaviour {
				node.Layout.usedLegacyStretchBehaviour = true
			}
			sizeBasedOnContent = !config.UseLegacyStretchBehaviour
		}
	}

	var remainingFreeSpace Fl
	if !sizeBasedOnContent && !IsUndefined(availableInnerMainDim) {
		remainingFreeSpace = availableInnerMainDim - consumed
	} else if consumed < 0 {
		remainingFreeSpace = -consumed
	} else {
		remainingFreeSpace = 0
	}

	totalGrow := line.totalFlexGrowFactors
	totalShrinkScaled := line.totalFlexShrinkScaledFactors

	relative := relativeItems(line)

	frozen := make(map[*Node]Fl, len(relative))

	deltaFreeSpace := Fl(0)
	deltaGrow := Fl(0)
	deltaShrinkScaled := Fl(0)

	for _, child := range relative {
		basis := child.boundAxisWithinMinAndMax(mainAxis, child.Layout.computedFlexBasis, mainAxisParentSize)
		tentative := basis
		flexible := child.Style.isFlexible(config.UseWebDefaults)
		shrinkScaled := -child.Style.resolveFlexShrink(config.UseWebDefaults) * child.Layout.computedFlexBasis
		grow := child.Style.resolveFlexGrow()

		if flexible && remainingFreeSpace < 0 && totalShrinkScaled != 0 {
			tentative = basis + remainingFreeSpace*shrinkScaled/totalShrinkScaled
		} else if flexible && remainingFreeSpace > 0 && totalGrow != 0 {
			tentative = basis + remainingFreeSpace*grow/totalGrow
		}

		bound := child.boundAxis(mainAxis, tentative, mainAxisParentSize, availableInnerWidth)
		frozen[child] = bound
		if !FloatsEqual(bound, tentative) {
			delta := bound - tentative
			deltaFreeSpace -= delta
			if remainingFreeSpace < 0 {
				deltaShrinkScaled -= shrinkScaled
			} else {
				deltaGrow -= grow
			}
		}
	}

	remainingFreeSpace += deltaFreeSpace
	totalGrow += deltaGrow
	totalShrinkScaled += deltaShrinkScaled

	for _, child := range relative {
		basis := child.boundAxisWithinMinAndMax(mainAxis, child.Layout.computedFlexBasis, mainAxisParentSize)
		flexible := child.Style.isFlexible(config.UseWebDefaults)
		final := frozen[child]
		if flexible {
			tentative := basis
			shrinkScaled := -child.Style.resolveFlexShrink(config.UseWebDefaults) * child.Layout.computedFlexBasis
			grow := child.Style.resolveFlexGrow()
			if remainingFreeSpace < 0 && totalShrinkScaled != 0 {
				tentative = basis + remainingFreeSpace*shrinkScaled/totalShrinkScaled
			} else if remainingFreeSpace > 0 && totalGrow != 0 {
				tentative = basis + remainingFreeSpace*grow/totalGrow
			}
			final = child.boundAxis(mainAxis, tentative, mainAxisParentSize, availableInnerWidth)
		}

		childMainMargin := child.marginForAxis(mainAxis, availableInnerWidth)
		childMainSize := final
		childMainOuter := childMainSize + childMainMargin

		childCrossSize, childCrossMode, requiresStretchLayout := computeChildCrossSize(
			node, child, mainAxis, crossAxis, childMainSize,
			availableInnerCrossDim, availableInnerWidth, availableInnerHeight,
			crossAxisParentSize, crossMeasureMode,
		)

		childWidth, childHeight := childMainOuter, childCrossSize
		childWidthMode, childHeightMode := MeasureModeExactly, childCrossMode
		if !isRow(mainAxis) {
			childWidth, childHeight = childCrossSize, childMainOuter
			childWidthMode, childHeightMode = childCrossMode, MeasureModeExactly
		}

		// A child that only needs its cross axis stretched is measured
		// here without being positioned; alignItemsInLine repeats the
		// layout call with performLayout=true once the line's final
		// cross size is known, so doing a full positioned layout here
		// too would just be redone work.
		hadOverflow := layoutNodeInternal(child, childWidth, childHeight, node.Layout.Direction, childWidthMode, childHeightMode, availableInnerWidth, availableInnerHeight, performLayout && !requiresStretchLayout, "flex", config)
		if hadOverflow {
			node.Layout.HadOverflow = true
		}
	}

	gap := resolveValue(node.Style.gapForAxis(mainAxis), availableInnerMainDim)
	if IsUndefined(gap) {
		gap = 0
	}

	line.mainDim = consumedAfterResolve(relative, mainAxis, availableInnerWidth) +
		gap*Fl(maxIntArg(len(relative)-1, 0)) +
		node.paddingAndBorderForAxis(mainAxis, availableInnerWidth)

	return availableInnerMainDim
}

func relativeItems(line *flexLine) []*Node {
	out := make([]*Node, 0, len(line.itemsInLine))
	for _, c := range line.itemsInLine {
		if c.Style.PositionType == PositionTypeRelative && c.Style.Display != DisplayNone {
			out = append(out, c)
		}
	}
	return out
}

func consumedAfterResolve(items []*Node, mainAxis FlexDirection, widthSize Fl) Fl {
	var sum Fl
	for _, c := range items {
		sum += c.dimWithMargin(mainAxis, widthSize)
	}
	return sum
}

// computeChildCrossSize picks the child's cross-axis size and measure
// mode for the layout call that finalizes its main size, and reports
// whether this call exists only to realize a stretch (so a measure-only
// caller can skip it when the child already has a cached cross size).
func computeChildCrossSize(
	node, child *Node, mainAxis, crossAxis FlexDirection, childMainSize Fl,
	availableInnerCrossDim, availableInnerWidth, availableInnerHeight Fl,
	crossAxisParentSize Fl, crossMeasureMode MeasureMode,
) (Fl, MeasureMode, bool) {
	if !IsUndefined(child.Style.AspectRatio) {
		var cross Fl
		if isRow(mainAxis) {
			cross = childMainSize / child.Style.AspectRatio
		} else {
			cross = childMainSize * child.Style.AspectRatio
		}
		return cross, MeasureModeExactly, false
	}

	align := childAlign(node, child)
	marginsNonAuto := child.marginLeadingValue(crossAxis).Unit != UnitAuto && child.marginTrailingValue(crossAxis).Unit != UnitAuto
	if align == AlignStretch && crossMeasureMode == MeasureModeExactly && marginsNonAuto && !child.isStyleDimDefined(crossAxis, crossAxisParentSize) {
		crossAvail := availableInnerCrossDim
		if isRow(crossAxis) {
			crossAvail = availableInnerWidth
		} else {
			crossAvail = availableInnerHeight
		}
		return crossAvail - child.marginForAxis(crossAxis, availableInnerWidth), MeasureModeExactly, true
	}

	if child.isStyleDimDefined(crossAxis, crossAxisParentSize) {
		v := resolveValue(child.resolvedDimensions[dimensionOf(crossAxis)], crossAxisParentSize)
		return v + child.marginForAxis(crossAxis, availableInnerWidth), MeasureModeExactly, false
	}

	crossAvail := availableInnerCrossDim
	mode := MeasureModeAtMost
	if IsUndefined(crossAvail) {
		mode = MeasureModeUndefined
	}
	return crossAvail, mode, false
}
