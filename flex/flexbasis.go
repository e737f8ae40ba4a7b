package flex

// computeFlexBasisForChild fills in child.Layout.computedFlexBasis, the
// hypothetical main-axis size flexible-length resolution starts from.
// parent is the flex container; availableInner* are its inner
// (content-box) sizes; parentWidth/parentHeight are the sizes
// percentages on child ultimately resolve against.
func computeFlexBasisForChild(
	parent, child *Node,
	availableInnerWidth, availableInnerHeight Fl,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight Fl,
	config *Config,
) {
	mainAxis := resolveFlexDirection(parent.Style.FlexDirection, parent.Layout.Direction)
	isMainAxisRow := isRow(mainAxis)

	mainAxisSize := availableInnerWidth
	mainAxisParentSize := parentWidth
	if !isMainAxisRow {
		mainAxisSize = availableInnerHeight
		mainAxisParentSize = parentHeight
	}

	child.resolveDimensions()

	resolvedFlexBasis := resolveValue(child.Style.flexBasisStyle(), mainAxisParentSize)
	if !IsUndefined(resolvedFlexBasis) && !IsUndefined(mainAxisSize) {
		if IsUndefined(child.Layout.computedFlexBasis) || (config.hasExperimentalFeature(ExperimentalWebFlexBasis) && child.Layout.computedFlexBasisGeneration != currentGenerationCount) {
			child.Layout.computedFlexBasis = child.flooredFlexBasis(mainAxis, resolvedFlexBasis, availableInnerWidth)
		}
		child.Layout.computedFlexBasisGeneration = currentGenerationCount
		return
	}

	if child.isStyleDimDefined(mainAxis, mainAxisParentSize) {
		dim := resolveValue(child.resolvedDimensions[dimensionOf(mainAxis)], mainAxisParentSize)
		child.Layout.computedFlexBasis = child.flooredFlexBasis(mainAxis, dim, availableInnerWidth)
		child.Layout.computedFlexBasisGeneration = currentGenerationCount
		return
	}

	// Recursive measurement path: build constraints the same way a
	// normal layout call would, then measure without positioning.
	childWidth, childHeight := Undefined, Undefined
	childWidthMode, childHeightMode := MeasureModeUndefined, MeasureModeUndefined

	if child.isStyleDimDefined(FlexDirectionRow, parentWidth) {
		childWidth = resolveValue(child.resolvedDimensions[DimensionWidth], parentWidth) + child.marginForAxis(FlexDirectionRow, availableInnerWidth)
		childWidthMode = MeasureModeExactly
	}
	if child.isStyleDimDefined(FlexDirectionColumn, parentHeight) {
		childHeight = resolveValue(child.resolvedDimensions[DimensionHeight], parentHeight) + child.marginForAxis(FlexDirectionColumn, availableInnerWidth)
		childHeightMode = MeasureModeExactly
	}

	if !IsUndefined(child.Style.AspectRatio) {
		if isMainAxisRow && childWidthMode == MeasureModeExactly {
			childHeight = (childWidth - child.marginForAxis(FlexDirectionRow, availableInnerWidth)) / child.Style.AspectRatio
			childHeightMode = MeasureModeExactly
		} else if !isMainAxisRow && childHeightMode == MeasureModeExactly {
			childWidth = (childHeight - child.marginForAxis(FlexDirectionColumn, availableInnerWidth)) * child.Style.AspectRatio
			childWidthMode = MeasureModeExactly
		}
	}

	// A stretched child with an indefinite cross dimension is pinned to
	// the container's inner cross size before the generic "still
	// undefined" fallback below runs, so it measures its main axis at
	// its stretched cross size rather than at an unstretched at-most
	// guess. AlignSelf overriding the parent's own AlignItems is enough
	// to trigger this on its own, so only the resolved per-child
	// alignment is checked here. An aspect-ratio child still gets pinned;
	// its paired (main-axis) dimension is then re-derived from the newly
	// pinned cross size instead of being skipped.
	crossAxis := crossFlexDirection(mainAxis, parent.Layout.Direction)
	if childAlign(parent, child) == AlignStretch {
		if isRow(crossAxis) && childWidthMode != MeasureModeExactly {
			childWidth = availableInnerWidth
			childWidthMode = MeasureModeExactly
			if !IsUndefined(child.Style.AspectRatio) {
				childHeight = (childWidth - child.marginForAxis(FlexDirectionRow, availableInnerWidth)) / child.Style.AspectRatio
				childHeightMode = MeasureModeExactly
			}
		} else if isColumn(crossAxis) && childHeightMode != MeasureModeExactly {
			childHeight = availableInnerHeight
			childHeightMode = MeasureModeExactly
			if !IsUndefined(child.Style.AspectRatio) {
				childWidth = (childHeight - child.marginForAxis(FlexDirectionColumn, availableInnerWidth)) * child.Style.AspectRatio
				childWidthMode = MeasureModeExactly
			}
		}
	}

	if childWidthMode == MeasureModeUndefined && childHeightMode == MeasureModeUndefined {
		if !IsUndefined(availableInnerWidth) {
			childWidth = availableInnerWidth
			childWidthMode = MeasureModeAtMost
		} else {
			childWidthMode = MeasureModeUndefined
		}
		if !IsUndefined(availableInnerHeight) {
			childHeight = availableInnerHeight
			childHeightMode = MeasureModeAtMost
		} else {
			childHeightMode = MeasureModeUndefined
		}
	}

	childWidth, childWidthMode = constrainMaxSizeForMode(child, FlexDirectionRow, availableInnerWidth, parentWidth, childWidth, childWidthMode)
	childHeight, childHeightMode = constrainMaxSizeForMode(child, FlexDirectionColumn, availableInnerHeight, parentHeight, childHeight, childHeightMode)

	layoutNodeInternal(child, childWidth, childHeight, parent.Layout.Direction, childWidthMode, childHeightMode, parentWidth, parentHeight, false, "measure", config)

	mainDim := child.Layout.measuredDimensions[dimensionOf(mainAxis)]
	child.Layout.computedFlexBasis = child.flooredFlexBasis(mainAxis, mainDim, availableInnerWidth)
	child.Layout.computedFlexBasisGeneration = currentGenerationCount
}

// childAlign resolves the effective alignItem for child within parent
// (AlignSelf unless auto, else the parent's AlignItems). Baseline
// degrades to flex-start when the parent's main axis is a column, since
// baseline alignment only makes sense across a row.
func childAlign(parent, child *Node) Align {
	a := child.Style.AlignSelf
	if a == AlignAuto {
		a = parent.Style.AlignItems
	}
	if a == AlignBaseline && isColumn(resolveFlexDirection(parent.Style.FlexDirection, parent.Layout.Direction)) {
		return AlignFlexStart
	}
	return a
}

// constrainMaxSizeForMode clamps size to the node's max style dimension
// on axisDirection, downgrading an Exactly/AtMost mode to AtMost if the
// max is stricter.
func constrainMaxSizeForMode(n *Node, axisDirection FlexDirection, axisSize, parentAxisSize, size Fl, mode MeasureMode) (Fl, MeasureMode) {
	maxv := resolveValue(n.Style.MaxDimensions[dimensionOf(axisDirection)], parentAxisSize)
	if IsUndefined(maxv) {
		return size, mode
	}
	switch mode {
	case MeasureModeExactly, MeasureModeAtMost:
		if IsUndefined(size) || maxv < size {
			return maxv, MeasureModeAtMost
		}
	}
	return size, mode
}
