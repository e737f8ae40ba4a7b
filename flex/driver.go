package flex

// innerAvailableSize computes node's clamped inner (content-box)
// available size along one axis: the available size offered to node,
// minus its own margin and padding+border, clamped into its own min/max
// style bounds.
func innerAvailableSize(node *Node, axisDirection FlexDirection, availableSize, parentAxisSize, parentWidth Fl) Fl {
	if IsUndefined(availableSize) {
		return Undefined
	}
	pb := node.paddingAndBorderForAxis(axisDirection, parentWidth)
	inner := availableSize - node.marginForAxis(axisDirection, parentWidth) - pb

	d := dimensionOf(axisDirection)
	minv := resolveValue(node.Style.MinDimensions[d], parentAxisSize)
	maxv := resolveValue(node.Style.MaxDimensions[d], parentAxisSize)
	if !IsUndefined(maxv) {
		inner = minF(inner, maxF(maxv-pb, 0))
	}
	if !IsUndefined(minv) {
		inner = maxF(inner, maxF(minv-pb, 0))
	}
	return maxF(inner, 0)
}

// completePositionRectangle fills a child's trailing Position slots from
// its already-set leading slots, so all four physical edges end up
// populated.
func completePositionRectangle(child *Node, mainAxis, crossAxis FlexDirection, parentMainSize, parentCrossSize, availableInnerWidth Fl) {
	outerMain := child.dimWithMargin(mainAxis, availableInnerWidth)
	outerCross := child.dimWithMargin(crossAxis, availableInnerWidth)
	if !IsUndefined(parentMainSize) {
		li := positionIndex(leadingEdge(mainAxis))
		ti := positionIndex(trailingEdge(mainAxis))
		child.Layout.Position[ti] = parentMainSize - child.Layout.Position[li] - outerMain
	}
	if !IsUndefined(parentCrossSize) {
		li := positionIndex(leadingEdge(crossAxis))
		ti := positionIndex(trailingEdge(crossAxis))
		child.Layout.Position[ti] = parentCrossSize - child.Layout.Position[li] - outerCross
	}
}

// relativePosition returns a node's own definite offset along
// axisDirection derived from its Position style edges: the leading edge
// wins when both are set, otherwise the trailing edge is negated. Edges
// with no definite value contribute zero.
func (n *Node) relativePosition(axisDirection FlexDirection, axisSize Fl) Fl {
	if leadingValue(n.Style.Position, axisDirection, n.Layout.Direction).isDefined() {
		return resolveValue(leadingValue(n.Style.Position, axisDirection, n.Layout.Direction), axisSize)
	}
	trailing := resolveValue(trailingValue(n.Style.Position, axisDirection, n.Layout.Direction), axisSize)
	if IsUndefined(trailing) {
		return 0
	}
	return -trailing
}

// setPosition derives a node's own four Position slots from its margin
// and relative Position style edges, given the resolved direction and
// its own main/cross sizes. A root node is always positioned as if LTR,
// so it never reports a negative offset from a start-relative position.
func setPosition(node *Node, direction Direction, mainSize, crossSize, parentWidth Fl) {
	directionRespectingRoot := direction
	if node.Parent == nil {
		directionRespectingRoot = DirectionLTR
	}
	mainAxis := resolveFlexDirection(node.Style.FlexDirection, directionRespectingRoot)
	crossAxis := crossFlexDirection(mainAxis, directionRespectingRoot)

	relativeMain := node.relativePosition(mainAxis, mainSize)
	relativeCross := node.relativePosition(crossAxis, crossSize)

	node.Layout.Position[positionIndex(leadingEdge(mainAxis))] = node.marginLeading(mainAxis, parentWidth) + relativeMain
	node.Layout.Position[positionIndex(trailingEdge(mainAxis))] = node.marginTrailing(mainAxis, parentWidth) + relativeMain
	node.Layout.Position[positionIndex(leadingEdge(crossAxis))] = node.marginLeading(crossAxis, parentWidth) + relativeCross
	node.Layout.Position[positionIndex(trailingEdge(crossAxis))] = node.marginTrailing(crossAxis, parentWidth) + relativeCross
}

// layoutNodeImpl is the per-node flexbox algorithm: resolve edges, pick
// main/cross axes, compute each child's flex basis, collect lines,
// resolve flexible lengths, justify and align, then recurse into
// absolutely positioned children. All recursive sizing goes through
// layoutNodeInternal, never directly here.
func layoutNodeImpl(
	node *Node,
	availableWidth, availableHeight Fl,
	parentDirection Direction,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight Fl,
	performLayout bool,
	config *Config,
) {
	direction := node.Style.Direction
	if direction == DirectionInherit {
		direction = parentDirection
	}
	if direction == DirectionInherit {
		direction = DirectionLTR
	}
	node.Layout.Direction = direction

	node.Layout.Margin = resolveEdgeSet(node.Style.Margin, direction, parentWidth, true)
	node.Layout.Border = resolveEdgeSet(node.Style.Border, direction, parentWidth, false)
	node.Layout.Padding = resolveEdgeSet(node.Style.Padding, direction, parentWidth, false)

	if node.Measure != nil {
		nodeWithMeasureFuncSetMeasuredDimensions(node, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight, config)
		return
	}

	if len(node.Children) == 0 {
		nodeEmptyContainerSetMeasuredDimensions(node, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
		return
	}

	mainAxis := resolveFlexDirection(node.Style.FlexDirection, direction)
	crossAxis := crossFlexDirection(mainAxis, direction)

	mainAxisParentSize, crossAxisParentSize := parentWidth, parentHeight
	if !isRow(mainAxis) {
		mainAxisParentSize, crossAxisParentSize = parentHeight, parentWidth
	}

	availableInnerWidth := innerAvailableSize(node, FlexDirectionRow, availableWidth, parentWidth, parentWidth)
	availableInnerHeight := innerAvailableSize(node, FlexDirectionColumn, availableHeight, parentHeight, parentWidth)

	availableInnerMainDim, availableInnerCrossDim := availableInnerWidth, availableInnerHeight
	mainMeasureMode, crossMeasureMode := widthMeasureMode, heightMeasureMode
	if !isRow(mainAxis) {
		availableInnerMainDim, availableInnerCrossDim = availableInnerHeight, availableInnerWidth
		mainMeasureMode, crossMeasureMode = heightMeasureMode, widthMeasureMode
	}

	minInnerMainDim := resolveValue(node.Style.MinDimensions[dimensionOf(mainAxis)], mainAxisParentSize) - node.paddingAndBorderForAxis(mainAxis, parentWidth)
	maxInnerMainDim := resolveValue(node.Style.MaxDimensions[dimensionOf(mainAxis)], mainAxisParentSize) - node.paddingAndBorderForAxis(mainAxis, parentWidth)

	var absoluteChildren []*Node
	for _, child := range node.Children {
		if child.Style.Display == DisplayNone {
			zeroOutLayoutRecursively(child)
			continue
		}
		child.resolveDimensions()
		if child.Style.PositionType == PositionTypeAbsolute {
			absoluteChildren = append(absoluteChildren, child)
			continue
		}
		computeFlexBasisForChild(node, child, availableInnerWidth, availableInnerHeight, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight, config)
	}

	var lines []*flexLine
	for start := 0; start < len(node.Children); {
		line := collectFlexLine(node, start, mainAxis, mainAxisParentSize, availableInnerMainDim, availableInnerWidth)
		lines = append(lines, line)
		start = line.endOfLineIndex

		availableInnerMainDim = resolveFlexibleLengths(node, line, mainAxis, crossAxis,
			availableInnerMainDim, availableInnerCrossDim, availableInnerWidth, availableInnerHeight,
			mainAxisParentSize, crossAxisParentSize, minInnerMainDim, maxInnerMainDim,
			mainMeasureMode, crossMeasureMode, performLayout, config)

		state := justifyMainAxis(node, line, mainAxis, crossAxis, mainMeasureMode, availableInnerMainDim, availableInnerCrossDim, availableInnerWidth, performLayout)
		line.mainDim = state.mainDim
		line.crossDim = state.crossDim
	}

	if mainMeasureMode == MeasureModeExactly {
		mainSize := availableWidth - node.marginForAxis(FlexDirectionRow, parentWidth)
		if !isRow(mainAxis) {
			mainSize = availableHeight - node.marginForAxis(FlexDirectionColumn, parentWidth)
		}
		node.Layout.measuredDimensions[dimensionOf(mainAxis)] = nodeSelfBound(node, mainAxis, mainSize, parentWidth, parentHeight)
	} else {
		maxLineMain := Fl(0)
		for _, l := range lines {
			maxLineMain = maxF(maxLineMain, l.mainDim)
		}
		node.Layout.measuredDimensions[dimensionOf(mainAxis)] = nodeSelfBound(node, mainAxis, maxLineMain, parentWidth, parentHeight)
	}

	if crossMeasureMode == MeasureModeExactly {
		crossSize := availableWidth - node.marginForAxis(FlexDirectionRow, parentWidth)
		if !isRow(crossAxis) {
			crossSize = availableHeight - node.marginForAxis(FlexDirectionColumn, parentWidth)
		}
		node.Layout.measuredDimensions[dimensionOf(crossAxis)] = nodeSelfBound(node, crossAxis, crossSize, parentWidth, parentHeight)
	} else {
		gap := resolveValue(node.Style.gapForCrossAxis(mainAxis), availableInnerCrossDim)
		if IsUndefined(gap) {
			gap = 0
		}
		totalCross := Fl(0)
		for _, l := range lines {
			totalCross += l.crossDim
		}
		totalCross += gap * Fl(maxIntArg(len(lines)-1, 0))
		node.Layout.measuredDimensions[dimensionOf(crossAxis)] = nodeSelfBound(node, crossAxis, totalCross, parentWidth, parentHeight)
	}

	if performLayout {
		alignLines(node, lines, mainAxis, crossAxis, crossMeasureMode, availableInnerCrossDim, availableInnerWidth, availableInnerHeight, mainAxisParentSize, crossAxisParentSize, performLayout, config)

		for _, child := range absoluteChildren {
			layoutAbsoluteChild(node, child, mainAxis, crossAxis, availableInnerWidth, availableInnerHeight, config)
		}

		parentMainSize := node.Layout.measuredDimensions[dimensionOf(mainAxis)]
		parentCrossSize := node.Layout.measuredDimensions[dimensionOf(crossAxis)]
		for _, child := range node.Children {
			if child.Style.Display == DisplayNone {
				continue
			}
			completePositionRectangle(child, mainAxis, crossAxis, parentMainSize, parentCrossSize, availableInnerWidth)
		}
	}
}

// layoutNodeInternal is the cache-aware recursive entry point every
// sizing call goes through.
func layoutNodeInternal(
	node *Node,
	availableWidth, availableHeight Fl,
	parentDirection Direction,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight Fl,
	performLayout bool,
	reason string,
	config *Config,
) bool {
	layout := &node.Layout

	needToVisitNode := (node.IsDirty && layout.generationCount != currentGenerationCount) ||
		layout.lastParentDirection != parentDirection

	if needToVisitNode {
		layout.resetCache()
	}

	var cached *CachedMeasurement
	if node.Measure != nil {
		c := layout.cachedLayout
		if c.WidthMeasureMode != MeasureMode(255) || c.HeightMeasureMode != MeasureMode(255) {
			marginRow := node.marginForAxis(FlexDirectionRow, parentWidth)
			marginColumn := node.marginForAxis(FlexDirectionColumn, parentWidth)
			if nodeCanUseCachedMeasurement(widthMeasureMode, availableWidth, heightMeasureMode, availableHeight,
				c.WidthMeasureMode, c.AvailableWidth, c.HeightMeasureMode, c.AvailableHeight,
				c.ComputedWidth, c.ComputedHeight, marginRow, marginColumn, config.PointScaleFactor) {
				cached = &c
			}
		}
		if cached == nil {
			for i := 0; i < layout.nextCachedMeasurementsIndex && i < maxCachedMeasurements; i++ {
				c := layout.cachedMeasurements[i]
				marginRow := node.marginForAxis(FlexDirectionRow, parentWidth)
				marginColumn := node.marginForAxis(FlexDirectionColumn, parentWidth)
				if nodeCanUseCachedMeasurement(widthMeasureMode, availableWidth, heightMeasureMode, availableHeight,
					c.WidthMeasureMode, c.AvailableWidth, c.HeightMeasureMode, c.AvailableHeight,
					c.ComputedWidth, c.ComputedHeight, marginRow, marginColumn, config.PointScaleFactor) {
					cached = &c
					break
				}
			}
		}
	} else if performLayout {
		c := layout.cachedLayout
		if FloatsEqual(c.AvailableWidth, availableWidth) && FloatsEqual(c.AvailableHeight, availableHeight) &&
			c.WidthMeasureMode == widthMeasureMode && c.HeightMeasureMode == heightMeasureMode {
			cached = &c
		}
	} else {
		for i := 0; i < layout.nextCachedMeasurementsIndex && i < maxCachedMeasurements; i++ {
			c := layout.cachedMeasurements[i]
			if FloatsEqual(c.AvailableWidth, availableWidth) && FloatsEqual(c.AvailableHeight, availableHeight) &&
				c.WidthMeasureMode == widthMeasureMode && c.HeightMeasureMode == heightMeasureMode {
				cached = &c
				break
			}
		}
	}

	if !needToVisitNode && cached != nil {
		layout.measuredDimensions[DimensionWidth] = cached.ComputedWidth
		layout.measuredDimensions[DimensionHeight] = cached.ComputedHeight
	} else {
		layoutNodeImpl(node, availableWidth, availableHeight, parentDirection, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight, performLayout, config)
		layout.lastParentDirection = parentDirection

		if cached == nil {
			result := CachedMeasurement{
				AvailableWidth: availableWidth, AvailableHeight: availableHeight,
				WidthMeasureMode: widthMeasureMode, HeightMeasureMode: heightMeasureMode,
				ComputedWidth: layout.measuredDimensions[DimensionWidth], ComputedHeight: layout.measuredDimensions[DimensionHeight],
			}
			if performLayout {
				layout.cachedLayout = result
			} else {
				idx := layout.nextCachedMeasurementsIndex
				if idx >= maxCachedMeasurements {
					idx = 0
				}
				layout.cachedMeasurements[idx] = result
				layout.nextCachedMeasurementsIndex = idx + 1
			}
		}
	}

	if performLayout {
		node.Layout.Dimensions = node.Layout.measuredDimensions
		node.Layout.hasNewLayout = true
		node.IsDirty = false
	}

	layout.generationCount = currentGenerationCount
	_ = reason
	return needToVisitNode || cached == nil
}

// CalculateLayout is the top-level entry point. It mutates root and
// every descendant's Layout field in place.
func CalculateLayout(root *Node, parentWidth, parentHeight Fl, parentDirection Direction, config *Config) {
	if config == nil {
		config = root.Config
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.PointScaleFactor < 0 {
		config.fatalf("PointScaleFactor must not be negative")
	}

	bumpGeneration()
	root.Layout.lastParentDirection = Direction(255)
	root.resolveDimensions()

	width, widthMeasureMode := rootAxisSize(root, FlexDirectionRow, parentWidth)
	height, heightMeasureMode := rootAxisSize(root, FlexDirectionColumn, parentHeight)

	if layoutNodeInternal(root, width, height, parentDirection, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight, true, "initial", config) {
		setPosition(root, root.Layout.Direction, parentWidth, parentHeight, parentWidth)
		if config.PointScaleFactor > 0 {
			roundToPixelGrid(root, config.PointScaleFactor, 0, 0)
		}
	}

	if config.ShouldDiffLayoutWithoutLegacyStretchBehaviour && config.UseLegacyStretchBehaviour &&
		root.usedLegacyStretchBehaviourInSubtree() {
		clone := root.deepClone()
		clone.markDirtyRecursively()
		altConfig := *config
		altConfig.UseLegacyStretchBehaviour = false
		CalculateLayout(clone, parentWidth, parentHeight, parentDirection, &altConfig)
		root.Layout.LegacyStretchBehaviourAffectsLayout = !layoutTreesEqual(root, clone)
	}
}

// layoutTreesEqual recursively compares two nodes' observable layout
// output -- position, dimensions, direction, and child count -- without
// looking at either tree's internal measurement cache.
func layoutTreesEqual(a, b *Node) bool {
	if len(a.Children) != len(b.Children) {
		return false
	}
	if a.Layout.Position != b.Layout.Position || a.Layout.Dimensions != b.Layout.Dimensions ||
		a.Layout.Direction != b.Layout.Direction {
		return false
	}
	for i := range a.Children {
		if !layoutTreesEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// rootAxisSize resolves a root node's own available size and measure
// mode along one axis: a definite style dimension pins it Exactly, a
// max dimension bounds it AtMost, otherwise it falls back to whatever
// size the caller supplied.
func rootAxisSize(root *Node, axisDirection FlexDirection, parentSize Fl) (Fl, MeasureMode) {
	d := dimensionOf(axisDirection)
	if root.isStyleDimDefined(axisDirection, parentSize) {
		v := resolveValue(root.resolvedDimensions[d], parentSize) + root.marginForAxis(axisDirection, parentSize)
		return v, MeasureModeExactly
	}
	maxv := resolveValue(root.Style.MaxDimensions[d], parentSize)
	if !IsUndefined(maxv) && maxv >= 0 {
		return maxv, MeasureModeAtMost
	}
	if !IsUndefined(parentSize) {
		return parentSize, MeasureModeExactly
	}
	return Undefined, MeasureModeUndefined
}
