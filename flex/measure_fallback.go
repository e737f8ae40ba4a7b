package flex

// nodeSelfBound clamps a node's own computed size against its min/max
// style bounds, using the parent dimension matching axisDirection for
// percentage resolution and parentWidth for the padding/border floor
// (CSS resolves padding percentages against width on both axes).
func nodeSelfBound(node *Node, axisDirection FlexDirection, value, parentWidth, parentHeight Fl) Fl {
	axisSize := parentWidth
	if !isRow(axisDirection) {
		axisSize = parentHeight
	}
	return node.boundAxis(axisDirection, value, axisSize, parentWidth)
}

// nodeWithMeasureFuncSetMeasuredDimensions delegates to the host-supplied
// MeasureFunc, the sole external sizing collaborator for a leaf.
func nodeWithMeasureFuncSetMeasuredDimensions(node *Node, availableWidth, availableHeight Fl, widthMode, heightMode MeasureMode, parentWidth, parentHeight Fl, config *Config) {
	paddingAndBorderWidth := node.paddingAndBorderForAxis(FlexDirectionRow, parentWidth)
	paddingAndBorderHeight := node.paddingAndBorderForAxis(FlexDirectionColumn, parentWidth)

	innerWidth := Undefined
	if !IsUndefined(availableWidth) {
		innerWidth = maxF(availableWidth-node.marginForAxis(FlexDirectionRow, parentWidth)-paddingAndBorderWidth, 0)
	}
	innerHeight := Undefined
	if !IsUndefined(availableHeight) {
		innerHeight = maxF(availableHeight-node.marginForAxis(FlexDirectionColumn, parentWidth)-paddingAndBorderHeight, 0)
	}

	if widthMode == MeasureModeExactly {
		innerWidth = maxF(availableWidth-node.marginForAxis(FlexDirectionRow, parentWidth)-paddingAndBorderWidth, 0)
	}
	if heightMode == MeasureModeExactly {
		innerHeight = maxF(availableHeight-node.marginForAxis(FlexDirectionColumn, parentWidth)-paddingAndBorderHeight, 0)
	}

	// An axis pinned to Exactly is already fully determined by the
	// parent; only ask the callback for axes it still controls.
	measuredW, measuredH := innerWidth, innerHeight
	if widthMode != MeasureModeExactly || heightMode != MeasureModeExactly {
		mw, mh := node.Measure(node, innerWidth, widthMode, innerHeight, heightMode)
		if IsUndefined(mw) || IsUndefined(mh) {
			config.fatalf("measure callback returned an undefined size for node")
		}
		if widthMode != MeasureModeExactly {
			measuredW = mw
		}
		if heightMode != MeasureModeExactly {
			measuredH = mh
		}
	}

	node.Layout.measuredDimensions[DimensionWidth] = nodeSelfBound(node, FlexDirectionRow, measuredW+paddingAndBorderWidth, parentWidth, parentHeight)
	node.Layout.measuredDimensions[DimensionHeight] = nodeSelfBound(node, FlexDirectionColumn, measuredH+paddingAndBorderHeight, parentWidth, parentHeight)
}

// nodeEmptyContainerSetMeasuredDimensions sizes a childless, measure-less
// node from its own style and the modes it was asked to satisfy.
func nodeEmptyContainerSetMeasuredDimensions(node *Node, availableWidth, availableHeight Fl, widthMode, heightMode MeasureMode, parentWidth, parentHeight Fl) {
	paddingAndBorderWidth := node.paddingAndBorderForAxis(FlexDirectionRow, parentWidth)
	paddingAndBorderHeight := node.paddingAndBorderForAxis(FlexDirectionColumn, parentWidth)

	w := paddingAndBorderWidth
	switch widthMode {
	case MeasureModeExactly:
		w = availableWidth - node.marginForAxis(FlexDirectionRow, parentWidth)
	case MeasureModeAtMost:
		if !IsUndefined(availableWidth) {
			w = minF(availableWidth-node.marginForAxis(FlexDirectionRow, parentWidth), paddingAndBorderWidth)
		}
	}
	h := paddingAndBorderHeight
	switch heightMode {
	case MeasureModeExactly:
		h = availableHeight - node.marginForAxis(FlexDirectionColumn, parentWidth)
	case MeasureModeAtMost:
		if !IsUndefined(availableHeight) {
			h = minF(availableHeight-node.marginForAxis(FlexDirectionColumn, parentWidth), paddingAndBorderHeight)
		}
	}

	node.Layout.measuredDimensions[DimensionWidth] = nodeSelfBound(node, FlexDirectionRow, w, parentWidth, parentHeight)
	node.Layout.measuredDimensions[DimensionHeight] = nodeSelfBound(node, FlexDirectionColumn, h, parentWidth, parentHeight)
}

// zeroOutLayoutRecursively implements the display:none branch of line
// collection: a hidden subtree contributes nothing to its parent's
// layout and reports a zero box of its own.
func zeroOutLayoutRecursively(n *Node) {
	n.Layout.measuredDimensions = [dimensionCount]Fl{0, 0}
	n.Layout.Position = [4]Fl{}
	n.Layout.Margin = [6]Fl{}
	n.Layout.Border = [6]Fl{}
	n.Layout.Padding = [6]Fl{}
	n.Layout.computedFlexBasis = 0
	n.Layout.computedFlexBasisGeneration = currentGenerationCount
	n.Layout.HadOverflow = false
	n.Layout.hasNewLayout = true
	for _, c := range n.Children {
		zeroOutLayoutRecursively(c)
	}
}
