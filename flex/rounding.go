package flex

// roundToPixelGrid recursively snaps every node's position and dimensions
// onto the device pixel grid. absoluteLeft/absoluteTop
// carry the node's cumulative offset from the root so that each edge is
// rounded in absolute space and then re-expressed relative to its parent,
// which is what keeps adjacent boxes seamless under rounding.
func roundToPixelGrid(node *Node, pointScaleFactor Fl, absoluteLeft, absoluteTop Fl) {
	nodeLeft := node.Layout.Position[positionIndex(EdgeLeft)]
	nodeTop := node.Layout.Position[positionIndex(EdgeTop)]

	nodeWidth := node.Layout.measuredDimensions[DimensionWidth]
	nodeHeight := node.Layout.measuredDimensions[DimensionHeight]

	absoluteNodeLeft := absoluteLeft + nodeLeft
	absoluteNodeTop := absoluteTop + nodeTop

	absoluteNodeRight := absoluteNodeLeft + nodeWidth
	absoluteNodeBottom := absoluteNodeTop + nodeHeight

	textRounding := node.NodeType == NodeTypeText

	roundedLeft := roundValueToPixelGrid(absoluteNodeLeft, pointScaleFactor, false, textRounding)
	roundedTop := roundValueToPixelGrid(absoluteNodeTop, pointScaleFactor, false, textRounding)

	widthFrac := hasFractionalWidth(node)
	heightFrac := hasFractionalHeight(node)

	roundedRight := roundValueToPixelGrid(absoluteNodeRight, pointScaleFactor, textRounding && widthFrac, textRounding && !widthFrac)
	roundedBottom := roundValueToPixelGrid(absoluteNodeBottom, pointScaleFactor, textRounding && heightFrac, textRounding && !heightFrac)

	node.Layout.Position[positionIndex(EdgeLeft)] = roundedLeft - roundValueToPixelGrid(absoluteLeft, pointScaleFactor, false, false)
	node.Layout.Position[positionIndex(EdgeTop)] = roundedTop - roundValueToPixelGrid(absoluteTop, pointScaleFactor, false, false)

	node.Layout.measuredDimensions[DimensionWidth] = roundedRight - roundedLeft
	node.Layout.measuredDimensions[DimensionHeight] = roundedBottom - roundedTop
	node.Layout.Dimensions = node.Layout.measuredDimensions

	for _, child := range node.Children {
		roundToPixelGrid(child, pointScaleFactor, absoluteNodeLeft, absoluteNodeTop)
	}
}

func hasFractionalWidth(node *Node) bool {
	w := node.Layout.measuredDimensions[DimensionWidth]
	return !IsUndefined(w) && (w-floorFl(w)) > 0.0001
}

func hasFractionalHeight(node *Node) bool {
	h := node.Layout.measuredDimensions[DimensionHeight]
	return !IsUndefined(h) && (h-floorFl(h)) > 0.0001
}
