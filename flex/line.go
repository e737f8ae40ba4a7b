package flex

// flexLine is one row (or column, for a column main axis) of flex
// items, built by collectFlexLine and then filled in by the flexible
// length resolver, the justifier and the aligner.
type flexLine struct {
	startOfLineIndex int
	endOfLineIndex   int // exclusive

	itemsInLine []*Node

	sizeConsumedOnCurrentLine Fl
	itemsOnLine               int

	totalFlexGrowFactors         Fl
	totalFlexShrinkScaledFactors Fl

	mainDim  Fl
	crossDim Fl

	maxAscent  Fl
	maxDescent Fl
}

// collectFlexLine walks node's children starting at startIndex,
// breaking a new line whenever wrapping is enabled and the next in-flow
// child would overflow availableInnerMainDim. It returns the completed
// line; line.endOfLineIndex is the index to resume from. mainAxisParentSize
// is the size a child's percentage min/max main dimension resolves
// against, distinct from availableInnerMainDim whenever node has
// non-trivial padding or border.
func collectFlexLine(node *Node, startIndex int, mainAxis FlexDirection, mainAxisParentSize, availableInnerMainDim, availableInnerWidth Fl) *flexLine {
	line := &flexLine{startOfLineIndex: startIndex}

	gap := resolveValue(node.Style.gapForAxis(mainAxis), availableInnerMainDim)
	if IsUndefined(gap) {
		gap = 0
	}

	// The source computes a second, seemingly-identical running total
	// here ("sizeConsumedOnCurrentLineIncludingMinConstraint") alongside
	// sizeConsumedOnCurrentLine; per the open design question this
	// implementation collapses them into the one field below rather than
	// guess at an intended divergence.
	i := startIndex
	for ; i < len(node.Children); i++ {
		child := node.Children[i]
		if child.Style.Display == DisplayNone {
			continue
		}
		if child.Style.PositionType == PositionTypeAbsolute {
			line.itemsInLine = append(line.itemsInLine, child)
			continue
		}

		child.resolveDimensions()
		flexBasis := child.Layout.computedFlexBasis
		flexBasisWithMinMax := child.boundAxisWithinMinAndMax(mainAxis, flexBasis, mainAxisParentSize)

		itemGap := Fl(0)
		if line.itemsOnLine > 0 {
			itemGap = gap
		}

		if node.Style.FlexWrap != WrapNoWrap && line.itemsOnLine > 0 &&
			!IsUndefined(availableInnerMainDim) &&
			line.sizeConsumedOnCurrentLine+flexBasisWithMinMax+child.marginForAxis(mainAxis, availableInnerWidth)+itemGap > availableInnerMainDim {
			break
		}

		line.sizeConsumedOnCurrentLine += flexBasisWithMinMax + child.marginForAxis(mainAxis, availableInnerWidth) + itemGap
		line.itemsOnLine++

		if child.Style.isFlexible(node.Config.UseWebDefaults) {
			line.totalFlexGrowFactors += child.Style.resolveFlexGrow()
			line.totalFlexShrinkScaledFactors += -child.Style.resolveFlexShrink(node.Config.UseWebDefaults) * flexBasis
		}

		line.itemsInLine = append(line.itemsInLine, child)
	}

	if line.totalFlexGrowFactors > 0 && line.totalFlexGrowFactors < 1 {
		line.totalFlexGrowFactors = 1
	}
	if line.totalFlexShrinkScaledFactors > 0 && line.totalFlexShrinkScaledFactors < 1 {
		line.totalFlexShrinkScaledFactors = 1
	}

	line.endOfLineIndex = i
	return line
}

