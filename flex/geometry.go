package flex

// This file gathers the small axis-aware accessors shared by every
// algorithmic component: leading/trailing margin, border and padding,
// bounding a size into a node's min/max, and the handful of "is this
// dimension definite" predicates used throughout flex-basis, line
// collection, resolution, justification and alignment.

func leadingValue(edges Edges, axisDirection FlexDirection, direction Direction) Value {
	return leadingEdgeValue(edges, axisDirection, direction, leadingEdge(axisDirection))
}

func trailingValue(edges Edges, axisDirection FlexDirection, direction Direction) Value {
	return trailingEdgeValue(edges, axisDirection, direction, trailingEdge(axisDirection))
}

func (n *Node) marginLeadingValue(axisDirection FlexDirection) Value {
	return leadingValue(n.Style.Margin, axisDirection, n.Layout.Direction)
}

func (n *Node) marginTrailingValue(axisDirection FlexDirection) Value {
	return trailingValue(n.Style.Margin, axisDirection, n.Layout.Direction)
}

// marginLeading/marginTrailing resolve against widthSize: CSS resolves
// margin percentages against the containing block's width regardless of
// axis.
func (n *Node) marginLeading(axisDirection FlexDirection, widthSize Fl) Fl {
	return resolveValueMargin(n.marginLeadingValue(axisDirection), widthSize)
}

func (n *Node) marginTrailing(axisDirection FlexDirection, widthSize Fl) Fl {
	return resolveValueMargin(n.marginTrailingValue(axisDirection), widthSize)
}

func (n *Node) marginForAxis(axisDirection FlexDirection, widthSize Fl) Fl {
	return n.marginLeading(axisDirection, widthSize) + n.marginTrailing(axisDirection, widthSize)
}

func (n *Node) paddingLeading(axisDirection FlexDirection, widthSize Fl) Fl {
	v := resolveValue(leadingValue(n.Style.Padding, axisDirection, n.Layout.Direction), widthSize)
	return maxF(v, 0)
}

func (n *Node) paddingTrailing(axisDirection FlexDirection, widthSize Fl) Fl {
	v := resolveValue(trailingValue(n.Style.Padding, axisDirection, n.Layout.Direction), widthSize)
	return maxF(v, 0)
}

func (n *Node) borderLeading(axisDirection FlexDirection) Fl {
	v := resolveValue(leadingValue(n.Style.Border, axisDirection, n.Layout.Direction), 0)
	return maxF(v, 0)
}

func (n *Node) borderTrailing(axisDirection FlexDirection) Fl {
	v := resolveValue(trailingValue(n.Style.Border, axisDirection, n.Layout.Direction), 0)
	return maxF(v, 0)
}

func (n *Node) paddingAndBorderLeading(axisDirection FlexDirection, widthSize Fl) Fl {
	return n.paddingLeading(axisDirection, widthSize) + n.borderLeading(axisDirection)
}

func (n *Node) paddingAndBorderTrailing(axisDirection FlexDirection, widthSize Fl) Fl {
	return n.paddingTrailing(axisDirection, widthSize) + n.borderTrailing(axisDirection)
}

func (n *Node) paddingAndBorderForAxis(axisDirection FlexDirection, widthSize Fl) Fl {
	return n.paddingAndBorderLeading(axisDirection, widthSize) + n.paddingAndBorderTrailing(axisDirection, widthSize)
}

// dimWithMargin returns the child's measured outer size (dimension plus
// margin) along axisDirection, used pervasively by the justifier and
// aligner.
func (n *Node) dimWithMargin(axisDirection FlexDirection, widthSize Fl) Fl {
	return n.Layout.measuredDimensions[dimensionOf(axisDirection)] + n.marginForAxis(axisDirection, widthSize)
}

// isStyleDimDefined reports whether the style's own dimension along
// axisDirection resolves to a finite non-negative number against
// parentSize.
func (n *Node) isStyleDimDefined(axisDirection FlexDirection, parentSize Fl) bool {
	v := n.resolvedDimensions[dimensionOf(axisDirection)]
	resolved := resolveValue(v, parentSize)
	return !IsUndefined(resolved) && resolved >= 0
}

func (n *Node) isLayoutDimDefined(axisDirection FlexDirection) bool {
	v := n.Layout.measuredDimensions[dimensionOf(axisDirection)]
	return !IsUndefined(v) && v >= 0
}

// boundAxisWithinMinAndMax clamps value into the node's resolved
// min/max style bounds for axisDirection.
func (n *Node) boundAxisWithinMinAndMax(axisDirection FlexDirection, value, axisSize Fl) Fl {
	d := dimensionOf(axisDirection)
	minv := resolveValue(n.Style.MinDimensions[d], axisSize)
	maxv := resolveValue(n.Style.MaxDimensions[d], axisSize)
	bound := value
	if !IsUndefined(maxv) && maxv >= 0 && bound > maxv {
		bound = maxv
	}
	if !IsUndefined(minv) && minv >= 0 && bound < minv {
		bound = minv
	}
	return bound
}

// boundAxis additionally floors at the node's own padding+border on that
// axis (a node can never be smaller than its own box decorations).
func (n *Node) boundAxis(axisDirection FlexDirection, value, axisSize, widthSize Fl) Fl {
	return maxF(n.boundAxisWithinMinAndMax(axisDirection, value, axisSize), n.paddingAndBorderForAxis(axisDirection, widthSize))
}

// resolveEdgeSet fills the observable 6-slot (left, top, right, bottom,
// start, end) output used by Layout.Margin/Border/Padding, the last two
// with a bidi-resolved accessor that swaps start/end under RTL.
// marginLike is true for margins, where auto resolves to 0; it is false
// for border and padding, whose four physical values are floored at 0,
// so an unset or auto edge also comes out as 0.
func resolveEdgeSet(edges Edges, direction Direction, widthSize Fl, marginLike bool) [6]Fl {
	resolve := resolveValue
	if marginLike {
		resolve = resolveValueMargin
	}
	left := resolve(leadingValue(edges, FlexDirectionRow, direction), widthSize)
	right := resolve(trailingValue(edges, FlexDirectionRow, direction), widthSize)
	top := resolve(leadingValue(edges, FlexDirectionColumn, direction), widthSize)
	bottom := resolve(trailingValue(edges, FlexDirectionColumn, direction), widthSize)
	if !marginLike {
		left, right, top, bottom = maxF(left, 0), maxF(right, 0), maxF(top, 0), maxF(bottom, 0)
	}
	start, end := left, right
	if direction == DirectionRTL {
		start, end = right, left
	}
	return [6]Fl{left, top, right, bottom, start, end}
}

func maxF(a, b Fl) Fl {
	if a > b {
		return a
	}
	return b
}

func minF(a, b Fl) Fl {
	if a < b {
		return a
	}
	return b
}

// flooredFlexBasis floors basis to the child's own padding+border on
// mainAxis: a computed flex basis can never be smaller than the box
// decorations it must contain.
func (n *Node) flooredFlexBasis(mainAxis FlexDirection, basis, widthSize Fl) Fl {
	return maxF(basis, n.paddingAndBorderForAxis(mainAxis, widthSize))
}
