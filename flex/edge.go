package flex

// Edges is the 9-slot array backing Style.Margin/Position/Padding/Border,
// indexed by Edge.
type Edges [edgeCount]Value

func defaultEdges(v Value) Edges {
	var e Edges
	for i := range e {
		e[i] = v
	}
	return e
}

// computedEdgeValue implements the shorthand-fallback lookup for edge
// values: an explicit edge wins; failing that the vertical/horizontal
// shorthand; failing that "all"; failing that the caller's default. The
// start/end slots are looked at by the caller (via leadingEdgeValue /
// trailingEdgeValue below) before falling back to the physical edge, so
// this helper only ever receives a physical Edge.
func computedEdgeValue(edges Edges, edge Edge, defaultValue Value) Value {
	if edges[edge].Unit != UnitUndefined {
		return edges[edge]
	}
	if edge == EdgeTop || edge == EdgeBottom {
		if edges[EdgeVertical].Unit != UnitUndefined {
			return edges[EdgeVertical]
		}
	} else if edge == EdgeLeft || edge == EdgeRight {
		if edges[EdgeHorizontal].Unit != UnitUndefined {
			return edges[EdgeHorizontal]
		}
	}
	if edges[EdgeAll].Unit != UnitUndefined {
		return edges[EdgeAll]
	}
	return defaultValue
}

// leadingEdgeValue resolves the physical edge that leads an axis (left,
// right, top or bottom), preferring the bidi-aware start slot when the
// axis is horizontal, start is set and that edge is the start side
// (left under LTR, right under RTL).
func leadingEdgeValue(edges Edges, mainAxis FlexDirection, direction Direction, physical Edge) Value {
	if isRow(mainAxis) && edges[EdgeStart].Unit != UnitUndefined {
		if (direction != DirectionRTL && physical == EdgeLeft) || (direction == DirectionRTL && physical == EdgeRight) {
			return edges[EdgeStart]
		}
	}
	return computedEdgeValue(edges, physical, ValueUndefined())
}

// trailingEdgeValue mirrors leadingEdgeValue for the end slot.
func trailingEdgeValue(edges Edges, mainAxis FlexDirection, direction Direction, physical Edge) Value {
	if isRow(mainAxis) && edges[EdgeEnd].Unit != UnitUndefined {
		if (direction != DirectionRTL && physical == EdgeRight) || (direction == DirectionRTL && physical == EdgeLeft) {
			return edges[EdgeEnd]
		}
	}
	return computedEdgeValue(edges, physical, ValueUndefined())
}
