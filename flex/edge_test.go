package flex

import (
	"testing"

	tu "github.com/benoitkugler/flexlayout/utils/testutils"
)

func TestComputedEdgeValueShorthand(t *testing.T) {
	edges := defaultEdges(ValueUndefined())
	edges[EdgeAll] = ValuePoint(4)
	tu.AssertEqual(t, computedEdgeValue(edges, EdgeLeft, ValueUndefined()), ValuePoint(4))

	edges[EdgeHorizontal] = ValuePoint(8)
	tu.AssertEqual(t, computedEdgeValue(edges, EdgeLeft, ValueUndefined()), ValuePoint(8))
	tu.AssertEqual(t, computedEdgeValue(edges, EdgeTop, ValueUndefined()), ValuePoint(4))

	edges[EdgeLeft] = ValuePoint(2)
	tu.AssertEqual(t, computedEdgeValue(edges, EdgeLeft, ValueUndefined()), ValuePoint(2))
}

func TestLeadingTrailingEdgeValueLTR(t *testing.T) {
	edges := defaultEdges(ValueUndefined())
	edges[EdgeStart] = ValuePoint(10)
	edges[EdgeEnd] = ValuePoint(20)

	tu.AssertEqual(t, leadingEdgeValue(edges, FlexDirectionRow, DirectionLTR, EdgeLeft), ValuePoint(10))
	tu.AssertEqual(t, trailingEdgeValue(edges, FlexDirectionRow, DirectionLTR, EdgeRight), ValuePoint(20))
}

func TestLeadingTrailingEdgeValueRTL(t *testing.T) {
	edges := defaultEdges(ValueUndefined())
	edges[EdgeStart] = ValuePoint(10)
	edges[EdgeEnd] = ValuePoint(20)

	tu.AssertEqual(t, leadingEdgeValue(edges, FlexDirectionRow, DirectionRTL, EdgeRight), ValuePoint(10))
	tu.AssertEqual(t, trailingEdgeValue(edges, FlexDirectionRow, DirectionRTL, EdgeLeft), ValuePoint(20))
}

func TestResolveEdgeSetMargin(t *testing.T) {
	edges := defaultEdges(ValueAuto())
	// start/end left unset so the physical left edge is the one looked up
	edges[EdgeStart] = ValueUndefined()
	edges[EdgeEnd] = ValueUndefined()
	edges[EdgeLeft] = ValuePoint(5)
	got := resolveEdgeSet(edges, DirectionLTR, 100, true)
	tu.AssertEqual(t, got[0], Fl(5))  // left
	tu.AssertEqual(t, got[1], Fl(0))  // top: auto -> 0
	tu.AssertEqual(t, got[4], Fl(5))  // start mirrors left under LTR
}
