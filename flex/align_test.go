package flex

import "testing"

func TestAlignItemsInLineFlexEnd(t *testing.T) {
	root := NewNode(nil)
	root.Layout.Direction = DirectionLTR
	root.Style.FlexDirection = FlexDirectionRow
	root.Style.AlignItems = AlignFlexEnd

	child := fixedChild(20, 30)
	child.Layout.measuredDimensions = [dimensionCount]Fl{20, 30}
	root.InsertChild(child, 0)

	line := &flexLine{itemsInLine: []*Node{child}}

	alignItemsInLine(root, line, FlexDirectionRow, FlexDirectionColumn, 0, 80, 200, 80, 200, nil)

	assertFl(t, child.Layout.Position[positionIndex(EdgeTop)], 50)
}

func TestAlignItemsInLineCenter(t *testing.T) {
	root := NewNode(nil)
	root.Layout.Direction = DirectionLTR
	root.Style.FlexDirection = FlexDirectionRow
	root.Style.AlignItems = AlignCenter

	child := fixedChild(20, 30)
	child.Layout.measuredDimensions = [dimensionCount]Fl{20, 30}
	root.InsertChild(child, 0)

	line := &flexLine{itemsInLine: []*Node{child}}

	alignItemsInLine(root, line, FlexDirectionRow, FlexDirectionColumn, 10, 80, 200, 80, 200, nil)

	assertFl(t, child.Layout.Position[positionIndex(EdgeTop)], 10+25)
}

// AlignStretch content spreads a container's leftover cross space evenly
// across its lines: two 20-tall lines inside a 100-tall container each
// gain 30 of the 60 remaining, so the second line's items land at 50.
func TestAlignLinesStretchDistributesRemainingSpace(t *testing.T) {
	root := NewNode(nil)
	root.Layout.Direction = DirectionLTR
	root.Style.FlexDirection = FlexDirectionRow
	root.Style.AlignItems = AlignFlexStart
	root.Style.AlignContent = AlignStretch

	a := fixedChild(10, 20)
	b := fixedChild(10, 20)
	a.Layout.measuredDimensions = [dimensionCount]Fl{10, 20}
	b.Layout.measuredDimensions = [dimensionCount]Fl{10, 20}
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)

	line1 := &flexLine{itemsInLine: []*Node{a}, crossDim: 20}
	line2 := &flexLine{itemsInLine: []*Node{b}, crossDim: 20}

	alignLines(root, []*flexLine{line1, line2}, FlexDirectionRow, FlexDirectionColumn, MeasureModeExactly, 100, 200, 100, 200, 100, true, nil)

	assertFl(t, a.Layout.Position[positionIndex(EdgeTop)], 0)
	assertFl(t, b.Layout.Position[positionIndex(EdgeTop)], 50)
}
