package flex

import "testing"

func crossSizeChild() (*Node, *Node) {
	parent := NewNode(nil)
	parent.Style.FlexDirection = FlexDirectionRow
	parent.Layout.Direction = DirectionLTR
	child := NewNode(nil)
	child.Layout.Direction = DirectionLTR
	parent.InsertChild(child, 0)
	return parent, child
}

func TestComputeChildCrossSizeAspectRatio(t *testing.T) {
	parent, child := crossSizeChild()
	child.Style.AspectRatio = 2

	cross, mode, updates := computeChildCrossSize(parent, child, FlexDirectionRow, FlexDirectionColumn, 40, Undefined, Undefined, Undefined, Undefined, MeasureModeUndefined)

	assertFl(t, cross, 20)
	if mode != MeasureModeExactly {
		t.Fatalf("expected exactly mode, got %v", mode)
	}
	if updates {
		t.Fatal("aspect ratio branch should not report a stretch-only update")
	}
}

func TestComputeChildCrossSizeStretch(t *testing.T) {
	parent, child := crossSizeChild()
	parent.Style.AlignItems = AlignStretch

	cross, mode, updates := computeChildCrossSize(parent, child, FlexDirectionRow, FlexDirectionColumn, 40, 80, 200, 80, 80, MeasureModeExactly)

	assertFl(t, cross, 80)
	if mode != MeasureModeExactly {
		t.Fatalf("expected exactly mode, got %v", mode)
	}
	if !updates {
		t.Fatal("expected the stretch branch to report an update")
	}
}

func TestComputeChildCrossSizeDefinedDimension(t *testing.T) {
	parent, child := crossSizeChild()
	child.Style.Dimensions[DimensionHeight] = ValuePoint(30)
	child.resolveDimensions()

	cross, mode, _ := computeChildCrossSize(parent, child, FlexDirectionRow, FlexDirectionColumn, 40, 80, 200, 80, 80, MeasureModeExactly)

	assertFl(t, cross, 30)
	if mode != MeasureModeExactly {
		t.Fatalf("expected exactly mode, got %v", mode)
	}
}

func TestComputeChildCrossSizeFallsBackToAtMost(t *testing.T) {
	parent, child := crossSizeChild()

	cross, mode, _ := computeChildCrossSize(parent, child, FlexDirectionRow, FlexDirectionColumn, 40, 80, 200, 80, 80, MeasureModeAtMost)

	assertFl(t, cross, 80)
	if mode != MeasureModeAtMost {
		t.Fatalf("expected at-most mode, got %v", mode)
	}
}

func assertFl(t *testing.T, got, exp Fl) {
	t.Helper()
	if !FloatsEqual(got, exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}
