package flex

import (
	"testing"

	tu "github.com/benoitkugler/flexlayout/utils/testutils"
)

func TestInsertRemoveChild(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	root := NewNode(nil)
	a := NewNode(nil)
	b := NewNode(nil)
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)

	tu.AssertEqual(t, len(root.Children), 2)
	tu.AssertEqual(t, a.Parent, root)
	tu.AssertEqual(t, root.IsDirty, true)

	root.IsDirty = false
	root.RemoveChild(a)
	tu.AssertEqual(t, len(root.Children), 1)
	tu.AssertEqual(t, root.Children[0], b)
	tu.AssertEqual(t, a.Parent == nil, true)
	tu.AssertEqual(t, root.IsDirty, true)
}

func TestInsertChildIntoMeasureNodeIsFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic inserting into a node with a measure function")
		}
	}()
	defer tu.CaptureLogs().AssertLogs(t, 1)

	root := NewNode(nil)
	root.Measure = func(n *Node, w Fl, wm MeasureMode, h Fl, hm MeasureMode) (Fl, Fl) { return 0, 0 }
	root.InsertChild(NewNode(nil), 0)
}

func TestCloneCopyOnWrite(t *testing.T) {
	root := NewNode(nil)
	child := NewNode(nil)
	root.InsertChild(child, 0)

	clone := root.Clone()
	tu.AssertEqual(t, clone.Children[0], child) // still shared

	clone.InsertChild(NewNode(nil), 1)
	tu.AssertEqual(t, len(clone.Children), 2)
	tu.AssertEqual(t, len(root.Children), 1) // original untouched

	tu.AssertEqual(t, clone.Children[0] != child, true) // deep-cloned on first mutation
	tu.AssertEqual(t, clone.Children[0].Parent, clone)
}

func TestClonedCallbackFires(t *testing.T) {
	var calls int
	config := DefaultConfig()
	config.Cloned = func(oldChild, newChild, parent *Node, childIndex int) { calls++ }

	root := NewNode(config)
	root.InsertChild(NewNode(config), 0)

	clone := root.Clone()
	clone.InsertChild(NewNode(config), 1)

	tu.AssertEqual(t, calls, 1)
}

func TestMarkDirtyPropagatesToRoot(t *testing.T) {
	var dirtied []*Node
	root := NewNode(nil)
	child := NewNode(nil)
	child.Dirtied = func(n *Node) { dirtied = append(dirtied, n) }
	root.InsertChild(child, 0)

	root.IsDirty, child.IsDirty = false, false
	child.MarkDirty()

	tu.AssertEqual(t, child.IsDirty, true)
	tu.AssertEqual(t, root.IsDirty, true)
	tu.AssertEqual(t, len(dirtied), 1)

	// a second call while already dirty must not re-fire the callback
	child.MarkDirty()
	tu.AssertEqual(t, len(dirtied), 1)
}

func TestResetFatalWithChildren(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic resetting a node with children")
		}
	}()
	defer tu.CaptureLogs().AssertLogs(t, 1)

	root := NewNode(nil)
	root.InsertChild(NewNode(nil), 0)
	root.Reset()
}

func TestResolveDirection(t *testing.T) {
	root := NewNode(nil)
	root.Style.Direction = DirectionRTL
	child := NewNode(nil)
	root.InsertChild(child, 0)

	tu.AssertEqual(t, root.resolveDirection(), DirectionRTL)
	tu.AssertEqual(t, child.resolveDirection(), DirectionRTL)

	child.Style.Direction = DirectionLTR
	tu.AssertEqual(t, child.resolveDirection(), DirectionLTR)
}
