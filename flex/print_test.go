package flex

import (
	"strings"
	"testing"

	tu "github.com/benoitkugler/flexlayout/utils/testutils"
)

func TestNodeStringRendersTreeShape(t *testing.T) {
	root := NewNode(nil)
	root.Style.Dimensions[DimensionWidth] = ValuePoint(100)
	root.Style.Dimensions[DimensionHeight] = ValuePoint(50)
	child := fixedChild(20, 20)
	root.InsertChild(child, 0)

	CalculateLayout(root, Undefined, Undefined, DirectionLTR, nil)

	dump := NodeString(root)
	tu.AssertEqual(t, strings.Contains(dump, "<node"), true)
	tu.AssertEqual(t, strings.Contains(dump, "width: 100"), true)
	tu.AssertEqual(t, strings.Contains(dump, "</node>"), true)
	// one open tag for root, one for the child, and root's own closing
	// tag since it has children; the childless leaf never emits one.
	tu.AssertEqual(t, strings.Count(dump, "<node"), 2)
	tu.AssertEqual(t, strings.Count(dump, "</node>"), 1)
}

func TestNodeStringLeafHasNoClosingTag(t *testing.T) {
	leaf := fixedChild(10, 10)
	CalculateLayout(leaf, Undefined, Undefined, DirectionLTR, nil)

	dump := NodeString(leaf)
	tu.AssertEqual(t, strings.Contains(dump, "</node>"), false)
}
