package flex

import (
	"testing"

	tu "github.com/benoitkugler/flexlayout/utils/testutils"
)

// A row container with no width of its own but a MaxWidth lays out its
// main axis in at-most mode and, having no flex-grow of its own, takes
// the cannot-flex branch: the modern behaviour pins its available main
// size to its content, while the legacy behaviour keeps the full MaxWidth
// bound for its children to grow into. The child returned here does not
// grow; tests that need a difference set its FlexGrow.
func legacyStretchDiffTree(config *Config) (*Node, *Node) {
	root := NewNode(config)
	root.Style.FlexDirection = FlexDirectionRow
	root.Style.JustifyContent = JustifyCenter
	root.Style.MaxDimensions[DimensionWidth] = ValuePoint(200)
	root.Style.Dimensions[DimensionHeight] = ValuePoint(50)

	child := fixedChild(50, 50)
	root.InsertChild(child, 0)
	return root, child
}

func TestLegacyStretchBehaviourDiffDetected(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	config := DefaultConfig()
	config.UseLegacyStretchBehaviour = true
	config.ShouldDiffLayoutWithoutLegacyStretchBehaviour = true

	root, child := legacyStretchDiffTree(config)
	child.Style.FlexGrow = ValuePoint(1)
	CalculateLayout(root, Undefined, Undefined, DirectionLTR, config)

	tu.AssertEqual(t, root.Layout.LegacyStretchBehaviourAffectsLayout, true)
	// the recorded layout is still the legacy one: the growing child
	// fills the full 200 MaxWidth bound rather than staying at its
	// content width of 50.
	assertBox(t, root, 0, 0, 200, 50)
	assertBox(t, child, 0, 0, 200, 50)
}

// The same cannot-flex situation with a non-growing child and the
// default flex-start justification: nothing expands into the MaxWidth
// bound, so legacy and modern behaviour produce identical layouts and
// the diff must report no difference.
func TestLegacyStretchBehaviourDiffNotDetectedWhenNoJustification(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	config := DefaultConfig()
	config.UseLegacyStretchBehaviour = true
	config.ShouldDiffLayoutWithoutLegacyStretchBehaviour = true

	root, _ := legacyStretchDiffTree(config)
	root.Style.JustifyContent = JustifyFlexStart
	CalculateLayout(root, Undefined, Undefined, DirectionLTR, config)

	tu.AssertEqual(t, root.Layout.LegacyStretchBehaviourAffectsLayout, false)
}

// Without ShouldDiffLayoutWithoutLegacyStretchBehaviour, no re-run
// happens and the flag stays at its zero value even though the tree
// exercises the legacy branch.
func TestLegacyStretchBehaviourDiffSkippedWhenNotRequested(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	config := DefaultConfig()
	config.UseLegacyStretchBehaviour = true

	root, _ := legacyStretchDiffTree(config)
	CalculateLayout(root, Undefined, Undefined, DirectionLTR, config)

	tu.AssertEqual(t, root.Layout.LegacyStretchBehaviourAffectsLayout, false)
}
