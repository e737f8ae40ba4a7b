package flex

// MeasureFunc is the external measure callback contract: given
// content-box available sizes and modes, return a measured (width,
// height). Called only on nodes with no children. Returning NaN is a
// fatal precondition violation.
type MeasureFunc func(node *Node, width Fl, widthMode MeasureMode, height Fl, heightMode MeasureMode) (Fl, Fl)

// BaselineFunc returns an ascent in pixels for a node participating in
// baseline cross-axis alignment.
type BaselineFunc func(node *Node, width, height Fl) Fl

// DirtiedFunc is invoked exactly once per transition from clean to
// dirty.
type DirtiedFunc func(node *Node)

// Node is one element of the layout tree. Children are owned forward;
// Parent is a non-owning back-reference used both to resolve inherited
// direction and as the copy-on-write ownership signal: a node's
// children are shared, not owned, whenever their Parent field points at
// some other node.
type Node struct {
	Style  Style
	Layout Layout

	Parent   *Node
	Children []*Node

	Config *Config

	Measure  MeasureFunc
	Baseline BaselineFunc
	Dirtied  DirtiedFunc

	Context any

	lineIndex int

	IsDirty      bool
	NodeType     NodeType

	resolvedDimensions [dimensionCount]Value
}

// NewNode returns a standalone node with default style, ready to be
// attached via InsertChild.
func NewNode(config *Config) *Node {
	if config == nil {
		config = DefaultConfig()
	}
	return &Node{
		Style:              NewStyle(config.UseWebDefaults),
		Layout:             newLayout(),
		Config:             config,
		resolvedDimensions: [dimensionCount]Value{ValueUndefined(), ValueUndefined()},
	}
}

// InsertChild attaches child as the node's childIndex'th child. It is
// fatal to insert into a node with a measure function, and fatal to
// insert a child that already has a parent.
func (n *Node) InsertChild(child *Node, index int) {
	if n.Measure != nil {
		n.Config.fatalf("cannot add child to a node with a measure function")
	}
	if child.Parent != nil {
		n.Config.fatalf("cannot insert a child that already has a parent")
	}
	n.cloneChildrenIfNeeded()
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
	child.Parent = n
	n.markDirtyAndPropagate()
}

// RemoveChild detaches child if present, an optimized fork of the same
// clone-then-mutate algorithm InsertChild uses.
func (n *Node) RemoveChild(child *Node) {
	idx := -1
	for i, c := range n.Children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	n.cloneChildrenIfNeeded()
	// cloning keeps the children in order, so idx still designates the
	// slot of the child to remove, which may now hold its clone.
	removed := n.Children[idx]
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	removed.Parent = nil
	n.markDirtyAndPropagate()
}

// cloneChildrenIfNeeded implements the copy-on-write tree rule: if this
// node's children are actually owned by some other
// node (their Parent field points elsewhere, meaning this Node was
// itself produced by Clone and still shares its child slice), deep-clone
// every child and re-parent the clones before any mutation proceeds.
func (n *Node) cloneChildrenIfNeeded() {
	if len(n.Children) == 0 {
		return
	}
	if n.Children[0].Parent == n {
		return
	}
	cloned := make([]*Node, len(n.Children))
	for i, old := range n.Children {
		nc := old.shallowClone()
		nc.Parent = n
		cloned[i] = nc
		if n.Config != nil && n.Config.Cloned != nil {
			n.Config.Cloned(old, nc, n, i)
		}
	}
	n.Children = cloned
}

// shallowClone copies a node's own fields but keeps sharing its Children
// slice (still pointing at the original children, whose Parent still
// points at the original node) until cloneChildrenIfNeeded fires on
// first mutation.
func (n *Node) shallowClone() *Node {
	c := *n
	c.Parent = nil
	return &c
}

// Clone returns a node sharing this node's subtree until either side
// mutates it, at which point cloneChildrenIfNeeded materializes a real
// copy. This is the snapshot-and-layout-diff idiom: take a Clone before
// a speculative layout so the original tree is left untouched.
func (n *Node) Clone() *Node {
	return n.shallowClone()
}

// deepClone recursively copies n and every descendant, including a
// fresh copy of each node's own Config, so a speculative layout run on
// the result can never mutate the tree it was copied from. Unlike
// Clone, which shares children with the original until a later
// mutation triggers cloneChildrenIfNeeded, deepClone materializes the
// whole subtree up front.
func (n *Node) deepClone() *Node {
	c := n.shallowClone()
	if n.Config != nil {
		cfg := *n.Config
		c.Config = &cfg
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			cc := child.deepClone()
			cc.Parent = c
			c.Children[i] = cc
		}
	}
	return c
}

// markDirtyRecursively marks n and every descendant dirty, the downward
// counterpart to markDirtyAndPropagate: used to force a full recompute
// of a freshly deep-cloned subtree rather than reuse any cached
// measurement carried over from the copy.
func (n *Node) markDirtyRecursively() {
	n.IsDirty = true
	n.Layout.computedFlexBasis = Undefined
	for _, c := range n.Children {
		c.markDirtyRecursively()
	}
}

// usedLegacyStretchBehaviourInSubtree reports whether n or any
// descendant took the legacy cannot-flex branch during the last layout
// pass.
func (n *Node) usedLegacyStretchBehaviourInSubtree() bool {
	if n.Layout.usedLegacyStretchBehaviour {
		return true
	}
	for _, c := range n.Children {
		if c.usedLegacyStretchBehaviourInSubtree() {
			return true
		}
	}
	return false
}

// MarkDirty flags n and every ancestor up to the root as needing
// recomputation: isDirty must propagate on every mutation. It treats
// nodes with a measure function like any other node and never fails.
func (n *Node) MarkDirty() {
	n.markDirtyAndPropagate()
}

func (n *Node) markDirtyAndPropagate() {
	if n.IsDirty {
		return
	}
	n.IsDirty = true
	n.Layout.computedFlexBasis = Undefined
	if n.Dirtied != nil {
		n.Dirtied(n)
	}
	if n.Parent != nil {
		n.Parent.markDirtyAndPropagate()
	}
}

// Reset restores a node to a freshly-created state. It is fatal to reset
// a node that still has children or a parent.
func (n *Node) Reset() {
	if len(n.Children) != 0 {
		n.Config.fatalf("cannot reset a node with children")
	}
	if n.Parent != nil {
		n.Config.fatalf("cannot reset a node with a parent")
	}
	config := n.Config
	*n = *NewNode(config)
}

// resolveDirection returns n's own direction if set, else the parent's
// resolved direction, else DirectionLTR at the root.
func (n *Node) resolveDirection() Direction {
	if n.Style.Direction != DirectionInherit {
		return n.Style.Direction
	}
	if n.Parent != nil {
		return n.Parent.resolveDirection()
	}
	return DirectionLTR
}

// resolveDimensions computes resolvedDimensions from style, once per
// layout: for each dimension, a defined max equal to the min is used as
// the dimension; otherwise the style dimension is copied as is. The flex
// shorthand and flex-basis never substitute for a dimension here.
func (n *Node) resolveDimensions() {
	for d := Dimension(0); d < dimensionCount; d++ {
		if n.Style.MaxDimensions[d].isDefined() && n.Style.MaxDimensions[d].Equal(n.Style.MinDimensions[d]) {
			n.resolvedDimensions[d] = n.Style.MaxDimensions[d]
		} else {
			n.resolvedDimensions[d] = n.Style.Dimensions[d]
		}
	}
}
