package flex

import (
	"fmt"
	"strings"
)

// NodeString renders a small indented tree dump of node's computed
// layout, meant as a debugging aid for callers who want to eyeball a
// layout result rather than walk Layout fields by hand. It is not part
// of the engine's normal output surface, which is Layout itself.
func NodeString(node *Node) string {
	var b strings.Builder
	writeNodeString(&b, node, 0)
	return b.String()
}

func writeNodeString(b *strings.Builder, node *Node, depth int) {
	fmt.Fprintf(b, "%s<node layout=\"width: %g; height: %g; top: %g; left: %g;\">\n",
		strings.Repeat("  ", depth),
		node.Layout.Dimensions[DimensionWidth], node.Layout.Dimensions[DimensionHeight],
		node.Layout.Position[positionIndex(EdgeTop)], node.Layout.Position[positionIndex(EdgeLeft)])
	for _, c := range node.Children {
		writeNodeString(b, c, depth+1)
	}
	if len(node.Children) > 0 {
		fmt.Fprintf(b, "%s</node>\n", strings.Repeat("  ", depth))
	}
}
