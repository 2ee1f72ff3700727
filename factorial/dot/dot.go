// Package dot renders factorial call traces as Graphviz DOT.
//
package dot // import "github.com/nickng/fac/factorial/dot"

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/nickng/fac/factorial"
)

// graphName is the name of the toplevel digraph.
const graphName = "G"

// builder holds the state of a single DOT conversion.
type builder struct {
	graph *gographviz.Escape
	count int
}

// Graph converts traces into a digraph with one cluster per trace.
func Graph(frames ...*factorial.Frame) (string, error) {
	b := &builder{graph: gographviz.NewEscape()}
	if err := b.graph.SetDir(true); err != nil {
		return "", err
	}
	if err := b.graph.SetName(graphName); err != nil {
		return "", err
	}

	for i, root := range frames {
		if root == nil {
			continue
		}
		sg := fmt.Sprintf("cluster_%s_%d", root.Variant, i)
		if err := b.graph.AddSubGraph(graphName, sg, map[string]string{
			"label": fmt.Sprintf("%s (max depth %d)", root.Variant, root.MaxDepth()),
		}); err != nil {
			return "", err
		}
		if _, err := b.visitFrame(root, sg); err != nil {
			return "", err
		}
	}

	return b.graph.String(), nil
}

// frameAttrs returns the node attributes for f.
func frameAttrs(f *factorial.Frame) map[string]string {
	attrs := map[string]string{
		"label": f.String(),
		"shape": "rect",
	}
	if f.Iteration {
		attrs["shape"] = "ellipse"
		attrs["style"] = "dashed"
	}
	if f.Variant == factorial.NaiveVariant && len(f.Children) == 0 {
		attrs["color"] = "blue" // Base case
	}
	return attrs
}

// edgeAttrs returns the attributes of the edge from parent to child.
func edgeAttrs(parent, child *factorial.Frame) map[string]string {
	if child.Iteration {
		// child.Acc is n * previous accumulator.
		prev := parent.Result
		if !parent.Iteration {
			prev = 1
		}
		return map[string]string{
			"label": fmt.Sprintf("acc = %d * %d", child.N, prev),
			"style": "dashed",
		}
	}
	return map[string]string{
		"label": fmt.Sprintf("%d * _", parent.N),
	}
}

// visitFrame creates a node for f in subgraph, then nodes and edges for its
// children. Returns the name of the node for f.
func (b *builder) visitFrame(f *factorial.Frame, subgraph string) (string, error) {
	name := fmt.Sprintf("%s%d", f.Variant, b.count)
	b.count++
	if err := b.graph.AddNode(subgraph, name, frameAttrs(f)); err != nil {
		return "", err
	}

	// Loop iterations are chained one after another, not nested.
	prevName, prevFrame := name, f
	for _, child := range f.Children {
		childName, err := b.visitFrame(child, subgraph)
		if err != nil {
			return "", err
		}
		if err := b.graph.AddEdge(prevName, childName, true, edgeAttrs(prevFrame, child)); err != nil {
			return "", err
		}
		if child.Iteration {
			prevName, prevFrame = childName, child
		}
	}
	return name, nil
}
