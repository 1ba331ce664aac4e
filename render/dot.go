package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/longhike/junction"
)

// Options configures diagram rendering.
type Options struct {
	// Path is a node sequence to highlight, typically the longest hike.
	Path []int

	// Detailed adds the node index to each label.
	Detailed bool
}

// ToDOT converts g to Graphviz DOT. Undirected graphs become "graph" with
// one edge per corridor; directed graphs become "digraph".
func ToDOT(g *junction.Graph, opts Options) string {
	kind, arrow := "graph", "--"
	if g.Directed {
		kind, arrow = "digraph", "->"
	}
	onPath := pathEdges(opts.Path, g.Directed)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.Index, nodeAttrs(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := fmt.Sprintf("label=\"%d\"", e.Weight)
		if onPath[[2]int{e.From, e.To}] {
			attrs += ", color=red, penwidth=2"
		}
		fmt.Fprintf(&buf, "  n%d %s n%d [%s];\n", e.From, arrow, e.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n junction.Node, detailed bool) string {
	label := fmt.Sprintf("%d,%d", n.Cell.X, n.Cell.Y)
	if detailed {
		label = fmt.Sprintf("#%d\\n%s", n.Index, label)
	}
	attrs := fmt.Sprintf("label=\"%s\"", label)
	switch n.Index {
	case junction.StartIndex:
		attrs += ", fillcolor=palegreen"
	case junction.FinishIndex:
		attrs += ", fillcolor=lightpink"
	}

	return attrs
}

// pathEdges indexes the consecutive pairs of path. Undirected pairs are
// stored in both orientations.
func pathEdges(path []int, directed bool) map[[2]int]bool {
	out := make(map[[2]int]bool, 2*len(path))
	for k := 1; k < len(path); k++ {
		a, b := path[k-1], path[k]
		out[[2]int{a, b}] = true
		if !directed {
			out[[2]int{b, a}] = true
		}
	}

	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
