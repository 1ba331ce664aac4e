// Package render draws a junction graph as a Graphviz diagram.
//
// ToDOT produces DOT text with node cells as labels and corridor lengths as
// edge labels; the best hike can be highlighted. RenderSVG lays the DOT out
// with the embedded Graphviz engine (no system binary needed).
package render
