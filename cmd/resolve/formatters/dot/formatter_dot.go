package dot

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/soundcook/cmd/resolve/formatters"
)

var fillColors = map[formatters.NodeKind]string{
	formatters.KindEvent:          "lightblue",
	formatters.KindAuxBus:         "lightsalmon",
	formatters.KindShareset:       "peachpuff",
	formatters.KindSoundBank:      "lightyellow",
	formatters.KindMedia:          "white",
	formatters.KindExternalSource: "plum",
	formatters.KindLeaf:           "lavender",
	formatters.KindValue:          "khaki",
}

// Formatter formats asset graphs as Graphviz DOT.
type Formatter struct{}

// Format converts the asset graph to Graphviz DOT format.
func (f *Formatter) Format(a *formatters.Asset, opts formatters.RenderOptions) (string, error) {
	nodes, err := a.Nodes()
	if err != nil {
		return "", err
	}
	edges, err := a.Edges()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	for _, node := range nodes {
		color, ok := fillColors[node.Kind]
		if !ok {
			color = "white"
		}
		sb.WriteString(fmt.Sprintf("  %q [label=%q, style=filled, fillcolor=%s];\n", node.Key, node.Label, color))
	}
	if len(nodes) > 0 && len(edges) > 0 {
		sb.WriteString("\n")
	}

	for _, edge := range edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", edge.From, edge.To))
	}

	sb.WriteString("}")
	return sb.String(), nil
}

// GenerateURL creates a GraphvizOnline URL with the DOT graph embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	encoded := url.PathEscape(output)
	return fmt.Sprintf("https://dreampuf.github.io/GraphvizOnline/?engine=dot#%s", encoded), true
}
