package mermaid

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/LegacyCodeHQ/soundcook/cmd/resolve/formatters"
)

var classStyles = map[formatters.NodeKind]string{
	formatters.KindEvent:          "fill:#ADD8E6,stroke:#4682B4,color:#000000",
	formatters.KindAuxBus:         "fill:#FFA07A,stroke:#CD5C5C,color:#000000",
	formatters.KindShareset:       "fill:#FFDAB9,stroke:#CD853F,color:#000000",
	formatters.KindSoundBank:      "fill:#FFFFE0,stroke:#BDB76B,color:#000000",
	formatters.KindMedia:          "fill:#FFFFFF,stroke:#999999,color:#000000",
	formatters.KindExternalSource: "fill:#DDA0DD,stroke:#8B008B,color:#000000",
	formatters.KindLeaf:           "fill:#E6E6FA,stroke:#9370DB,color:#000000",
	formatters.KindValue:          "fill:#F0E68C,stroke:#BDB76B,color:#000000",
}

// Formatter formats asset graphs as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the asset graph to Mermaid.js flowchart format.
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
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}
	sb.WriteString("flowchart LR\n")

	// Mermaid node IDs can't hold the slashes of node keys.
	nodeIDs := make(map[string]string, len(nodes))
	byKind := make(map[formatters.NodeKind][]string)
	for i, node := range nodes {
		id := fmt.Sprintf("n%d", i)
		nodeIDs[node.Key] = id
		byKind[node.Kind] = append(byKind[node.Kind], id)

		label := strings.ReplaceAll(node.Label, "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, label))
	}

	if len(edges) > 0 {
		sb.WriteString("\n")
		for _, edge := range edges {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[edge.From], nodeIDs[edge.To]))
		}
	}

	kinds := make([]formatters.NodeKind, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	if len(kinds) > 0 {
		sb.WriteString("\n")
		for _, kind := range kinds {
			sb.WriteString(fmt.Sprintf("    classDef %s %s\n", kind, classStyles[kind]))
		}
		for _, kind := range kinds {
			sb.WriteString(fmt.Sprintf("    class %s %s\n", strings.Join(byKind[kind], ","), kind))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// GenerateURL creates a mermaid.live URL with the diagram embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	payload := map[string]any{
		"code": output,
		"mermaid": map[string]any{
			"theme": "default",
		},
		"autoSync":      true,
		"updateDiagram": true,
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("https://mermaid.live/edit#%s", url.PathEscape(output)), true
	}

	encoded := base64.URLEncoding.EncodeToString(jsonBytes)
	return fmt.Sprintf("https://mermaid.live/edit#base64:%s", encoded), true
}
