package formatters

import (
	"cmp"
	"errors"
	"slices"

	"github.com/dominikbraun/graph"
)

// NodeKind classifies the nodes of an asset graph.
type NodeKind string

const (
	KindEvent          NodeKind = "event"
	KindAuxBus         NodeKind = "auxbus"
	KindShareset       NodeKind = "shareset"
	KindSoundBank      NodeKind = "soundbank"
	KindMedia          NodeKind = "media"
	KindExternalSource NodeKind = "externalsource"
	KindLeaf           NodeKind = "leaf"
	KindValue          NodeKind = "value"
)

// Node is one vertex of an asset graph.
type Node struct {
	Key   string
	Label string
	Kind  NodeKind
}

// Edge points from an asset to something it requires.
type Edge struct {
	From string
	To   string
}

// Asset is a resolved asset: its cooked data and what it requires, as a
// graph rooted at the asset.
type Asset struct {
	Data  any
	graph graph.Graph[string, Node]
}

// NewAsset returns an asset with no nodes.
func NewAsset(data any) *Asset {
	return &Asset{
		Data:  data,
		graph: graph.New(func(n Node) string { return n.Key }, graph.Directed()),
	}
}

// AddNode adds n unless a node with its key exists, and returns the key.
func (a *Asset) AddNode(n Node) (string, error) {
	if err := a.graph.AddVertex(n); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return "", err
	}
	return n.Key, nil
}

// AddEdge records that from requires to. Both nodes must exist.
func (a *Asset) AddEdge(from, to string) error {
	if err := a.graph.AddEdge(from, to); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return err
	}
	return nil
}

// Nodes returns every node ordered by key.
func (a *Asset) Nodes() ([]Node, error) {
	adjacency, err := a.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(adjacency))
	for key := range adjacency {
		node, err := a.graph.Vertex(key)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	slices.SortFunc(nodes, func(x, y Node) int { return cmp.Compare(x.Key, y.Key) })
	return nodes, nil
}

// Edges returns every edge ordered by source, then target.
func (a *Asset) Edges() ([]Edge, error) {
	adjacency, err := a.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	var edges []Edge
	for from, targets := range adjacency {
		for to := range targets {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	slices.SortFunc(edges, func(x, y Edge) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		return cmp.Compare(x.To, y.To)
	})
	return edges, nil
}
