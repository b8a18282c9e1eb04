package patternalgo

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/relateby/pattern-go/patternquery"
)

// DegreeCentrality returns, for every node, its degree (the count of
// incident relationships, as GraphQuery.Degree reports it; w does not
// change it) normalized by the number of other nodes in the graph (0 for
// a graph with a single node).
func DegreeCentrality[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V]) map[string]float64 {
	nodes := q.Nodes()
	out := make(map[string]float64, len(nodes))
	denom := float64(len(nodes) - 1)
	for _, n := range nodes {
		id := q.Identify(n.Value())
		if denom <= 0 {
			out[id] = 0
			continue
		}
		out[id] = float64(q.Degree(n)) / denom
	}
	return out
}

// BetweennessCentrality returns, for every node, its betweenness score
// computed by gonum's Brandes' algorithm. The graph is adapted into a
// gonum simple.UndirectedGraph via an int64<->identity bijection built
// once per call; Weight is only used to decide which relationships
// contribute edges, not to weight them (Brandes' as provided by gonum's
// network package here operates on the unweighted topology).
func BetweennessCentrality[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V]) map[string]float64 {
	nodes := q.Nodes()
	idToSeq := make(map[string]int64, len(nodes))
	seqToID := make([]string, len(nodes))
	for i, n := range nodes {
		id := q.Identify(n.Value())
		idToSeq[id] = int64(i)
		seqToID[i] = id
	}

	g := simple.NewUndirectedGraph()
	for i := range nodes {
		g.AddNode(simple.Node(int64(i)))
	}
	seenEdge := make(map[[2]int64]struct{})
	for _, n := range nodes {
		for _, e := range neighbors(q, w, n) {
			a := idToSeq[q.Identify(n.Value())]
			b := idToSeq[q.Identify(e.To.Value())]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			key := [2]int64{a, b}
			if _, ok := seenEdge[key]; ok {
				continue
			}
			seenEdge[key] = struct{}{}
			g.SetEdge(g.NewEdge(simple.Node(a), simple.Node(b)))
		}
	}

	scores := network.Betweenness(g)
	out := make(map[string]float64, len(scores))
	for seq, score := range scores {
		out[seqToID[seq]] = score
	}
	return out
}
