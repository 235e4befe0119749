// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

// nfaEdge is a transition out of a node: a nil op is an epsilon edge.
type nfaEdge struct {
	op *op
	to int
}

// nfa is an arena-and-index Thompson NFA: nodes are addressed by index,
// never by pointer, so the structure stays trivially copyable and free
// of cycles in the Go sense.
type nfa struct {
	nodes [][]nfaEdge
	start int
	end   int
}

// nfaFromOp builds the two-node NFA for a single op.
func nfaFromOp(o op) nfa {
	return nfa{
		nodes: [][]nfaEdge{
			{{op: &o, to: 1}},
			{},
		},
		start: 0,
		end:   1,
	}
}

// kleenStar rewires n in place so it accepts zero or more repetitions,
// via epsilon back-edges around the existing sub-NFA.
func (n *nfa) kleenStar() {
	oldEnd := n.end
	oldStart := n.start

	n.nodes = append(n.nodes, []nfaEdge{})
	newEnd := len(n.nodes) - 1
	n.nodes[oldEnd] = append(n.nodes[oldEnd], nfaEdge{to: newEnd}, nfaEdge{to: oldStart})

	n.nodes = append(n.nodes, []nfaEdge{{to: oldStart}, {to: newEnd}})
	newStart := len(n.nodes) - 1

	n.end = newEnd
	n.start = newStart
}

// concat appends other's nodes (renumbered) after n's, linking n.end to
// other.start via an epsilon edge.
func (n *nfa) concat(other nfa) {
	offset := len(n.nodes)
	for _, node := range other.nodes {
		shifted := make([]nfaEdge, len(node))
		for i, e := range node {
			shifted[i] = nfaEdge{op: e.op, to: e.to + offset}
		}
		n.nodes = append(n.nodes, shifted)
	}
	n.nodes[n.end] = append(n.nodes[n.end], nfaEdge{to: other.start + offset})
	n.end = other.end + offset
}

// nfaFromSymbols builds the Thompson construction for a parsed selector's
// symbol sequence.
func nfaFromSymbols(symbols []symbol) (nfa, error) {
	var stack []nfa
	for _, s := range symbols {
		switch s.kind {
		case symAny:
			stack = append(stack, nfaFromOp(opAnyOf()))
		case symBegin:
			stack = append(stack, nfaFromOp(opBeginOf()))
		case symAlphabet:
			stack = append(stack, nfaFromOp(opOf(s.tag)))
		case symKleenStar:
			if len(stack) == 0 {
				return nfa{}, newParseErr("empty-rule-string", "kleene star with no preceding symbol")
			}
			stack[len(stack)-1].kleenStar()
		}
	}
	if len(stack) == 0 {
		return nfa{}, newParseErr("empty-rule-string", "empty selector")
	}
	out := stack[0]
	for _, next := range stack[1:] {
		out.concat(next)
	}
	return out, nil
}

// epsilonClosures returns, for every node, the set of nodes reachable via
// epsilon edges alone (including the node itself).
func (n nfa) epsilonClosures() []nodeSet {
	out := make([]nodeSet, len(n.nodes))
	for idx := range n.nodes {
		unexplored := newNodeSet(idx)
		explored := newNodeSet()
		for {
			next, ok := unexplored.pop()
			if !ok {
				break
			}
			explored.insert(next)
			for _, e := range n.nodes[next] {
				if e.op != nil || explored.contains(e.to) {
					continue
				}
				unexplored.insert(e.to)
			}
		}
		out[idx] = explored
	}
	return out
}

// transition returns the set of nodes reachable from idx via a single
// non-epsilon edge satisfied by the input symbol o.
func (n nfa) transition(idx int, o op) nodeSet {
	out := newNodeSet()
	for _, e := range n.nodes[idx] {
		if e.op != nil && e.op.isSatisfiedBy(o) {
			out.insert(e.to)
		}
	}
	return out
}
