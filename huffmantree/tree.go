/*
Copyright (c) 2017 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package huffmantree builds static Huffman codes over Unicode text:
// frequency tables, the prefix tree, its code table and the compact
// breadth-first serialization of the tree's shape.
package huffmantree

import "container/heap"
import "fmt"
import "io"
import "strings"

// Kind tells the two node variants apart.
type Kind uint8

const (
	Leaf Kind = iota
	Internal
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Internal:
		return "internal"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

const noChild = -1

// Node is an element of a Tree's arena. Leaves carry a Symbol, internal
// nodes carry the arena indices of exactly two children.
type Node struct {
	Kind   Kind
	Weight uint64
	Symbol rune
	Left   int
	Right  int
}

// Tree is a Huffman tree stored as an arena of nodes. The zero Tree is
// empty.
type Tree struct {
	nodes []Node
	root  int
}

// Empty reports whether the tree has no symbols.
func (t *Tree) Empty() bool { return len(t.nodes) == 0 }

// Root returns the arena index of the root, or -1 for an empty tree.
func (t *Tree) Root() int {
	if t.Empty() {
		return noChild
	}
	return t.root
}

// Node returns the node at arena index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len is the total number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Leaves is the number of leaf nodes, that is the number of symbols.
func (t *Tree) Leaves() (n int) {
	for i := range t.nodes {
		if t.nodes[i].Kind == Leaf {
			n++
		}
	}
	return
}

// Weight is the weight of the root, zero for an empty tree.
func (t *Tree) Weight() uint64 {
	if t.Empty() {
		return 0
	}
	return t.nodes[t.root].Weight
}

func (t *Tree) leaf(w uint64, r rune) int {
	t.nodes = append(t.nodes, Node{Kind: Leaf, Weight: w, Symbol: r, Left: noChild, Right: noChild})
	return len(t.nodes) - 1
}

func (t *Tree) internal(w uint64, left, right int) int {
	t.nodes = append(t.nodes, Node{Kind: Internal, Weight: w, Left: left, Right: right})
	return len(t.nodes) - 1
}

// pending is a not yet merged subtree. Nodes are appended to the arena in
// creation order, so the arena index doubles as the tie breaker.
type pending struct {
	weight uint64
	node   int
}

type pendingHeap []pending

func (h pendingHeap) Len() int { return len(h) }
func (h pendingHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].node < h[j].node
}
func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pendingHeap) Push(x any) { *h = append(*h, x.(pending)) }

func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Build constructs the Huffman tree for f. The two lightest subtrees are
// merged until one remains, the first one popped going left. Equal weights
// are taken in creation order: leaves in f's symbol order, then merged
// nodes in the order they were made.
func Build(f *FrequencyTable) *Tree {
	t := &Tree{root: noChild}
	if f.Len() == 0 {
		return t
	}
	t.nodes = make([]Node, 0, 2*f.Len()-1)
	h := make(pendingHeap, 0, f.Len())
	for _, r := range f.order {
		w := f.counts[r]
		h = append(h, pending{weight: w, node: t.leaf(w, r)})
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(pending)
		b := heap.Pop(&h).(pending)
		w := a.weight + b.weight
		heap.Push(&h, pending{weight: w, node: t.internal(w, a.node, b.node)})
	}
	t.root = h[0].node
	return t
}

// Equal reports whether t and u have the same shape and the same symbols
// at the same leaves. Weights are ignored.
func (t *Tree) Equal(u *Tree) bool {
	if t.Empty() || u.Empty() {
		return t.Empty() == u.Empty()
	}
	var same func(i, j int) bool
	same = func(i, j int) bool {
		a, b := t.nodes[i], u.nodes[j]
		if a.Kind != b.Kind {
			return false
		}
		if a.Kind == Leaf {
			return a.Symbol == b.Symbol
		}
		return same(a.Left, b.Left) && same(a.Right, b.Right)
	}
	return same(t.root, u.root)
}

// WeightedPathLength is the sum over all leaves of weight times depth,
// the number of bits a text with these frequencies encodes to.
func (t *Tree) WeightedPathLength() (n uint64) {
	if t.Empty() {
		return 0
	}
	t.walk(func(nd Node, depth int) {
		if nd.Kind == Leaf {
			n += nd.Weight * uint64(depth)
		}
	})
	return
}

// walk visits the nodes breadth first, left child before right.
func (t *Tree) walk(visit func(nd Node, depth int)) {
	if t.Empty() {
		return
	}
	type item struct{ node, depth int }
	queue := []item{{t.root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		nd := t.nodes[it.node]
		visit(nd, it.depth)
		if nd.Kind == Internal {
			queue = append(queue, item{nd.Left, it.depth + 1}, item{nd.Right, it.depth + 1})
		}
	}
}

// Print writes an indented outline of the tree to w.
func (t *Tree) Print(w io.Writer) {
	if t.Empty() {
		fmt.Fprintln(w, "(empty)")
		return
	}
	var pr func(i, depth int, prefix string)
	pr = func(i, depth int, prefix string) {
		nd := t.nodes[i]
		indent := strings.Repeat("  ", depth)
		if nd.Kind == Leaf {
			fmt.Fprintf(w, "%s%q %d %s\n", indent, nd.Symbol, nd.Weight, prefix)
			return
		}
		fmt.Fprintf(w, "%s* %d\n", indent, nd.Weight)
		pr(nd.Left, depth+1, prefix+"0")
		pr(nd.Right, depth+1, prefix+"1")
	}
	pr(t.root, 0, "")
}
