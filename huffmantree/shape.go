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

package huffmantree

import "bytes"
import "errors"
import "fmt"
import "unicode/utf8"

import "github.com/icza/bitio"

var (
	// ErrShapeMismatch: the shape bits do not describe a full binary tree
	// over the given symbols.
	ErrShapeMismatch = errors.New("tree shape does not fit the symbols")
	// ErrMalformedRoot: a lone node marked internal, or a leaf root with
	// nodes after it.
	ErrMalformedRoot = errors.New("malformed tree root")
	// ErrIncompleteTree: the shape ended while an internal node still
	// lacked children.
	ErrIncompleteTree = errors.New("internal node without two children")
	// ErrInvalidSymbols: the symbol bytes are not UTF-8 or repeat a symbol.
	ErrInvalidSymbols = errors.New("invalid leaf symbols")
)

// Shape is the serialized form of a tree: one bit per node in breadth-first
// order (1 internal, 0 leaf) packed MSB first, and the leaf symbols in the
// same order as UTF-8.
type Shape struct {
	Bits    []byte
	NumBits int
	Symbols []byte
}

// EncodeShape serializes t. The bit count is kept because the packed bytes
// alone cannot tell trailing padding from leaf bits.
func EncodeShape(t *Tree) Shape {
	var s Shape
	if t.Empty() {
		return s
	}
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	var syms []byte
	t.walk(func(nd Node, _ int) {
		w.TryWriteBool(nd.Kind == Internal)
		if nd.Kind == Leaf {
			syms = utf8.AppendRune(syms, nd.Symbol)
		}
		s.NumBits++
	})
	w.TryAlign()
	// writes to a bytes.Buffer do not fail
	_ = w.Close()
	s.Bits = buf.Bytes()
	s.Symbols = syms
	return s
}

func decodeSymbols(b []byte) ([]rune, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: not UTF-8", ErrInvalidSymbols)
	}
	syms := []rune(string(b))
	seen := make(map[rune]struct{}, len(syms))
	for _, r := range syms {
		if _, ok := seen[r]; ok {
			return nil, fmt.Errorf("%w: %q appears twice", ErrInvalidSymbols, r)
		}
		seen[r] = struct{}{}
	}
	return syms, nil
}

// DecodeShape rebuilds a tree from its serialized shape. The result has
// all weights set to zero.
func DecodeShape(s Shape) (*Tree, error) {
	syms, err := decodeSymbols(s.Symbols)
	if err != nil {
		return nil, err
	}
	if s.NumBits < 0 || len(s.Bits) != (s.NumBits+7)/8 {
		return nil, fmt.Errorf("%w: %d shape bytes for %d bits", ErrShapeMismatch, len(s.Bits), s.NumBits)
	}
	t := &Tree{root: noChild}
	if s.NumBits == 0 && len(syms) == 0 {
		return t, nil
	}
	if s.NumBits != 2*len(syms)-1 {
		return nil, fmt.Errorf("%w: %d bits for %d symbols", ErrShapeMismatch, s.NumBits, len(syms))
	}
	r := bitio.NewReader(bytes.NewReader(s.Bits))
	next := func() bool {
		// the byte count was checked above, so reads cannot run dry
		return r.TryReadBool()
	}

	t.nodes = make([]Node, 0, s.NumBits)
	if !next() {
		if s.NumBits != 1 {
			return nil, fmt.Errorf("%w: leaf root followed by %d nodes", ErrMalformedRoot, s.NumBits-1)
		}
		t.root = t.leaf(0, syms[0])
		return t, nil
	}
	if s.NumBits == 1 {
		return nil, fmt.Errorf("%w: lone internal node", ErrMalformedRoot)
	}

	t.root = t.internal(0, noChild, noChild)
	open := []int{t.root}
	sym := 0
	for i := 1; i < s.NumBits; i++ {
		if len(open) == 0 {
			return nil, fmt.Errorf("%w: %d bits left after the tree was complete", ErrShapeMismatch, s.NumBits-i)
		}
		var n int
		if next() {
			n = t.internal(0, noChild, noChild)
		} else {
			if sym == len(syms) {
				return nil, fmt.Errorf("%w: more leaves than symbols", ErrShapeMismatch)
			}
			n = t.leaf(0, syms[sym])
			sym++
		}
		parent := &t.nodes[open[0]]
		if parent.Left == noChild {
			parent.Left = n
		} else {
			parent.Right = n
			open = open[1:]
		}
		if t.nodes[n].Kind == Internal {
			open = append(open, n)
		}
	}
	if len(open) > 0 {
		return nil, fmt.Errorf("%w: %d nodes still open", ErrIncompleteTree, len(open))
	}
	return t, nil
}
