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

import "errors"
import "fmt"
import "strings"

import "golang.org/x/exp/slices"

// ErrCodeTooLong is returned when a leaf lies deeper than a Code can hold.
var ErrCodeTooLong = errors.New("huffman code longer than 64 bits")

// MaxCodeLen is the longest code a Code can represent.
const MaxCodeLen = 64

// Code is a root-to-leaf path: the lowest Len bits of Bits, most
// significant first, 0 meaning left and 1 meaning right.
type Code struct {
	Bits uint64
	Len  uint8
}

func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// CodeTable maps every symbol of a tree to its code.
type CodeTable struct {
	codes map[rune]Code
	order []rune
}

// GenerateTable derives the code table of t by a breadth-first walk. The
// lone symbol of a single-leaf tree gets the one-bit code 0, since an
// empty code could not be packed.
func GenerateTable(t *Tree) (*CodeTable, error) {
	c := &CodeTable{codes: make(map[rune]Code, t.Len()/2+1)}
	if t.Empty() {
		return c, nil
	}
	root := t.nodes[t.root]
	if root.Kind == Leaf {
		c.add(root.Symbol, Code{Bits: 0, Len: 1})
		return c, nil
	}
	type item struct {
		node int
		code Code
	}
	queue := []item{{t.root, Code{}}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		nd := t.nodes[it.node]
		switch nd.Kind {
		case Leaf:
			c.add(nd.Symbol, it.code)
		case Internal:
			if it.code.Len == MaxCodeLen {
				return nil, fmt.Errorf("%w: below %s", ErrCodeTooLong, it.code)
			}
			l := Code{Bits: it.code.Bits << 1, Len: it.code.Len + 1}
			r := Code{Bits: it.code.Bits<<1 | 1, Len: it.code.Len + 1}
			queue = append(queue, item{nd.Left, l}, item{nd.Right, r})
		}
	}
	return c, nil
}

func (c *CodeTable) add(r rune, code Code) {
	c.codes[r] = code
	c.order = append(c.order, r)
}

// Lookup returns the code of r.
func (c *CodeTable) Lookup(r rune) (Code, bool) {
	code, ok := c.codes[r]
	return code, ok
}

// Len is the number of symbols in the table.
func (c *CodeTable) Len() int { return len(c.order) }

// Symbols returns the symbols in breadth-first leaf order.
func (c *CodeTable) Symbols() []rune { return slices.Clone(c.order) }

// Inverse returns the decoding map from code to symbol.
func (c *CodeTable) Inverse() map[Code]rune {
	inv := make(map[Code]rune, len(c.codes))
	for r, code := range c.codes {
		inv[code] = r
	}
	return inv
}

// Strings renders every code as a string of '0' and '1'.
func (c *CodeTable) Strings() map[rune]string {
	m := make(map[rune]string, len(c.codes))
	for r, code := range c.codes {
		m[r] = code.String()
	}
	return m
}

// EncodedLen returns the number of bits f encodes to with this table.
// Symbols of f missing from the table are ignored.
func (c *CodeTable) EncodedLen(f *FrequencyTable) (n uint64) {
	for _, r := range f.order {
		n += uint64(c.codes[r].Len) * f.counts[r]
	}
	return
}
