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

import "golang.org/x/exp/maps"
import "golang.org/x/exp/slices"

// FrequencyTable maps each symbol of a text to its number of occurrences.
// It is immutable once built. The order of Symbols is the order in which
// the tree builder seeds its leaves.
type FrequencyTable struct {
	order  []rune
	counts map[rune]uint64
}

// CountText counts the runes of text. Symbols are kept in order of first
// occurrence.
func CountText(text string) *FrequencyTable {
	f := &FrequencyTable{counts: make(map[rune]uint64)}
	for _, r := range text {
		if _, ok := f.counts[r]; !ok {
			f.order = append(f.order, r)
		}
		f.counts[r]++
	}
	return f
}

// NewFrequencyTable copies counts into a table. Symbols are ordered by
// code point, so equal maps always give equal tables.
func NewFrequencyTable(counts map[rune]uint64) *FrequencyTable {
	f := &FrequencyTable{counts: maps.Clone(counts), order: maps.Keys(counts)}
	if f.counts == nil {
		f.counts = make(map[rune]uint64)
	}
	slices.Sort(f.order)
	return f
}

// Frequency returns the weight of r, zero if r was never seen.
func (f *FrequencyTable) Frequency(r rune) uint64 { return f.counts[r] }

// Len is the number of distinct symbols.
func (f *FrequencyTable) Len() int { return len(f.order) }

// Symbols returns the symbols in seeding order.
func (f *FrequencyTable) Symbols() []rune { return slices.Clone(f.order) }

// Total is the sum of all weights.
func (f *FrequencyTable) Total() (n uint64) {
	for _, c := range f.counts {
		n += c
	}
	return
}
