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

import "math/rand"
import "testing"

import "github.com/stretchr/testify/require"

func TestCodeString(t *testing.T) {
	require.Equal(t, "", Code{}.String())
	require.Equal(t, "0", Code{Bits: 0, Len: 1}.String())
	require.Equal(t, "0101", Code{Bits: 5, Len: 4}.String())
	require.Equal(t, "111101", Code{Bits: 0x3d, Len: 6}.String())

	require.True(t, Code{Bits: 0x3d, Len: 6}.HasPrefix(Code{Bits: 0xf, Len: 4}))
	require.False(t, Code{Bits: 0x3d, Len: 6}.HasPrefix(Code{Bits: 0x1, Len: 2}))
	require.False(t, Code{Bits: 1, Len: 1}.HasPrefix(Code{Bits: 2, Len: 2}))
}

func TestGenerateTableEdgeCases(t *testing.T) {
	table, err := GenerateTable(Build(CountText("")))
	require.NoError(t, err)
	require.Equal(t, 0, table.Len())

	table, err = GenerateTable(Build(CountText("XXXX")))
	require.NoError(t, err)
	code, ok := table.Lookup('X')
	require.True(t, ok)
	require.Equal(t, Code{Bits: 0, Len: 1}, code)
	_, ok = table.Lookup('Y')
	require.False(t, ok)
}

func TestGenerateTableOrder(t *testing.T) {
	table, err := GenerateTable(Build(NewFrequencyTable(workedExample())))
	require.NoError(t, err)
	require.Equal(t, []rune("EUDLCMZK"), table.Symbols())
}

func TestGenerateTablePrefixFree(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		counts := randomCounts(rnd, 2+rnd.Intn(80))
		table, err := GenerateTable(Build(NewFrequencyTable(counts)))
		require.NoError(t, err)
		require.Equal(t, len(counts), table.Len())

		syms := table.Symbols()
		for _, a := range syms {
			ca, _ := table.Lookup(a)
			for _, b := range syms {
				if a == b {
					continue
				}
				cb, _ := table.Lookup(b)
				require.False(t, ca.HasPrefix(cb), "%q=%s has prefix %q=%s", a, ca, b, cb)
			}
		}

		inv := table.Inverse()
		require.Len(t, inv, len(counts))
		for code, r := range inv {
			got, _ := table.Lookup(r)
			require.Equal(t, code, got)
		}
	}
}

func TestGenerateTableTooDeep(t *testing.T) {
	// Fibonacci weights give a tree that is a single spine.
	counts := make(map[rune]uint64)
	a, b := uint64(1), uint64(1)
	for i := 0; i < 70; i++ {
		counts[rune('A'+i)] = a
		a, b = b, a+b
	}
	tree := Build(NewFrequencyTable(counts))
	_, err := GenerateTable(tree)
	require.ErrorIs(t, err, ErrCodeTooLong)
}
