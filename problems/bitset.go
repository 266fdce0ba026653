package problems

import "math/bits"

// bitset is a word-packed set of integers in [0, n), used by MinLAState
// to track which vertices are still free (unassigned): set/clear/test/
// and/clone, plus a hash for use as a Layer key.
type bitset struct {
	n     int
	words []uint64
}

func newBitset(n int) *bitset {
	return &bitset{n: n, words: make([]uint64, (n+63)/64)}
}

// full returns a bitset of size n with every bit in [0, n) set.
func full(n int) *bitset {
	b := newBitset(n)
	for i := 0; i < n; i++ {
		b.set(i)
	}
	return b
}

func (b *bitset) set(i int)   { b.words[i/64] |= 1 << uint(i%64) }
func (b *bitset) clear(i int) { b.words[i/64] &^= 1 << uint(i%64) }
func (b *bitset) test(i int) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// clone returns a deep copy of b.
func (b *bitset) clone() *bitset {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &bitset{n: b.n, words: words}
}

// and intersects b with other in place.
func (b *bitset) and(other *bitset) {
	for i := range b.words {
		b.words[i] &= other.words[i]
	}
}

// equals reports whether b and other have exactly the same bits set.
func (b *bitset) equals(other *bitset) bool {
	if b.n != other.n {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// hash returns a deterministic hash of b's contents, FNV-1a over the
// packed words.
func (b *bitset) hash() uint64 {
	var h uint64 = 1469598103934665603
	for _, w := range b.words {
		for i := 0; i < 8; i++ {
			h ^= w & 0xff
			h *= 1099511628211
			w >>= 8
		}
	}
	return h
}

// count returns the number of set bits.
func (b *bitset) count() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// each calls f for every set bit, in ascending order, stopping early if f
// returns false.
func (b *bitset) each(f func(i int) bool) {
	for wi, w := range b.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			i := wi*64 + bit
			if i >= b.n {
				return
			}
			if !f(i) {
				return
			}
			w &^= 1 << uint(bit)
		}
	}
}
