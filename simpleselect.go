package sux

const (
	onesPerInventoryLog2     = 10
	onesPerInventory         = 1 << onesPerInventoryLog2
	onesPerInventoryMask     = onesPerInventory - 1
	longwordsPerSubinventory = 4
	onesPerSub64Log2         = onesPerInventoryLog2 - 2 // LONGWORDS_PER_SUBINVENTORY = 1<<2
	onesPerSub64             = 1 << onesPerSub64Log2
	onesPerSub64Mask         = onesPerSub64 - 1
	onesPerSub16Log2         = onesPerSub64Log2 - 2
	onesPerSub16             = 1 << onesPerSub16Log2
	onesPerSub16Mask         = onesPerSub16 - 1
)

// SimpleSelectHalf is a constant-time select index over a borrowed bit
// vector, tuned for vectors where roughly half the bits are set. It
// stores one inventory entry per 1024 ones; each entry is either a
// 16-bit sub-inventory (bit span < 2^16) or a 64-bit sub-inventory
// (larger spans), distinguished by the sign of the entry's first word.
type SimpleSelectHalf struct {
	bits      []uint64 // borrowed, not owned
	numBits   uint64
	numWords  uint64
	numOnes   uint64
	invSize   uint64
	inventory []uint64 // invSize groups of 5 words, plus one trailing sentinel
}

// NewSimpleSelectHalf builds a select index over bits, a non-owning
// borrow of a little-endian bit vector of length numBits.
func NewSimpleSelectHalf(bits []uint64, numBits uint64) *SimpleSelectHalf {
	numWords := (numBits + 63) / 64

	var numOnes uint64
	for i := uint64(0); i < numWords; i++ {
		numOnes += uint64(Popcount(bits[i]))
	}

	invSize := (numOnes + onesPerInventory - 1) / onesPerInventory
	groupWords := uint64(longwordsPerSubinventory + 1)
	inv := make([]uint64, invSize*groupWords+1)

	// First pass: record the absolute bit position of every
	// 1024th one as the group's starting entry.
	var d uint64
	for i := uint64(0); i < numWords; i++ {
		w := bits[i]
		for j := 0; j < 64; j++ {
			if i*64+uint64(j) >= numBits {
				break
			}
			if w&(1<<uint(j)) != 0 {
				if d&onesPerInventoryMask == 0 {
					inv[(d>>onesPerInventoryLog2)*groupWords] = i*64 + uint64(j)
				}
				d++
			}
		}
	}
	inv[invSize*groupWords] = numBits

	// Second pass: fill each group's sub-inventory, picking the 16-bit
	// or 64-bit layout based on the group's bit span.
	d = 0
	var groupIdx, start, span uint64
	var use16 bool
	var offset uint64
	for i := uint64(0); i < numWords; i++ {
		w := bits[i]
		for j := 0; j < 64; j++ {
			if i*64+uint64(j) >= numBits {
				break
			}
			if w&(1<<uint(j)) == 0 {
				continue
			}
			if d&onesPerInventoryMask == 0 {
				groupIdx = (d >> onesPerInventoryLog2) * groupWords
				start = inv[groupIdx]
				span = inv[groupIdx+groupWords] - start
				use16 = span < (1 << 16)
				if !use16 {
					inv[groupIdx] = uint64(-int64(start) - 1)
				}
				offset = 0
			}

			pos := i*64 + uint64(j)
			if use16 {
				if d&onesPerSub16Mask == 0 {
					putUint16(inv, groupIdx+1, offset, uint16(pos-start))
					offset++
				}
			} else {
				if d&onesPerSub64Mask == 0 {
					inv[groupIdx+1+offset] = pos - start
					offset++
				}
			}
			d++
		}
	}

	return &SimpleSelectHalf{
		bits: bits, numBits: numBits, numWords: numWords,
		numOnes: numOnes, invSize: invSize, inventory: inv,
	}
}

// Select returns the position of the r-th set bit (0-indexed).
// r must be in [0, NumOnes()).
func (s *SimpleSelectHalf) Select(r uint64) uint64 {
	groupIdx := (r >> onesPerInventoryLog2) * (longwordsPerSubinventory + 1)
	startWord := int64(s.inventory[groupIdx])
	sub := r & onesPerInventoryMask

	var start, residual uint64
	if startWord >= 0 {
		off := getUint16(s.inventory, groupIdx+1, sub>>onesPerSub16Log2)
		start = uint64(startWord) + uint64(off)
		residual = sub & onesPerSub16Mask
	} else {
		idx := sub >> onesPerSub64Log2
		off := s.inventory[groupIdx+1+idx]
		start = uint64(-startWord-1) + off
		residual = sub & onesPerSub64Mask
	}

	if residual == 0 {
		return start
	}

	wordIdx := start / 64
	mask := ^uint64(0) << (start % 64)
	word := s.bits[wordIdx] & mask
	for {
		c := uint64(Popcount(word))
		if residual < c {
			break
		}
		wordIdx++
		word = s.bits[wordIdx]
		residual -= c
	}
	return wordIdx*64 + uint64(Select64(word, uint(residual)))
}

// SelectNext returns (Select(r), the position of the next set bit after
// Select(r)). r+1 must be < NumOnes().
func (s *SimpleSelectHalf) SelectNext(r uint64) (sel uint64, next uint64) {
	sel = s.Select(r)
	curr := sel / 64
	window := s.bits[curr] & (^uint64(0) << (sel % 64))
	window &= window - 1 // clear the bit for sel itself
	for window == 0 {
		curr++
		window = s.bits[curr]
	}
	next = curr*64 + uint64(Rho(window))
	return sel, next
}

// NumOnes returns the total number of set bits in the indexed vector.
func (s *SimpleSelectHalf) NumOnes() uint64 { return s.numOnes }

// NumBits returns the length in bits of the underlying bit vector.
func (s *SimpleSelectHalf) NumBits() uint64 { return s.numBits }

// BitCount returns the size in bits of the inventory (excludes the
// borrowed bit vector itself).
func (s *SimpleSelectHalf) BitCount() uint64 { return uint64(len(s.inventory)) * 64 }
