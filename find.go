package mapv

import (
	"math/bits"

	"github.com/theflywheel/mapv/internal/simd"
)

// Find looks up key and reports its value and whether it was present. The
// probe walks buckets forward from key's home bucket, bounded by the
// table's current max observed bucket distance (t.distBktIter), using
// simd.Match to test all four lanes of a bucket in one comparison rather
// than scanning slots one at a time.
func (t *Table) Find(key []byte) (uint64, bool) {
	h := t.hasher.Hash(key)
	home := slotFromHash(h.Hi, t.slotHashShift)
	homeBucket := bucketOf(home)

	for bd := uint64(0); bd < t.distBktIter; bd++ {
		bIdx := homeBucket + bd
		if bIdx >= t.bucketsReal {
			break
		}
		b := &t.buckets[bIdx]
		mask := simd.Match(b.hi, b.lo, h.Hi, h.Lo)
		if mask == 0 {
			continue
		}
		lane := bits.TrailingZeros8(mask)
		return b.vals[lane], true
	}
	return 0, false
}

// lookupSlot is Find's internal counterpart used by Delete: it reports the
// absolute slot index of key's entry, not just its value, so the caller
// can run backward-shift deletion starting from that slot.
func (t *Table) lookupSlot(h Hash128) (slot uint64, found bool) {
	home := slotFromHash(h.Hi, t.slotHashShift)
	homeBucket := bucketOf(home)

	for bd := uint64(0); bd < t.distBktIter; bd++ {
		bIdx := homeBucket + bd
		if bIdx >= t.bucketsReal {
			break
		}
		b := &t.buckets[bIdx]
		mask := simd.Match(b.hi, b.lo, h.Hi, h.Lo)
		if mask == 0 {
			continue
		}
		lane := uint64(bits.TrailingZeros8(mask))
		return bIdx*bucketSlots + lane, true
	}
	return 0, false
}

func (t *Table) slotAt(slot uint64) *bucket {
	return &t.buckets[bucketOf(slot)]
}
