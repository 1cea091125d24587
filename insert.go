package mapv

import (
	"errors"
	"fmt"
)

// Insert places key/value into the table. If key is already present,
// overwriteIfExists controls whether the existing value is replaced
// (true) or ErrKeyExists is returned (false). Insert grows the table and
// retries exactly once if the current physical layout can't accept the
// new entry; a second consecutive grow failure is treated as an
// unreachable state and wrapped as a fatal error.
func (t *Table) Insert(key []byte, value uint64, overwriteIfExists bool) error {
	if t.destroyed {
		return ErrMapIsNull
	}

	h := t.hasher.Hash(key)
	if h.IsZero() {
		return fmt.Errorf("%w: key hashes to the reserved zero identity", ErrBadConfig)
	}

	if err := t.insertOnce(h, value, overwriteIfExists); err != nil {
		if !errors.Is(err, errTableMustGrow) {
			return err
		}
		if growErr := t.grow(); growErr != nil {
			return growErr
		}
		if err2 := t.insertOnce(h, value, overwriteIfExists); err2 != nil {
			if errors.Is(err2, errTableMustGrow) {
				return newFatalError(t.Stats(), err2)
			}
			return err2
		}
	}
	return t.maybeGrow()
}

// insertOnce runs the Robin Hood placement loop for a single hash/value
// pair against the table's current layout, without growing. It reports
// errTableMustGrow, leaving the table unchanged, if the physical tail is
// exhausted before a home is found for every displaced entry in the chain.
func (t *Table) insertOnce(h Hash128, value uint64, overwriteIfExists bool) error {
	if slot, found := t.lookupSlot(h); found {
		if !overwriteIfExists {
			return ErrKeyExists
		}
		b := t.slotAt(slot)
		b.vals[laneOf(slot)] = value
		return nil
	}

	curHi, curLo, curVal := h.Hi, h.Lo, value
	curHome := slotFromHash(h.Hi, t.slotHashShift)

	// The placement chain always ends at the first empty slot at or after
	// curHome. Find it before moving anything, so that a chain that would
	// run off the physical tail fails without dropping a displaced entry.
	for end := curHome; ; end++ {
		if end >= t.slotsReal {
			return errTableMustGrow
		}
		eb := t.slotAt(end)
		if eb.hi[laneOf(end)] == 0 && eb.lo[laneOf(end)] == 0 {
			break
		}
	}

	for slot := curHome; ; slot++ {
		if slot >= t.slotsReal {
			return errTableMustGrow
		}

		b := t.slotAt(slot)
		lane := laneOf(slot)

		if b.hi[lane] == 0 && b.lo[lane] == 0 {
			b.hi[lane], b.lo[lane], b.vals[lane] = curHi, curLo, curVal
			t.used++
			t.noteProbe(psl(curHome, slot), bktDist(bucketOf(curHome), bucketOf(slot)))
			return nil
		}

		existingHome := slotFromHash(b.hi[lane], t.slotHashShift)
		existingPSL := psl(existingHome, slot)
		curPSLHere := psl(curHome, slot)

		// Robin Hood rule: the entry that has traveled farther from its
		// home (higher PSL) wins the slot; the richer incumbent is
		// displaced and carries on probing from here.
		if curPSLHere > existingPSL {
			b.hi[lane], curHi = curHi, b.hi[lane]
			b.lo[lane], curLo = curLo, b.lo[lane]
			b.vals[lane], curVal = curVal, b.vals[lane]

			t.noteProbe(curPSLHere, bktDist(bucketOf(curHome), bucketOf(slot)))
			curHome = existingHome
		}
	}
}

// maybeGrow triggers a grow when any of the three growth conditions is
// currently exceeded. Called proactively after a successful insert so the
// table enters its next operation already compliant.
func (t *Table) maybeGrow() error {
	if !t.needsGrow() {
		return nil
	}
	return t.grow()
}
