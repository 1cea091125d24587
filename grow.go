package mapv

import (
	"errors"

	"github.com/go-kit/log/level"
)

// grow doubles the table's logical capacity and redistributes every live
// entry into a freshly allocated layout. It walks the old physical slot
// range in ascending order (the old table's own probe order; this
// ordering is not observable from outside the table) and reinserts each
// occupied entry with overwriteIfExists set, since a key can never
// legitimately collide with itself during a rehash.
//
// If the freshly doubled table still can't accept every entry — which
// would mean capacity doubling failed to relieve pressure — that is
// treated as an unreachable state and reported as a fatal error rather
// than silently growing again, since a library must not decide to exit
// the caller's process for it.
func (t *Table) grow() error {
	oldBuckets := t.buckets
	oldSlotsReal := t.slotsReal

	newCapacity := nextPow2(t.capacity + 1)
	newLayout := computeLayout(t.cfg, newCapacity)

	level.Debug(t.logger).Log(
		"msg", "growing table",
		"oldCapacity", t.capacity,
		"newCapacity", newCapacity,
		"used", t.used,
	)

	t.installLayout(newLayout)

	for slot := uint64(0); slot < oldSlotsReal; slot++ {
		b := &oldBuckets[bucketOf(slot)]
		lane := laneOf(slot)
		if b.hi[lane] == 0 && b.lo[lane] == 0 {
			continue
		}

		h := Hash128{Hi: b.hi[lane], Lo: b.lo[lane]}
		if err := t.insertOnce(h, b.vals[lane], true); err != nil {
			if errors.Is(err, errTableMustGrow) {
				level.Error(t.logger).Log(
					"msg", "table still requires growth immediately after doubling capacity",
					"newCapacity", newCapacity,
				)
				return newFatalError(t.Stats(), err)
			}
			return err
		}
	}

	if t.needsGrow() {
		return newFatalError(t.Stats(), errTableMustGrow)
	}

	level.Debug(t.logger).Log("msg", "grow complete", "capacity", t.capacity, "used", t.used)
	return nil
}
