package mapv

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Table is a single-threaded, in-memory, probabilistic hash table built on
// Robin Hood open addressing with backward-shift deletion. A Table is not
// safe for concurrent use; all serialization is left to the caller.
type Table struct {
	cfg    Config
	hasher Hasher
	logger log.Logger

	raw     []byte   // backing allocation; buckets aliases its aligned region
	buckets []bucket // bucketsReal buckets, laid out per layout.go

	capacity    uint64 // logical capacity (power of two)
	bucketCount uint64 // logical bucket count (capacity / bucketSlots)
	bucketsReal uint64 // physical bucket count, including overflow tail
	slotsReal   uint64 // bucketsReal * bucketSlots

	slotHashShift uint32 // shift applied to a hash's high bits for home slot

	used uint64 // live entry count

	// maxPSL and maxBucketDist track the worst-case probe length and
	// inter-bucket distance observed across all live entries. distBktIter
	// is the derived "+1" bucket-walk bound Find/Delete use to terminate
	// their probes, kept in lockstep with maxBucketDist; the slot-level
	// counterpart isn't needed separately since Insert's placement loop is
	// bounded by the physical slot count, not by maxPSL.
	maxPSL        uint64
	maxBucketDist uint64
	distBktIter   uint64

	destroyed bool
}

// TableStats is a point-in-time snapshot of a Table's occupancy and probe
// bookkeeping, exposed for diagnostics and tests.
type TableStats struct {
	Capacity          uint64
	RealCapacity      uint64
	Used              uint64
	LoadPercent       uint32
	MaxPSL            uint64
	MaxBucketDistance uint64
}

// Create allocates and initializes a new Table. It validates cfg, installs
// defaults for an unset Hasher or Logger, computes the initial physical
// layout from cfg.InitialSlotCount (rounded up to a power of two), and
// carves out an aligned backing buffer.
func Create(cfg Config) (*Table, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Hasher == nil {
		cfg.Hasher = newDefaultHasher()
	}
	logger := cfg.logger()

	capacity := nextPow2(cfg.InitialSlotCount)
	if capacity < bucketSlots {
		capacity = bucketSlots
	}

	t := &Table{cfg: cfg, hasher: cfg.Hasher, logger: logger}
	t.installLayout(computeLayout(cfg, capacity))

	level.Debug(logger).Log(
		"msg", "table created",
		"capacity", t.capacity,
		"bucketsReal", t.bucketsReal,
		"memAlign", cfg.MemAlign,
	)
	return t, nil
}

// installLayout allocates a fresh backing buffer for l and adopts it as
// the table's current layout, resetting all probe-bound bookkeeping. It is
// used both by Create and by grow.go's redistribution step.
func (t *Table) installLayout(l tableLayout) {
	raw, buckets := allocAligned(l.bucketsReal, t.cfg.MemAlign)

	t.raw = raw
	t.buckets = buckets
	t.capacity = l.capacity
	t.bucketCount = l.buckets
	t.bucketsReal = l.bucketsReal
	t.slotsReal = l.slotsReal
	t.slotHashShift = l.slotHashShift

	t.used = 0
	t.maxPSL = 0
	t.maxBucketDist = 0
	t.distBktIter = 1
}

// noteProbe folds an observed PSL/bucket-distance pair from a just-placed
// entry into the table's running maximums, widening the probe-iteration
// bounds Find/Insert/Delete use to terminate their scans.
func (t *Table) noteProbe(entryPSL, entryBucketDist uint64) {
	if entryPSL > t.maxPSL {
		t.maxPSL = entryPSL
	}
	if entryBucketDist > t.maxBucketDist {
		t.maxBucketDist = entryBucketDist
		t.distBktIter = entryBucketDist + 1
	}
}

// loadPercent returns the current load factor as an integer percentage of
// logical capacity.
func (t *Table) loadPercent() uint32 {
	if t.capacity == 0 {
		return 0
	}
	return uint32((t.used * 100) / t.capacity)
}

// needsGrow reports whether any of the three growth triggers is currently
// exceeded: max PSL, max inter-bucket distance, or load factor.
func (t *Table) needsGrow() bool {
	return t.maxPSL > uint64(t.cfg.DistSlotMax) ||
		t.maxBucketDist > uint64(t.cfg.DistBktMax) ||
		t.loadPercent() > t.cfg.CapPctMax
}

// Stats returns a snapshot of the table's current occupancy and probe
// bookkeeping.
func (t *Table) Stats() TableStats {
	return TableStats{
		Capacity:          t.capacity,
		RealCapacity:      t.slotsReal,
		Used:              t.used,
		LoadPercent:       t.loadPercent(),
		MaxPSL:            t.maxPSL,
		MaxBucketDistance: t.maxBucketDist,
	}
}

// Destroy releases the table's backing buffer. A Table must not be used
// after Destroy; calling Destroy on an already-destroyed table returns
// ErrMapIsNull.
func (t *Table) Destroy() error {
	if t.destroyed {
		return ErrMapIsNull
	}
	t.raw = nil
	t.buckets = nil
	t.destroyed = true
	return nil
}
