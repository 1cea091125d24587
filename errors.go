package mapv

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Sentinel errors surfaced across the public API. Callers should compare
// against these with errors.Is rather than matching on message text.
var (
	// ErrBadAlignment is returned by Create when Config.MemAlign is not a
	// multiple of 32.
	ErrBadAlignment = errors.New("mapv: memAlign must be a multiple of 32")

	// ErrBadConfig is returned by Create when a non-alignment field of
	// Config is out of range, and (wrapped) by Insert when a key hashes to
	// the reserved (0,0) identity.
	ErrBadConfig = errors.New("mapv: invalid config")

	// ErrKeyExists is returned by Insert when overwriteIfExists is false
	// and an entry with the same 128-bit hash already exists.
	ErrKeyExists = errors.New("mapv: key exists")

	// ErrKeyNotFound is returned by Delete when no entry matches the key.
	ErrKeyNotFound = errors.New("mapv: key not found")

	// ErrMapIsNull is returned by Destroy when called on a nil or already
	// destroyed table.
	ErrMapIsNull = errors.New("mapv: map is null")

	// ErrTableGrowFailed is returned (wrapped) by Insert when an automatic
	// grow could not relieve pressure on the table even after doubling
	// capacity. This indicates an unreachable state; check for it with
	// errors.Is rather than assuming the table is still in any particular
	// shape.
	ErrTableGrowFailed = errors.New("mapv: table grow failed")

	// errTableMustGrow is internal: it never crosses the public API. Insert
	// catches it, grows the table, and retries exactly once.
	errTableMustGrow = errors.New("mapv: table must grow")
)

// fatalClass marks an unreachable-state error: a rehash that, immediately
// after doubling capacity, again reports that it must grow. This should
// never happen in practice; when it does, the caller gets a
// distinguishable, annotated error rather than a silent retry loop.
var fatalClass = errs.Class("mapv: invariant violated")

// newFatalError annotates a rehash-invariant violation with the table
// metadata that would otherwise only have been useful in a crash dump.
// It wraps both ErrTableGrowFailed, so callers can check for it with
// errors.Is without caring about the unexported fatal class, and cause
// (typically errTableMustGrow), so the underlying reason is preserved.
func newFatalError(stats TableStats, cause error) error {
	return fatalClass.Wrap(fmt.Errorf(
		"table still requires growth immediately after doubling capacity "+
			"(capacity=%d realCapacity=%d used=%d loadPct=%d maxPSL=%d maxBktDist=%d): %w (%w)",
		stats.Capacity, stats.RealCapacity, stats.Used, stats.LoadPercent,
		stats.MaxPSL, stats.MaxBucketDistance, ErrTableGrowFailed, cause,
	))
}
