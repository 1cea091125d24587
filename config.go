package mapv

import (
	"fmt"

	"github.com/go-kit/log"
)

// Config holds the immutable settings a Table is created with. None of
// its fields may be changed after Create.
type Config struct {
	// DistSlotMax is the hard cap on per-entry probe sequence length
	// (PSL). Exceeding it during Insert forces a rehash.
	DistSlotMax uint32

	// DistBktMax is the hard cap on inter-bucket distance (home bucket to
	// actual bucket). Exceeding it during Insert forces a rehash.
	DistBktMax uint32

	// CapPctMax is the load-factor percentage ceiling. Exceeding it
	// during Insert forces a rehash.
	CapPctMax uint32

	// MemAlign is the alignment, in bytes, of the table's backing buffer.
	// Must be a multiple of 32 to satisfy a 256-bit-wide aligned load of
	// a bucket's hi or lo array.
	MemAlign uint32

	// InitialSlotCount is a seed capacity hint. The table's actual
	// initial capacity is the next power of two at least this large.
	InitialSlotCount uint64

	// Hasher produces the keyed 128-bit hash used for key identity. If
	// nil, Create installs a default siphash-backed Hasher (see hash.go).
	// Callers with adversarial-input concerns should supply their own
	// keyed instance; the default's keys are fixed for convenience, not
	// for DoS resistance.
	Hasher Hasher

	// Logger receives structured debug/error events around capacity
	// growth. If nil, a no-op logger is installed.
	Logger log.Logger
}

// validate checks the subset of Config that Create must reject before
// allocating anything.
func (c Config) validate() error {
	if c.MemAlign == 0 || c.MemAlign%32 != 0 {
		return fmt.Errorf("%w: got %d", ErrBadAlignment, c.MemAlign)
	}
	if c.DistSlotMax < 4 {
		return fmt.Errorf("%w: distSlotMax must be >= 4, got %d", ErrBadConfig, c.DistSlotMax)
	}
	if c.DistBktMax < 1 {
		return fmt.Errorf("%w: distBktMax must be >= 1, got %d", ErrBadConfig, c.DistBktMax)
	}
	if c.CapPctMax == 0 || c.CapPctMax > 100 {
		return fmt.Errorf("%w: capPctMax must be in (0,100], got %d", ErrBadConfig, c.CapPctMax)
	}
	return nil
}

// logger returns the configured logger, or a no-op one if none was set.
func (c Config) logger() log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.NewNopLogger()
}
