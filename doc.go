/*
Package mapv provides an in-memory, probabilistic hash table mapping
byte-string keys to 64-bit values.

mapv trades exact key storage for identity via a strong keyed 128-bit
hash: inserted keys are never retained, only their hash halves. This
keeps every stored record a fixed 24 bytes (two uint64 hash halves plus
a uint64 value) and lets lookups stay inside a handful of cache lines
regardless of key length.

Basic usage:

	tbl, err := mapv.Create(mapv.Config{
		DistSlotMax:      32,
		DistBktMax:       8,
		CapPctMax:        90,
		MemAlign:         4096,
		InitialSlotCount: 1024,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer tbl.Destroy()

	if err := tbl.Insert([]byte("one"), 1, false); err != nil {
		log.Fatal(err)
	}

	if val, ok := tbl.Find([]byte("one")); ok {
		fmt.Println("value:", val)
	}

Features:

  - Four-wide bucketed layout (struct-of-arrays hi/lo/value) sized for
    a single aligned vector load per bucket; the lane-matching step is a
    portable scalar loop over the four lanes on every platform.
  - Robin Hood displacement on insert and backward-shift deletion, so
    probe sequence length stays short without tombstones.
  - Automatic, load-factor- and probe-distance-triggered growth:
    capacity only ever doubles, never shrinks.
  - Single-threaded: callers needing concurrent access must provide
    their own external synchronization.

Implementation details:

The table is a flat array of fixed-size buckets (4 slots each) plus a
trailing overflow region so that probes started near the end of the
table never need to wrap around. A slot's "home" is derived from the
high bits of its entry's 128-bit hash, which is why capacity is always
kept a power of two. Insertion may displace ("Robin Hood") an existing
entry whose probe distance is smaller than the new entry's, keeping the
worst-case probe length short under adversarial insert orders.
*/
package mapv
