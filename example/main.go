package main

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/theflywheel/mapv"
)

func main() {
	tbl, err := mapv.Create(mapv.Config{
		DistSlotMax:      16,
		DistBktMax:       4,
		CapPctMax:        90,
		MemAlign:         32,
		InitialSlotCount: 1024,
	})
	if err != nil {
		log.Fatalf("failed to create table: %v", err)
	}
	defer tbl.Destroy()

	fmt.Println("Table created successfully")

	for i := 0; i < 10; i++ {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, uint64(i))

		if err := tbl.Insert(key, uint64(i*100), false); err != nil {
			log.Fatalf("failed to insert key %d: %v", i, err)
		}
	}

	fmt.Println("Inserted 10 key-value pairs")

	for i := 0; i < 15; i += 2 {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, uint64(i))

		value, found := tbl.Find(key)
		if found {
			fmt.Printf("Key %d => Value %d\n", i, value)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(2))

	if err := tbl.Insert(key, 999, true); err != nil {
		log.Fatalf("failed to update key: %v", err)
	}

	if value, found := tbl.Find(key); found {
		fmt.Printf("Updated key 2 => Value %d\n", value)
	}

	if err := tbl.Delete(key); err != nil {
		log.Fatalf("failed to delete key: %v", err)
	}
	if _, found := tbl.Find(key); !found {
		fmt.Println("Key 2 deleted")
	}

	stats := tbl.Stats()
	fmt.Printf("Final stats: used=%d capacity=%d loadPercent=%d%% maxPSL=%d maxBucketDist=%d\n",
		stats.Used, stats.Capacity, stats.LoadPercent, stats.MaxPSL, stats.MaxBucketDistance)

	fmt.Println("Example completed successfully")
}
