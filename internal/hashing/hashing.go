// Package hashing provides duplicate detection for game records.
package hashing

import (
	"slices"
	"strconv"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// Fingerprint hashes the tags, in key order, and the movetext of game.
// Offsets and the Partial flag are not part of it.
func Fingerprint(game *chess.Game) uint64 {
	keys := make([]string, 0, len(game.Tags))
	for k := range game.Tags {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	d := xxhash.New()
	for _, k := range keys {
		d.WriteString(k)
		d.Write([]byte{0})
		d.WriteString(game.Tags[k])
		d.Write([]byte{0})
	}
	d.Write([]byte{1})
	d.WriteString(game.Moves)
	return d.Sum64()
}

// DuplicateDetector remembers the fingerprints of the most recent records
// it has seen, up to a fixed capacity. It is safe for concurrent use.
type DuplicateDetector struct {
	seen       *lru.Cache[uint64, struct{}]
	duplicates atomic.Int64
	evicted    atomic.Int64
}

// NewDuplicateDetector creates a detector remembering up to capacity
// fingerprints. Older fingerprints are forgotten first.
func NewDuplicateDetector(capacity int) (*DuplicateDetector, error) {
	if capacity < 1 {
		return nil, &errors.ConfigError{Key: "dedupe_capacity", Value: strconv.Itoa(capacity), Reason: "must be at least 1"}
	}
	d := &DuplicateDetector{}
	cache, err := lru.NewWithEvict(capacity, func(uint64, struct{}) {
		d.evicted.Add(1)
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	d.seen = cache
	return d, nil
}

// CheckAndAdd checks if game was already seen and remembers it.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(game *chess.Game) bool {
	found, _ := d.seen.ContainsOrAdd(Fingerprint(game), struct{}{})
	if found {
		d.duplicates.Add(1)
	}
	return found
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int64 {
	return d.duplicates.Load()
}

// UniqueCount returns the number of fingerprints currently remembered.
func (d *DuplicateDetector) UniqueCount() int {
	return d.seen.Len()
}

// EvictedCount returns how many fingerprints were forgotten for lack of
// capacity. Duplicates of those records go undetected.
func (d *DuplicateDetector) EvictedCount() int64 {
	return d.evicted.Load()
}

// Reset forgets every fingerprint and zeroes the counters.
func (d *DuplicateDetector) Reset() {
	d.seen.Purge()
	d.duplicates.Store(0)
	d.evicted.Store(0)
}
