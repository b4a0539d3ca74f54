package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ChallengeSize is the number of universities in a daily game.
const ChallengeSize = 5

// DateKeyFormat is the canonical YYYY-MM-DD layout for date keys.
const DateKeyFormat = "2006-01-02"

// ErrCatalogTooSmall is returned when the catalog cannot fill a game.
// This is a configuration problem, not a transient failure.
var ErrCatalogTooSmall = errors.New("university catalog has fewer entries than a daily game needs")

// TodayKey returns the server's current UTC calendar day as a date key.
func TodayKey() string {
	return time.Now().UTC().Format(DateKeyFormat)
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD date key.
// Round-tripping through time.Parse rejects shapes like 2025-1-2 that
// Parse alone would accept under a looser layout.
func ValidDateKey(s string) bool {
	t, err := time.Parse(DateKeyFormat, s)
	return err == nil && t.Format(DateKeyFormat) == s
}

// PickDaily selects the metric and the five universities for a date key.
// The choice is a pure function of the date key and the catalog contents:
// the PRNG is seeded from a hash of the key and the catalog is put into a
// canonical order before shuffling, so every caller that sees the same
// catalog computes the same game. Concurrent first visits therefore race
// only on who inserts first, never on what gets inserted.
func PickDaily(dateKey string, catalog []uuid.UUID) (Metric, []uuid.UUID, error) {
	if len(catalog) < ChallengeSize {
		return 0, nil, fmt.Errorf("%w: have %d, need %d", ErrCatalogTooSmall, len(catalog), ChallengeSize)
	}

	rng := rand.New(rand.NewSource(seedFromKey(dateKey)))
	metric := Metric(rng.Intn(numMetrics))

	ids := make([]uuid.UUID, len(catalog))
	copy(ids, catalog)
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })

	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	return metric, ids[:ChallengeSize:ChallengeSize], nil
}

// seedFromKey hashes the date key into a PRNG seed. math/rand is fine here:
// there is nothing adversarial about guessing tomorrow's universities.
func seedFromKey(dateKey string) int64 {
	sum := sha256.Sum256([]byte(dateKey))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
