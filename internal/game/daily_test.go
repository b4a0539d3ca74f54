package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func randomCatalog(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestPickDailyIdempotent(t *testing.T) {
	catalog := randomCatalog(30)

	for _, dateKey := range []string{"2025-01-01", "2025-06-15", "2026-08-30"} {
		m1, ids1, err := PickDaily(dateKey, catalog)
		if err != nil {
			t.Fatalf("PickDaily(%q) failed: %v", dateKey, err)
		}
		m2, ids2, err := PickDaily(dateKey, catalog)
		if err != nil {
			t.Fatalf("second PickDaily(%q) failed: %v", dateKey, err)
		}
		if m1 != m2 {
			t.Errorf("%s: metric changed between calls: %v vs %v", dateKey, m1, m2)
		}
		for i := range ids1 {
			if ids1[i] != ids2[i] {
				t.Errorf("%s: selection changed between calls at position %d", dateKey, i)
			}
		}
	}
}

func TestPickDailyIgnoresCatalogOrder(t *testing.T) {
	catalog := randomCatalog(20)
	reversed := make([]uuid.UUID, len(catalog))
	for i, id := range catalog {
		reversed[len(catalog)-1-i] = id
	}

	m1, ids1, err := PickDaily("2025-03-03", catalog)
	if err != nil {
		t.Fatal(err)
	}
	m2, ids2, err := PickDaily("2025-03-03", reversed)
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Errorf("metric depends on catalog order: %v vs %v", m1, m2)
	}
	for i := range ids1 {
		if ids1[i] != ids2[i] {
			t.Fatalf("selection depends on catalog order at position %d", i)
		}
	}
}

func TestPickDailySelectsFiveDistinct(t *testing.T) {
	for _, size := range []int{5, 6, 17, 100} {
		catalog := randomCatalog(size)
		_, ids, err := PickDaily("2025-10-06", catalog)
		if err != nil {
			t.Fatalf("catalog size %d: %v", size, err)
		}
		if len(ids) != ChallengeSize {
			t.Fatalf("catalog size %d: selected %d ids, want %d", size, len(ids), ChallengeSize)
		}
		seen := make(map[uuid.UUID]struct{}, ChallengeSize)
		inCatalog := make(map[uuid.UUID]struct{}, size)
		for _, id := range catalog {
			inCatalog[id] = struct{}{}
		}
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				t.Fatalf("catalog size %d: duplicate selection %s", size, id)
			}
			seen[id] = struct{}{}
			if _, ok := inCatalog[id]; !ok {
				t.Fatalf("catalog size %d: selected id %s not in catalog", size, id)
			}
		}
	}
}

func TestPickDailyCatalogTooSmall(t *testing.T) {
	for _, size := range []int{0, 1, 4} {
		_, _, err := PickDaily("2025-10-06", randomCatalog(size))
		if !errors.Is(err, ErrCatalogTooSmall) {
			t.Errorf("catalog size %d: err = %v, want ErrCatalogTooSmall", size, err)
		}
	}
}

func TestPickDailyVariesAcrossDates(t *testing.T) {
	// Not a strict guarantee, but with a 40-university catalog two hundred
	// consecutive days picking identical selections would mean the seed is
	// not reaching the shuffle at all.
	catalog := randomCatalog(40)
	_, first, err := PickDaily("2025-01-01", catalog)
	if err != nil {
		t.Fatal(err)
	}
	same := 0
	days := []string{
		"2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05", "2025-01-06",
		"2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10", "2025-01-11",
	}
	for _, day := range days {
		_, ids, err := PickDaily(day, catalog)
		if err != nil {
			t.Fatal(err)
		}
		identical := true
		for i := range ids {
			if ids[i] != first[i] {
				identical = false
				break
			}
		}
		if identical {
			same++
		}
	}
	if same == len(days) {
		t.Error("every date produced the same selection; seed is not being applied")
	}
}

func TestValidDateKey(t *testing.T) {
	valid := []string{"2025-01-01", "1999-12-31", "2026-08-30"}
	for _, s := range valid {
		if !ValidDateKey(s) {
			t.Errorf("ValidDateKey(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "2025-1-1", "2025/01/01", "20250101", "2025-13-01", "2025-02-30", "yesterday"}
	for _, s := range invalid {
		if ValidDateKey(s) {
			t.Errorf("ValidDateKey(%q) = true, want false", s)
		}
	}
}
