package game

import (
	"testing"

	"github.com/google/uuid"
)

func sampleUniversities() []University {
	return []University{
		{ID: uuid.UUID{1}, Name: "Alder", Ranking: 3, StudentCount: 40000, FoundedYear: 1850, CampusArea: 120},
		{ID: uuid.UUID{2}, Name: "Birch", Ranking: 1, StudentCount: 15000, FoundedYear: 1209, CampusArea: 280},
		{ID: uuid.UUID{3}, Name: "Cedar", Ranking: 5, StudentCount: 65000, FoundedYear: 1965, CampusArea: 90},
		{ID: uuid.UUID{4}, Name: "Dogwood", Ranking: 2, StudentCount: 22000, FoundedYear: 1636, CampusArea: 85},
		{ID: uuid.UUID{5}, Name: "Elm", Ranking: 4, StudentCount: 31000, FoundedYear: 1991, CampusArea: 300},
	}
}

func TestTrueOrderDirections(t *testing.T) {
	unis := sampleUniversities()
	byName := make(map[uuid.UUID]string, len(unis))
	for _, u := range unis {
		byName[u.ID] = u.Name
	}

	tests := []struct {
		metric Metric
		want   []string
	}{
		// Global rank: lower numeral first.
		{MetricRanking, []string{"Birch", "Dogwood", "Alder", "Elm", "Cedar"}},
		// Student count: largest first.
		{MetricStudentCount, []string{"Cedar", "Alder", "Elm", "Dogwood", "Birch"}},
		// Founding year: newest first.
		{MetricFoundedYear, []string{"Elm", "Cedar", "Alder", "Dogwood", "Birch"}},
		// Campus area: largest first.
		{MetricCampusArea, []string{"Elm", "Birch", "Alder", "Cedar", "Dogwood"}},
	}

	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			order := tt.metric.TrueOrder(unis)
			for i, id := range order {
				if byName[id] != tt.want[i] {
					t.Errorf("position %d: got %s, want %s", i, byName[id], tt.want[i])
				}
			}
		})
	}
}

func TestTrueOrderTieBreaksOnID(t *testing.T) {
	tied := []University{
		{ID: uuid.UUID{9}, Ranking: 1, StudentCount: 100},
		{ID: uuid.UUID{3}, Ranking: 1, StudentCount: 100},
		{ID: uuid.UUID{6}, Ranking: 1, StudentCount: 100},
	}
	want := []uuid.UUID{{3}, {6}, {9}}

	for _, m := range []Metric{MetricRanking, MetricStudentCount} {
		order := m.TrueOrder(tied)
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("%s: tie-break position %d = %s, want %s", m, i, order[i], want[i])
			}
		}
	}
}

func TestTrueOrderDoesNotMutateInput(t *testing.T) {
	unis := sampleUniversities()
	first := unis[0].ID
	MetricStudentCount.TrueOrder(unis)
	if unis[0].ID != first {
		t.Error("TrueOrder reordered its input slice")
	}
}

func TestMetricStringRoundTrip(t *testing.T) {
	for _, m := range []Metric{MetricRanking, MetricStudentCount, MetricFoundedYear, MetricCampusArea} {
		parsed, err := ParseMetric(m.String())
		if err != nil {
			t.Fatalf("ParseMetric(%q) failed: %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("round trip %v -> %q -> %v", m, m.String(), parsed)
		}
	}
	if _, err := ParseMetric("ALPHABETICAL"); err == nil {
		t.Error("ParseMetric accepted an unknown metric name")
	}
}
