package game

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Metric is the ranking variable a daily game is played on. Each case carries
// its own comparison direction; "truth" for a game is defined by sorting the
// selected universities with the metric's comparator.
type Metric int

const (
	// MetricRanking orders by global rank, ascending (rank 1 first).
	MetricRanking Metric = iota
	// MetricStudentCount orders by enrollment, descending (largest first).
	MetricStudentCount
	// MetricFoundedYear orders by founding year, descending (newest first).
	MetricFoundedYear
	// MetricCampusArea orders by campus area, descending (largest first).
	MetricCampusArea

	numMetrics = 4
)

// University is the read-only view of a catalog row the core operates on.
type University struct {
	ID           uuid.UUID
	Name         string
	Ranking      int
	StudentCount int
	FoundedYear  int
	CampusArea   float64
}

// String returns the wire/storage name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricRanking:
		return "RANKING"
	case MetricStudentCount:
		return "STUDENT_COUNT"
	case MetricFoundedYear:
		return "FOUNDED_YEAR"
	case MetricCampusArea:
		return "CAMPUS_AREA"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric converts a stored metric name back into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "RANKING":
		return MetricRanking, nil
	case "STUDENT_COUNT":
		return MetricStudentCount, nil
	case "FOUNDED_YEAR":
		return MetricFoundedYear, nil
	case "CAMPUS_AREA":
		return MetricCampusArea, nil
	}
	return 0, fmt.Errorf("unknown ranking metric %q", s)
}

// Less reports whether a ranks strictly ahead of b under the metric.
// Equal attribute values tie-break on university id so the true order is
// total and reproducible.
func (m Metric) Less(a, b University) bool {
	switch m {
	case MetricRanking:
		if a.Ranking != b.Ranking {
			return a.Ranking < b.Ranking
		}
	case MetricStudentCount:
		if a.StudentCount != b.StudentCount {
			return a.StudentCount > b.StudentCount
		}
	case MetricFoundedYear:
		if a.FoundedYear != b.FoundedYear {
			return a.FoundedYear > b.FoundedYear
		}
	case MetricCampusArea:
		if a.CampusArea != b.CampusArea {
			return a.CampusArea > b.CampusArea
		}
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

// TrueOrder sorts the universities by the metric and returns their ids,
// best first. The input slice is not modified.
func (m Metric) TrueOrder(unis []University) []uuid.UUID {
	sorted := make([]University, len(unis))
	copy(sorted, unis)
	sort.Slice(sorted, func(i, j int) bool { return m.Less(sorted[i], sorted[j]) })

	ids := make([]uuid.UUID, len(sorted))
	for i, u := range sorted {
		ids[i] = u.ID
	}
	return ids
}
