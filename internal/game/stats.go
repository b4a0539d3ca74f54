package game

import "math"

// Stats summarizes a set of submission scores: arithmetic mean rounded to
// one decimal, total count, and a dense histogram over the full 0..5 range.
// Zero-count buckets stay present so distribution charts render empty bars
// instead of dropping them.
type Stats struct {
	Average      float64           `json:"average_score"`
	Total        int               `json:"total"`
	Distribution [MaxScore + 1]int `json:"distribution"`
}

// Aggregate computes Stats over a list of scores. Out-of-range scores are
// counted toward the average but not the histogram; the schema's check
// constraint makes them unreachable in practice.
func Aggregate(scores []int) Stats {
	var s Stats
	s.Total = len(scores)
	if s.Total == 0 {
		return s
	}

	sum := 0
	for _, sc := range scores {
		sum += sc
		if sc >= 0 && sc <= MaxScore {
			s.Distribution[sc]++
		}
	}
	s.Average = math.Round(float64(sum)/float64(s.Total)*10) / 10
	return s
}
