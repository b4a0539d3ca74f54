package game

import "testing"

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		wantAvg  float64
		wantDist [MaxScore + 1]int
	}{
		{
			name:     "mixed scores",
			scores:   []int{0, 0, 3, 5, 5, 5},
			wantAvg:  3.0,
			wantDist: [MaxScore + 1]int{0: 2, 3: 1, 5: 3},
		},
		{
			name:     "single submission",
			scores:   []int{4},
			wantAvg:  4.0,
			wantDist: [MaxScore + 1]int{4: 1},
		},
		{
			name:     "rounds to one decimal",
			scores:   []int{1, 2, 2}, // 5/3 = 1.666...
			wantAvg:  1.7,
			wantDist: [MaxScore + 1]int{1: 1, 2: 2},
		},
		{
			name:     "rounds down",
			scores:   []int{1, 1, 2}, // 4/3 = 1.333...
			wantAvg:  1.3,
			wantDist: [MaxScore + 1]int{1: 2, 2: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.scores)
			if got.Total != len(tt.scores) {
				t.Errorf("Total = %d, want %d", got.Total, len(tt.scores))
			}
			if got.Average != tt.wantAvg {
				t.Errorf("Average = %v, want %v", got.Average, tt.wantAvg)
			}
			if got.Distribution != tt.wantDist {
				t.Errorf("Distribution = %v, want %v", got.Distribution, tt.wantDist)
			}
		})
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if got.Total != 0 || got.Average != 0 {
		t.Errorf("Aggregate(nil) = %+v, want zero Total and Average", got)
	}
	for i, n := range got.Distribution {
		if n != 0 {
			t.Errorf("Distribution[%d] = %d, want 0", i, n)
		}
	}
}

func TestAggregateDenseHistogram(t *testing.T) {
	// Buckets with no submissions must still be addressable with zero
	// counts; the chart renders six bars regardless of the data.
	got := Aggregate([]int{5, 5})
	if len(got.Distribution) != MaxScore+1 {
		t.Fatalf("histogram has %d buckets, want %d", len(got.Distribution), MaxScore+1)
	}
	for i := 0; i < MaxScore; i++ {
		if got.Distribution[i] != 0 {
			t.Errorf("Distribution[%d] = %d, want 0", i, got.Distribution[i])
		}
	}
	if got.Distribution[MaxScore] != 2 {
		t.Errorf("Distribution[%d] = %d, want 2", MaxScore, got.Distribution[MaxScore])
	}
}
