package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// fixedIDs returns n distinct, reproducible uuids.
func fixedIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.UUID{byte(i + 1)}
	}
	return ids
}

func TestScorePerfectMatch(t *testing.T) {
	order := fixedIDs(5)
	if got := Score(order, order); got != MaxScore {
		t.Errorf("Score(order, order) = %d, want %d", got, MaxScore)
	}
}

func TestScoreNearMiss(t *testing.T) {
	// True order [A,B,C,D,E], submission [A,B,C,E,D]: last two swapped.
	truth := fixedIDs(5)
	submitted := []uuid.UUID{truth[0], truth[1], truth[2], truth[4], truth[3]}
	if got := Score(submitted, truth); got != 3 {
		t.Errorf("Score with last two swapped = %d, want 3", got)
	}
}

func TestScoreReversal(t *testing.T) {
	// Full reversal matches only the middle element when N is odd,
	// and nothing when N is even.
	for _, n := range []int{4, 5, 6, 7} {
		truth := fixedIDs(n)
		reversed := make([]uuid.UUID, n)
		for i := range truth {
			reversed[i] = truth[n-1-i]
		}
		want := 0
		if n%2 == 1 {
			want = 1
		}
		if got := Score(reversed, truth); got != want {
			t.Errorf("n=%d: reversal score = %d, want %d", n, got, want)
		}
	}
}

func TestScoreRelabelingInvariance(t *testing.T) {
	truth := fixedIDs(5)
	submitted := []uuid.UUID{truth[2], truth[0], truth[1], truth[3], truth[4]}
	before := Score(submitted, truth)

	// Relabel both lists through the same bijection; the score must not move.
	relabel := make(map[uuid.UUID]uuid.UUID, 5)
	fresh := fixedIDs(10)[5:]
	for i, id := range truth {
		relabel[id] = fresh[i]
	}
	mapped := func(in []uuid.UUID) []uuid.UUID {
		out := make([]uuid.UUID, len(in))
		for i, id := range in {
			out[i] = relabel[id]
		}
		return out
	}
	after := Score(mapped(submitted), mapped(truth))
	if before != after {
		t.Errorf("score changed under relabeling: %d vs %d", before, after)
	}
}

func TestValidateOrder(t *testing.T) {
	gameIDs := fixedIDs(5)
	outsider := uuid.UUID{99}

	tests := []struct {
		name      string
		submitted []uuid.UUID
		wantErr   error
	}{
		{
			name:      "valid permutation",
			submitted: []uuid.UUID{gameIDs[4], gameIDs[2], gameIDs[0], gameIDs[1], gameIDs[3]},
			wantErr:   nil,
		},
		{
			name:      "too short",
			submitted: gameIDs[:4],
			wantErr:   ErrWrongLength,
		},
		{
			name:      "too long",
			submitted: append(append([]uuid.UUID{}, gameIDs...), gameIDs[0]),
			wantErr:   ErrWrongLength,
		},
		{
			name:      "duplicate id",
			submitted: []uuid.UUID{gameIDs[0], gameIDs[0], gameIDs[1], gameIDs[2], gameIDs[3]},
			wantErr:   ErrDuplicateID,
		},
		{
			name:      "id from outside the game",
			submitted: []uuid.UUID{gameIDs[0], gameIDs[1], gameIDs[2], gameIDs[3], outsider},
			wantErr:   ErrUnknownID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrder(tt.submitted, gameIDs)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateOrder() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateOrder() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
