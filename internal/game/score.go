package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxScore is the best possible score for a submission.
const MaxScore = ChallengeSize

var (
	// ErrWrongLength is returned for submissions that are not exactly five ids.
	ErrWrongLength = errors.New("submitted order must contain exactly five university ids")
	// ErrDuplicateID is returned when the same university appears twice.
	ErrDuplicateID = errors.New("submitted order contains a duplicate university id")
	// ErrUnknownID is returned for ids that are not part of the day's game.
	ErrUnknownID = errors.New("submitted order contains a university not in today's game")
)

// ValidateOrder checks a submitted ordering against the set of universities
// actually in the game. It must pass before Score is called.
func ValidateOrder(submitted []uuid.UUID, gameIDs []uuid.UUID) error {
	if len(submitted) != ChallengeSize {
		return fmt.Errorf("%w: got %d", ErrWrongLength, len(submitted))
	}

	allowed := make(map[uuid.UUID]struct{}, len(gameIDs))
	for _, id := range gameIDs {
		allowed[id] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, ChallengeSize)
	for _, id := range submitted {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
		if _, ok := allowed[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownID, id)
		}
	}
	return nil
}

// Score counts exact position matches between the submitted order and the
// true order. Range 0..5. Pure: no I/O, no randomness.
//
// An older revision of the game gave distance-based partial credit
// (N-1-|i-j| per item); that policy is gone on purpose. Do not blend the two.
func Score(submitted, truth []uuid.UUID) int {
	matches := 0
	for i := range truth {
		if i < len(submitted) && submitted[i] == truth[i] {
			matches++
		}
	}
	return matches
}
