// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/schema"
	"github.com/gseier/UniRankle/ent/submission"
	"github.com/gseier/UniRankle/ent/university"
	"github.com/gseier/UniRankle/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dailygameFields := schema.DailyGame{}.Fields()
	_ = dailygameFields
	// dailygameDescDateKey is the schema descriptor for date_key field.
	dailygameDescDateKey := dailygameFields[1].Descriptor()
	// dailygame.DateKeyValidator is a validator for the "date_key" field. It is called by the builders before save.
	dailygame.DateKeyValidator = dailygameDescDateKey.Validators[0].(func(string) error)
	// dailygameDescCreatedAt is the schema descriptor for created_at field.
	dailygameDescCreatedAt := dailygameFields[3].Descriptor()
	// dailygame.DefaultCreatedAt holds the default value on creation for the created_at field.
	dailygame.DefaultCreatedAt = dailygameDescCreatedAt.Default.(func() time.Time)
	// dailygameDescID is the schema descriptor for id field.
	dailygameDescID := dailygameFields[0].Descriptor()
	// dailygame.DefaultID holds the default value on creation for the id field.
	dailygame.DefaultID = dailygameDescID.Default.(func() uuid.UUID)
	gameentryFields := schema.GameEntry{}.Fields()
	_ = gameentryFields
	// gameentryDescPosition is the schema descriptor for position field.
	gameentryDescPosition := gameentryFields[0].Descriptor()
	// gameentry.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	gameentry.PositionValidator = func() func(int) error {
		validators := gameentryDescPosition.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(position int) error {
			for _, fn := range fns {
				if err := fn(position); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescScore is the schema descriptor for score field.
	submissionDescScore := submissionFields[1].Descriptor()
	// submission.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	submission.ScoreValidator = func() func(int) error {
		validators := submissionDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[3].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	universityFields := schema.University{}.Fields()
	_ = universityFields
	// universityDescName is the schema descriptor for name field.
	universityDescName := universityFields[1].Descriptor()
	// university.NameValidator is a validator for the "name" field. It is called by the builders before save.
	university.NameValidator = universityDescName.Validators[0].(func(string) error)
	// universityDescCountry is the schema descriptor for country field.
	universityDescCountry := universityFields[2].Descriptor()
	// university.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	university.CountryValidator = universityDescCountry.Validators[0].(func(string) error)
	// universityDescRanking is the schema descriptor for ranking field.
	universityDescRanking := universityFields[4].Descriptor()
	// university.RankingValidator is a validator for the "ranking" field. It is called by the builders before save.
	university.RankingValidator = universityDescRanking.Validators[0].(func(int) error)
	// universityDescStudentCount is the schema descriptor for student_count field.
	universityDescStudentCount := universityFields[5].Descriptor()
	// university.StudentCountValidator is a validator for the "student_count" field. It is called by the builders before save.
	university.StudentCountValidator = universityDescStudentCount.Validators[0].(func(int) error)
	// universityDescFoundedYear is the schema descriptor for founded_year field.
	universityDescFoundedYear := universityFields[6].Descriptor()
	// university.FoundedYearValidator is a validator for the "founded_year" field. It is called by the builders before save.
	university.FoundedYearValidator = universityDescFoundedYear.Validators[0].(func(int) error)
	// universityDescCampusArea is the schema descriptor for campus_area field.
	universityDescCampusArea := universityFields[7].Descriptor()
	// university.CampusAreaValidator is a validator for the "campus_area" field. It is called by the builders before save.
	university.CampusAreaValidator = universityDescCampusArea.Validators[0].(func(float64) error)
	// universityDescID is the schema descriptor for id field.
	universityDescID := universityFields[0].Descriptor()
	// university.DefaultID holds the default value on creation for the id field.
	university.DefaultID = universityDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
