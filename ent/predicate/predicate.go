// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DailyGame is the predicate function for dailygame builders.
type DailyGame func(*sql.Selector)

// GameEntry is the predicate function for gameentry builders.
type GameEntry func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// University is the predicate function for university builders.
type University func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
