// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DailyGamesColumns holds the columns for the "daily_games" table.
	DailyGamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "date_key", Type: field.TypeString, Unique: true},
		{Name: "ranking_by", Type: field.TypeEnum, Enums: []string{"RANKING", "STUDENT_COUNT", "FOUNDED_YEAR", "CAMPUS_AREA"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DailyGamesTable holds the schema information for the "daily_games" table.
	DailyGamesTable = &schema.Table{
		Name:       "daily_games",
		Columns:    DailyGamesColumns,
		PrimaryKey: []*schema.Column{DailyGamesColumns[0]},
	}
	// GameEntriesColumns holds the columns for the "game_entries" table.
	GameEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "daily_game_entries", Type: field.TypeUUID},
		{Name: "university_entries", Type: field.TypeUUID},
	}
	// GameEntriesTable holds the schema information for the "game_entries" table.
	GameEntriesTable = &schema.Table{
		Name:       "game_entries",
		Columns:    GameEntriesColumns,
		PrimaryKey: []*schema.Column{GameEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "game_entries_daily_games_entries",
				Columns:    []*schema.Column{GameEntriesColumns[2]},
				RefColumns: []*schema.Column{DailyGamesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "game_entries_universities_entries",
				Columns:    []*schema.Column{GameEntriesColumns[3]},
				RefColumns: []*schema.Column{UniversitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "gameentry_position_daily_game_entries",
				Unique:  true,
				Columns: []*schema.Column{GameEntriesColumns[1], GameEntriesColumns[2]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeInt},
		{Name: "final_order", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "daily_game_submissions", Type: field.TypeUUID},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_daily_games_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[5]},
				RefColumns: []*schema.Column{DailyGamesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_user_id_daily_game_submissions",
				Unique:  true,
				Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[5]},
			},
		},
	}
	// UniversitiesColumns holds the columns for the "universities" table.
	UniversitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "country", Type: field.TypeString},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "ranking", Type: field.TypeInt},
		{Name: "student_count", Type: field.TypeInt},
		{Name: "founded_year", Type: field.TypeInt},
		{Name: "campus_area", Type: field.TypeFloat64},
	}
	// UniversitiesTable holds the schema information for the "universities" table.
	UniversitiesTable = &schema.Table{
		Name:       "universities",
		Columns:    UniversitiesColumns,
		PrimaryKey: []*schema.Column{UniversitiesColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"viewer", "admin"}, Default: "viewer"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DailyGamesTable,
		GameEntriesTable,
		SubmissionsTable,
		UniversitiesTable,
		UsersTable,
	}
)

func init() {
	GameEntriesTable.ForeignKeys[0].RefTable = DailyGamesTable
	GameEntriesTable.ForeignKeys[1].RefTable = UniversitiesTable
	SubmissionsTable.ForeignKeys[0].RefTable = DailyGamesTable
}
