package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "name"}
	postColumns = []string{"id", "text", "user_id"}
)

func (db *DB) buildSelectAllUsersQuery() (string, []any, error) {
	return wrapBuild(db.builder.
		Select(userColumns...).
		From("users").
		OrderBy("id").
		ToSql())
}

func (db *DB) buildSelectUserByIDQuery(id int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql())
}

func (db *DB) buildInsertUserQuery(name string) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert("users").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		ToSql())
}

func (db *DB) buildUpdateUserQuery(id int64, name string) (string, []any, error) {
	return wrapBuild(db.builder.
		Update("users").
		Set("name", name).
		Where(sq.Eq{"id": id}).
		ToSql())
}

func (db *DB) buildDeleteUserQuery(id int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql())
}

func (db *DB) buildSelectPostsByUserIDQuery(userID int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql())
}

func (db *DB) buildInsertPostQuery(text string, userID int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert("posts").
		Columns("text", "user_id").
		Values(text, userID).
		Suffix("RETURNING id, text, user_id").
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
