package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// foreignKeyConstraint reports which foreign key a 23503 violated, so
// callers can map it to the sentinel for the missing referenced row.
func foreignKeyConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike backslash-escapes LIKE/ILIKE metacharacters so user-supplied
// text matches literally. Queries using it must carry ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
