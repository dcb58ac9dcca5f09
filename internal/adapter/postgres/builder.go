package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder with PostgreSQL $n placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// JoinColumns renders a column list for RETURNING clauses.
func JoinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
