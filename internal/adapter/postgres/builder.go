package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder configured for PostgreSQL
// ($1-style placeholders). Repositories use it as the root of every query.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
