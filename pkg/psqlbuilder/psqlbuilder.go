// Package psqlbuilder pins squirrel to PostgreSQL dollar placeholders
// so that repositories do not repeat PlaceholderFormat on every query.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query with $N placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT query with $N placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE query with $N placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE query with $N placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
