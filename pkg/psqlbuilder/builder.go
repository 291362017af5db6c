package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder базовый builder с PostgreSQL-плейсхолдерами ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT builder с плейсхолдерами PostgreSQL
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT builder с плейсхолдерами PostgreSQL
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update создает UPDATE builder с плейсхолдерами PostgreSQL
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE builder с плейсхолдерами PostgreSQL
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
