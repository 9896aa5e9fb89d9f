package postgres

import "database/sql"

// Queryer es el subconjunto de *sql.DB que usan los repositorios.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
