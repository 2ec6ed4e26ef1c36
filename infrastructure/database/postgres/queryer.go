package postgres

import (
	"database/sql"
)

// Queryer é satisfeito tanto por *Connection quanto por *sql.Tx, permitindo
// que os repositórios executem as mesmas queries dentro ou fora de transação.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
