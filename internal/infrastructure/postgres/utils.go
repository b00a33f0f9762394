package postgres

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// setClause acumula asignaciones "col = $n" y sus argumentos para construir
// el SET de un UPDATE parcial. El primer placeholder libre es $2 ($1 es el id).
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, val any) {
	s.cols = append(s.cols, col+" = $"+strconv.Itoa(len(s.args)+2))
	s.args = append(s.args, val)
}

func (s *setClause) empty() bool { return len(s.cols) == 0 }

func (s *setClause) sql() string { return strings.Join(s.cols, ", ") }
