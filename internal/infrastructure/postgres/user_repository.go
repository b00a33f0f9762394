package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password_hash, name, email, role, active, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email, &u.Role, &u.Active, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario; la DB asigna id y created_at.
// Devuelve ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, name, email, role, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		user.Username, user.PasswordHash, user.Name, user.Email, user.Role, user.Active,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id, o nil, nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username, o nil, nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios (activos o no) en orden de id.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update aplica el parche con un único UPDATE ... RETURNING y devuelve el
// registro fusionado, o nil, nil si el id no existe. Un parche vacío se
// resuelve como un GetByID.
func (r *UserRepo) Update(id int64, patch entity.UserPatch) (*entity.User, error) {
	var set setClause
	if patch.PasswordHash != nil {
		set.add("password_hash", *patch.PasswordHash)
	}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}
	if patch.Role != nil {
		set.add("role", *patch.Role)
	}
	if patch.Active != nil {
		set.add("active", *patch.Active)
	}
	if set.empty() {
		return r.GetByID(id)
	}
	query := `UPDATE users SET ` + set.sql() + ` WHERE id = $1 RETURNING ` + userColumns
	args := append([]any{id}, set.args...)
	u, err := scanUser(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
