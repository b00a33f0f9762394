package memory

import (
	"time"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el adaptador sobre el Store dado.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create asigna id y fecha de creación y guarda el usuario.
// Devuelve ErrDuplicate si el username ya existe, activo o no.
func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.userSeq++
	user.ID = r.s.userSeq
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = *user
	return nil
}

// GetByID devuelve el usuario o nil, nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByUsername devuelve el usuario o nil, nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.users) {
		if u := r.s.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// List devuelve todos los usuarios en orden ascendente de id.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, id := range sortedIDs(r.s.users) {
		u := r.s.users[id]
		list = append(list, &u)
	}
	return list, nil
}

// Update fusiona el parche sobre el registro. Un parche vacío devuelve el
// registro sin cambios. nil, nil si el id no existe.
func (r *UserRepo) Update(id int64, patch entity.UserPatch) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}
	r.s.users[id] = u
	return &u, nil
}
