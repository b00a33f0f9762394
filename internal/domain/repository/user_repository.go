package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven nil, nil cuando el registro no existe.
// Los usuarios no se eliminan: la desactivación va por Update (Active=false).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	// Update aplica un parche parcial y devuelve el registro fusionado,
	// o nil, nil si el id no existe.
	Update(id int64, patch entity.UserPatch) (*entity.User, error)
}
