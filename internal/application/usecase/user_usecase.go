package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. No hay eliminación: la baja se
// hace desactivando con el update parcial.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con la contraseña hasheada con bcrypt.
// Devuelve ErrDuplicate si el username ya existe (activo o no).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser && role != entity.RoleSeller {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		Active:       true,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario, o nil, nil si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista los usuarios.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica una actualización parcial. Si viene contraseña nueva se
// hashea antes de llegar al repositorio. nil, nil si el id no existe.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	patch := entity.UserPatch{
		Name:   in.Name,
		Email:  in.Email,
		Active: in.Active,
	}
	if in.Role != nil {
		role := *in.Role
		if role != entity.RoleAdmin && role != entity.RoleUser && role != entity.RoleSeller {
			return nil, domain.ErrInvalidInput
		}
		patch.Role = in.Role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		patch.PasswordHash = &h
	}
	user, err := uc.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
