package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para credenciales (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
