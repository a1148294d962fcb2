package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para Profile (DIP).
// GetByID retorna domain.ErrNotFound si el perfil no existe, para que el caso de
// uso de sesión pueda distinguir "perfil ausente" de otros fallos de lectura.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
	UpdateRol(id, rol string) error
	List() ([]*entity.Profile, error)
	Delete(id string) error
}
