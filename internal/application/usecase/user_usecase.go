package usecase

import (
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios desde administración: listado, cambio de rol
// y baja. El administrador que actúa queda excluido del listado y no puede
// cambiarse el rol a sí mismo (guardia de autodegradación).
type UserUseCase struct {
	profileRepo repository.ProfileRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(profileRepo repository.ProfileRepository) *UserUseCase {
	return &UserUseCase{profileRepo: profileRepo}
}

// List lista los perfiles excluyendo al actor, con filtro de búsqueda sobre
// nombre completo, email, dni y teléfono.
func (uc *UserUseCase) List(actorID, search string) ([]dto.ProfileResponse, error) {
	list, err := uc.profileRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		if p.ID == actorID {
			continue
		}
		nombreCompleto := p.Nombre + " " + p.Apellidos
		if !matchesSearch(search, nombreCompleto, p.Email, p.DNI, p.Telefono) {
			continue
		}
		items = append(items, *auth.ToProfileResponse(p))
	}
	return items, nil
}

// UpdateRol cambia el rol de un usuario a cualquier valor del enumerado.
// Rechaza el cambio sobre el propio actor.
func (uc *UserUseCase) UpdateRol(actorID, userID, rol string) error {
	if !entity.ValidRol(rol) {
		return domain.ErrInvalidInput
	}
	if actorID == userID {
		return domain.ErrForbidden
	}
	return uc.profileRepo.UpdateRol(userID, rol)
}

// Delete elimina el perfil de un usuario. El actor no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(actorID, userID string) error {
	if actorID == userID {
		return domain.ErrForbidden
	}
	return uc.profileRepo.Delete(userID)
}
