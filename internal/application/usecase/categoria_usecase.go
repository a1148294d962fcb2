package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD de categorías (administración).
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoriaUseCase) Create(in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Update actualiza una categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != "" {
		categoria.Nombre = in.Nombre
	}
	categoria.Descripcion = in.Descripcion
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// List lista todas las categorías.
func (uc *CategoriaUseCase) List() ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoriaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		CreatedAt:   c.CreatedAt,
	}
}
