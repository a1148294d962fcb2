package catalog

import (
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CatalogUseCase lecturas públicas del catálogo (sin autenticación).
type CatalogUseCase struct {
	productRepo   repository.ProductRepository
	categoriaRepo repository.CategoriaRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, categoriaRepo repository.CategoriaRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, categoriaRepo: categoriaRepo}
}

// ListProducts lista los productos activos con filtro de búsqueda opcional
// (subcadena, sin distinguir mayúsculas, sobre nombre, referencia y categoría).
func (uc *CatalogUseCase) ListProducts(search string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Nombre), term) &&
			!strings.Contains(strings.ToLower(p.Referencia), term) &&
			!strings.Contains(strings.ToLower(p.CategoriaNombre), term) {
			continue
		}
		items = append(items, *usecase.ToProductResponse(p))
	}
	return items, nil
}

// GetProduct obtiene un producto del catálogo por ID. Un producto desactivado
// no existe de cara al escaparate.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !product.Activo {
		return nil, domain.ErrNotFound
	}
	return usecase.ToProductResponse(product), nil
}

// ListCategories lista las categorías del catálogo.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoriaResponse, error) {
	list, err := uc.categoriaRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoriaResponse{
			ID:          c.ID,
			Nombre:      c.Nombre,
			Descripcion: c.Descripcion,
			CreatedAt:   c.CreatedAt,
		})
	}
	return items, nil
}
