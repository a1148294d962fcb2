package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de productos (administración).
// El stock solo se descuenta vía checkout; aquí se edita explícitamente.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Si la referencia viene vacía se genera una única.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	referencia := in.Referencia
	if referencia == "" {
		referencia = generarReferencia()
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Referencia:       referencia,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		PrecioVenta:      in.PrecioVenta,
		PrecioPorMayor:   in.PrecioPorMayor,
		CantidadEnTienda: in.CantidadEnTienda,
		ImagenURL:        in.ImagenURL,
		CategoriaID:      in.CategoriaID,
		Activo:           activo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Referencia != nil {
		product.Referencia = *in.Referencia
	}
	if in.Nombre != nil {
		product.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		product.Descripcion = *in.Descripcion
	}
	if in.PrecioVenta != nil {
		product.PrecioVenta = *in.PrecioVenta
	}
	if in.PrecioPorMayor != nil {
		product.PrecioPorMayor = *in.PrecioPorMayor
	}
	if in.CantidadEnTienda != nil {
		product.CantidadEnTienda = *in.CantidadEnTienda
	}
	if in.ImagenURL != nil {
		product.ImagenURL = *in.ImagenURL
	}
	if in.CategoriaID != nil {
		product.CategoriaID = *in.CategoriaID
	}
	if in.Activo != nil {
		product.Activo = *in.Activo
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista todos los productos con filtro de búsqueda sobre nombre,
// referencia y nombre de categoría.
func (uc *ProductUseCase) List(search string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if !matchesSearch(search, p.Nombre, p.Referencia, p.CategoriaNombre) {
			continue
		}
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// generarReferencia produce un código corto único, ej. REF-9F3A61B2.
func generarReferencia() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "REF-" + id[:8]
}

// ToProductResponse mapea la entidad a su proyección.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Referencia:       p.Referencia,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		PrecioVenta:      p.PrecioVenta,
		PrecioPorMayor:   p.PrecioPorMayor,
		CantidadEnTienda: p.CantidadEnTienda,
		ImagenURL:        p.ImagenURL,
		CategoriaID:      p.CategoriaID,
		CategoriaNombre:  p.CategoriaNombre,
		Activo:           p.Activo,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
