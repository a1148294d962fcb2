package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto desde administración.
// Referencia vacía: se genera una única automáticamente.
type CreateProductRequest struct {
	Referencia       string          `json:"referencia"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioPorMayor   decimal.Decimal `json:"precio_por_mayor"`
	CantidadEnTienda int             `json:"cantidad_en_tienda"`
	ImagenURL        string          `json:"imagen_url"`
	CategoriaID      string          `json:"categoria_id"`
	Activo           *bool           `json:"activo"`
}

// UpdateProductRequest edición parcial de producto.
type UpdateProductRequest struct {
	Referencia       *string          `json:"referencia"`
	Nombre           *string          `json:"nombre"`
	Descripcion      *string          `json:"descripcion"`
	PrecioVenta      *decimal.Decimal `json:"precio_venta"`
	PrecioPorMayor   *decimal.Decimal `json:"precio_por_mayor"`
	CantidadEnTienda *int             `json:"cantidad_en_tienda"`
	ImagenURL        *string          `json:"imagen_url"`
	CategoriaID      *string          `json:"categoria_id"`
	Activo           *bool            `json:"activo"`
}

// ProductResponse proyección de producto para catálogo y administración.
type ProductResponse struct {
	ID               string          `json:"id"`
	Referencia       string          `json:"referencia"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion,omitempty"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioPorMayor   decimal.Decimal `json:"precio_por_mayor"`
	CantidadEnTienda int             `json:"cantidad_en_tienda"`
	ImagenURL        string          `json:"imagen_url,omitempty"`
	CategoriaID      string          `json:"categoria_id,omitempty"`
	CategoriaNombre  string          `json:"categoria_nombre,omitempty"`
	Activo           bool            `json:"activo"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CategoriaRequest alta o edición de categoría.
type CategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse proyección de categoría.
type CategoriaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
