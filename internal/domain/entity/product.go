package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// CantidadEnTienda solo se descuenta con el decremento atómico del repositorio
// (nunca leer-modificar-escribir), para no perder actualizaciones bajo compras concurrentes.
type Product struct {
	ID               string
	Referencia       string // código único; se genera si se omite
	Nombre           string
	Descripcion      string
	PrecioVenta      decimal.Decimal // precio al por menor
	PrecioPorMayor   decimal.Decimal
	CantidadEnTienda int
	ImagenURL        string
	CategoriaID      string
	Activo           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// CategoriaNombre viene del join con categorias en los listados; no se persiste aquí.
	CategoriaNombre string
}
