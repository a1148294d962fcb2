package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest añade un producto al carrito (acumula cantidad).
type AddCartItemRequest struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

// SetCartItemRequest fija la cantidad de un producto. Cantidad 0 lo elimina.
type SetCartItemRequest struct {
	Cantidad int `json:"cantidad"`
}

// CartItemResponse entrada del carrito.
type CartItemResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
}

// CartResponse carrito completo con total.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}
