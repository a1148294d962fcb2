package entity

import "github.com/shopspring/decimal"

// LineaPedido representa una línea de un pedido: cantidad y precio unitario
// capturado en el momento del pedido (independiente de cambios posteriores de precio).
type LineaPedido struct {
	ID             string
	PedidoID       string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal

	// ProductoNombre viene del join con productos en los listados; no se persiste aquí.
	ProductoNombre string
}

// Subtotal devuelve cantidad × precio unitario.
func (l *LineaPedido) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}
