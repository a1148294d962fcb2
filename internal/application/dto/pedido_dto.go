package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest datos de envío y pago para convertir el carrito en pedido.
type CheckoutRequest struct {
	ADomicilio     bool   `json:"a_domicilio"`
	MetodoPago     string `json:"metodo_pago"`
	DireccionEnvio string `json:"direccion_envio"`
}

// LineaPedidoResponse línea de pedido con el precio capturado.
type LineaPedidoResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// PedidoResponse proyección de pedido.
type PedidoResponse struct {
	ID               string                `json:"id"`
	ClienteID        string                `json:"cliente_id"`
	ClienteNombre    string                `json:"cliente_nombre,omitempty"`
	ClienteApellidos string                `json:"cliente_apellidos,omitempty"`
	FechaHoraPedido  time.Time             `json:"fecha_hora_pedido"`
	Pagado           bool                  `json:"pagado"`
	Estado           string                `json:"estado"`
	ADomicilio       bool                  `json:"a_domicilio"`
	MetodoPago       string                `json:"metodo_pago"`
	DireccionEnvio   string                `json:"direccion_envio,omitempty"`
	Total            decimal.Decimal       `json:"total"`
	Lineas           []LineaPedidoResponse `json:"lineas,omitempty"`
}

// UpdateEstadoRequest cambio de estado desde administración.
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// UpdatePagadoRequest marca de pago desde administración.
type UpdatePagadoRequest struct {
	Pagado bool `json:"pagado"`
}
