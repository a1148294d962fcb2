package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de cliente.
const (
	EstadoEnPreparacion = "EN_PREPARACION"
	EstadoEnviado       = "ENVIADO"
	EstadoEnReparto     = "EN_REPARTO"
	EstadoEntregado     = "ENTREGADO"
	EstadoCancelado     = "CANCELADO"
)

// ValidEstadoPedido indica si s es un estado de pedido conocido.
func ValidEstadoPedido(s string) bool {
	switch s {
	case EstadoEnPreparacion, EstadoEnviado, EstadoEnReparto, EstadoEntregado, EstadoCancelado:
		return true
	}
	return false
}

// Métodos de pago aceptados.
const (
	PagoEfectivo        = "EFECTIVO"
	PagoTarjeta         = "TARJETA"
	PagoTransferencia   = "TRANSFERENCIA"
	PagoContraReembolso = "CONTRA_REEMBOLSO"
	PagoPaypal          = "PAYPAL"
	PagoBizum           = "BIZUM"
)

// ValidMetodoPago indica si s es un método de pago conocido.
func ValidMetodoPago(s string) bool {
	switch s {
	case PagoEfectivo, PagoTarjeta, PagoTransferencia, PagoContraReembolso, PagoPaypal, PagoBizum:
		return true
	}
	return false
}

// PagadoAlInstante indica si el método liquida el pago en el momento del checkout.
// Tarjeta y Bizum se cobran al confirmar; el resto queda pendiente de cobro.
func PagadoAlInstante(metodoPago string) bool {
	return metodoPago == PagoTarjeta || metodoPago == PagoBizum
}

// Pedido representa la cabecera de un pedido de cliente.
type Pedido struct {
	ID              string
	ClienteID       string
	FechaHoraPedido time.Time
	Pagado          bool
	Estado          string // EN_PREPARACION, ENVIADO, EN_REPARTO, ENTREGADO, CANCELADO
	ADomicilio      bool   // true: entrega a domicilio; false: recogida en tienda
	MetodoPago      string
	DireccionEnvio  string // solo cuando ADomicilio
	Total           decimal.Decimal
	CreatedAt       time.Time

	// Campos del join con profiles en los listados de administración.
	ClienteNombre    string
	ClienteApellidos string

	Lineas []*LineaPedido
}

// Cancelable indica si el cliente aún puede cancelar el pedido.
// Solo mientras está en preparación; después la cancelación es cosa del administrador.
func (p *Pedido) Cancelable() bool {
	return p.Estado == EstadoEnPreparacion
}
