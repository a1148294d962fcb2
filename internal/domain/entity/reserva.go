package entity

import "time"

// Estados de una reserva.
const (
	ReservaPendiente = "PENDIENTE"
	ReservaPagada    = "PAGADA"
	ReservaRecogida  = "RECOGIDA"
)

// ValidEstadoReserva indica si s es un estado de reserva conocido.
func ValidEstadoReserva(s string) bool {
	switch s {
	case ReservaPendiente, ReservaPagada, ReservaRecogida:
		return true
	}
	return false
}

// Reserva representa un apartado de producto para recogida en tienda.
type Reserva struct {
	ID              string
	ClienteID       string
	ProductoID      string
	Codigo          string // código legible para el mostrador, ej. RES-4F7A21
	FechaHoraReserva time.Time
	Cantidad        int
	Estado          string // PENDIENTE, PAGADA, RECOGIDA
	CreatedAt       time.Time

	// Campos del join para los listados de administración.
	ClienteNombre    string
	ClienteApellidos string
	ProductoNombre   string
}
