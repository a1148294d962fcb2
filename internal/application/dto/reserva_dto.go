package dto

import "time"

// CreateReservaRequest apartado de un producto para recogida.
type CreateReservaRequest struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

// ReservaResponse proyección de reserva.
type ReservaResponse struct {
	ID               string    `json:"id"`
	ClienteID        string    `json:"cliente_id"`
	ClienteNombre    string    `json:"cliente_nombre,omitempty"`
	ClienteApellidos string    `json:"cliente_apellidos,omitempty"`
	ProductoID       string    `json:"producto_id"`
	ProductoNombre   string    `json:"producto_nombre,omitempty"`
	Codigo           string    `json:"codigo"`
	FechaHoraReserva time.Time `json:"fecha_hora_reserva"`
	Cantidad         int       `json:"cantidad"`
	Estado           string    `json:"estado"`
}
