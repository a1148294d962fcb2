package dto

import "time"

// CreateIncidenciaRequest reclamación sobre un pedido propio.
type CreateIncidenciaRequest struct {
	PedidoID    string `json:"pedido_id"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
}

// IncidenciaResponse proyección de incidencia.
type IncidenciaResponse struct {
	ID               string    `json:"id"`
	ClienteID        string    `json:"cliente_id"`
	ClienteNombre    string    `json:"cliente_nombre,omitempty"`
	ClienteApellidos string    `json:"cliente_apellidos,omitempty"`
	ClienteEmail     string    `json:"cliente_email,omitempty"`
	PedidoID         string    `json:"pedido_id"`
	Descripcion      string    `json:"descripcion"`
	Tipo             string    `json:"tipo"`
	Estado           string    `json:"estado"`
	CreatedAt        time.Time `json:"created_at"`
}
