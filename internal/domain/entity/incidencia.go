package entity

import "time"

// Tipos de incidencia.
const (
	IncidenciaConRetraso  = "CON_RETRASO"
	IncidenciaDanado      = "DANADO"
	IncidenciaDevuelto    = "DEVUELTO"
	IncidenciaPerdido     = "PERDIDO"
	IncidenciaFalloDePago = "FALLO_DE_PAGO"
)

// ValidTipoIncidencia indica si s es un tipo de incidencia conocido.
func ValidTipoIncidencia(s string) bool {
	switch s {
	case IncidenciaConRetraso, IncidenciaDanado, IncidenciaDevuelto, IncidenciaPerdido, IncidenciaFalloDePago:
		return true
	}
	return false
}

// Estados de una incidencia.
const (
	IncidenciaPendiente = "PENDIENTE"
	IncidenciaAceptada  = "ACEPTADA"
	IncidenciaRechazada = "RECHAZADA"
)

// ValidEstadoIncidencia indica si s es un estado de incidencia conocido.
func ValidEstadoIncidencia(s string) bool {
	switch s {
	case IncidenciaPendiente, IncidenciaAceptada, IncidenciaRechazada:
		return true
	}
	return false
}

// Incidencia representa una reclamación de un cliente sobre uno de sus pedidos.
// Se crea en estado PENDIENTE; solo el administrador cambia el estado después.
type Incidencia struct {
	ID          string
	ClienteID   string
	PedidoID    string
	Descripcion string
	Tipo        string // CON_RETRASO, DANADO, DEVUELTO, PERDIDO, FALLO_DE_PAGO
	Estado      string // PENDIENTE, ACEPTADA, RECHAZADA
	CreatedAt   time.Time

	// Campos del join para los listados de administración.
	ClienteNombre    string
	ClienteApellidos string
	ClienteEmail     string
}
