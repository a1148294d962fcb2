package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// IncidenciaRepository define el puerto de persistencia para Incidencia (DIP).
type IncidenciaRepository interface {
	Create(incidencia *entity.Incidencia) error
	GetByID(id string) (*entity.Incidencia, error)
	ListByCliente(clienteID string) ([]*entity.Incidencia, error)
	List() ([]*entity.Incidencia, error)
	UpdateEstado(id, estado string) error
	Delete(id string) error
}
