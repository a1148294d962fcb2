package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ReservaRepository define el puerto de persistencia para Reserva (DIP).
type ReservaRepository interface {
	Create(reserva *entity.Reserva) error
	GetByID(id string) (*entity.Reserva, error)
	ListByCliente(clienteID string) ([]*entity.Reserva, error)
	List() ([]*entity.Reserva, error)
	UpdateEstado(id, estado string) error
	Delete(id string) error
}
