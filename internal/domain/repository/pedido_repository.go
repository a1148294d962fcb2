package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido y sus líneas (DIP).
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	CreateLinea(linea *entity.LineaPedido) error
	GetByID(id string) (*entity.Pedido, error)
	GetLineas(pedidoID string) ([]*entity.LineaPedido, error)
	ListByCliente(clienteID string) ([]*entity.Pedido, error)
	List() ([]*entity.Pedido, error)
	UpdateEstado(id, estado string) error
	UpdatePagado(id string, pagado bool) error
	Delete(id string) error
}
