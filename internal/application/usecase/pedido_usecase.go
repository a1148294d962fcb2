package usecase

import (
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// PedidoUseCase consultas y gestión de pedidos: historial del cliente,
// autocancelación y pantalla de administración.
type PedidoUseCase struct {
	repo repository.PedidoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo}
}

// ListByCliente lista los pedidos del cliente con sus líneas.
func (uc *PedidoUseCase) ListByCliente(clienteID string) ([]dto.PedidoResponse, error) {
	list, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		lineas, err := uc.repo.GetLineas(p.ID)
		if err != nil {
			return nil, err
		}
		p.Lineas = lineas
		items = append(items, *checkout.ToPedidoResponse(p))
	}
	return items, nil
}

// GetForCliente obtiene un pedido del propio cliente con sus líneas.
func (uc *PedidoUseCase) GetForCliente(clienteID, pedidoID string) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido.ClienteID != clienteID {
		return nil, domain.ErrForbidden
	}
	lineas, err := uc.repo.GetLineas(pedido.ID)
	if err != nil {
		return nil, err
	}
	pedido.Lineas = lineas
	return checkout.ToPedidoResponse(pedido), nil
}

// Cancel permite al cliente cancelar su pedido mientras sigue en preparación.
func (uc *PedidoUseCase) Cancel(clienteID, pedidoID string) error {
	pedido, err := uc.repo.GetByID(pedidoID)
	if err != nil {
		return err
	}
	if pedido.ClienteID != clienteID {
		return domain.ErrForbidden
	}
	if !pedido.Cancelable() {
		return domain.ErrConflict
	}
	return uc.repo.UpdateEstado(pedidoID, entity.EstadoCancelado)
}

// List lista todos los pedidos (administración) con filtro de búsqueda sobre
// id, nombre del cliente y estado.
func (uc *PedidoUseCase) List(search string) ([]dto.PedidoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		nombreCompleto := p.ClienteNombre + " " + p.ClienteApellidos
		if !matchesSearch(search, p.ID, nombreCompleto, p.Estado) {
			continue
		}
		items = append(items, *checkout.ToPedidoResponse(p))
	}
	return items, nil
}

// UpdateEstado cambia el estado de un pedido (administración).
func (uc *PedidoUseCase) UpdateEstado(pedidoID, estado string) error {
	if !entity.ValidEstadoPedido(estado) {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateEstado(pedidoID, estado)
}

// UpdatePagado marca o desmarca un pedido como pagado (administración).
func (uc *PedidoUseCase) UpdatePagado(pedidoID string, pagado bool) error {
	return uc.repo.UpdatePagado(pedidoID, pagado)
}

// Delete elimina un pedido (administración).
func (uc *PedidoUseCase) Delete(pedidoID string) error {
	return uc.repo.Delete(pedidoID)
}
