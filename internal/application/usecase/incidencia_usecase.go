package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// IncidenciaUseCase reclamaciones de clientes sobre sus pedidos.
type IncidenciaUseCase struct {
	repo       repository.IncidenciaRepository
	pedidoRepo repository.PedidoRepository
}

// NewIncidenciaUseCase construye el caso de uso.
func NewIncidenciaUseCase(repo repository.IncidenciaRepository, pedidoRepo repository.PedidoRepository) *IncidenciaUseCase {
	return &IncidenciaUseCase{repo: repo, pedidoRepo: pedidoRepo}
}

// Create crea una incidencia PENDIENTE. Exige pedido seleccionado, descripción
// no vacía y que el pedido pertenezca al cliente; todo se valida antes de
// intentar cualquier escritura.
func (uc *IncidenciaUseCase) Create(clienteID string, in dto.CreateIncidenciaRequest) (*dto.IncidenciaResponse, error) {
	if in.PedidoID == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidTipoIncidencia(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	pedido, err := uc.pedidoRepo.GetByID(in.PedidoID)
	if err != nil {
		return nil, err
	}
	if pedido.ClienteID != clienteID {
		return nil, domain.ErrForbidden
	}
	incidencia := &entity.Incidencia{
		ID:          uuid.New().String(),
		ClienteID:   clienteID,
		PedidoID:    in.PedidoID,
		Descripcion: in.Descripcion,
		Tipo:        in.Tipo,
		Estado:      entity.IncidenciaPendiente,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(incidencia); err != nil {
		return nil, err
	}
	return toIncidenciaResponse(incidencia), nil
}

// ListByCliente lista las incidencias del cliente.
func (uc *IncidenciaUseCase) ListByCliente(clienteID string) ([]dto.IncidenciaResponse, error) {
	list, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidenciaResponse, 0, len(list))
	for _, in := range list {
		items = append(items, *toIncidenciaResponse(in))
	}
	return items, nil
}

// List lista todas las incidencias (administración) con filtro de búsqueda
// sobre descripción, tipo, estado y nombre del cliente.
func (uc *IncidenciaUseCase) List(search string) ([]dto.IncidenciaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidenciaResponse, 0, len(list))
	for _, in := range list {
		nombreCompleto := in.ClienteNombre + " " + in.ClienteApellidos
		if !matchesSearch(search, in.Descripcion, in.Tipo, in.Estado, nombreCompleto) {
			continue
		}
		items = append(items, *toIncidenciaResponse(in))
	}
	return items, nil
}

// UpdateEstado cambia el estado de la incidencia (administración).
func (uc *IncidenciaUseCase) UpdateEstado(incidenciaID, estado string) error {
	if !entity.ValidEstadoIncidencia(estado) {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateEstado(incidenciaID, estado)
}

// Delete elimina una incidencia (administración).
func (uc *IncidenciaUseCase) Delete(incidenciaID string) error {
	return uc.repo.Delete(incidenciaID)
}

func toIncidenciaResponse(in *entity.Incidencia) *dto.IncidenciaResponse {
	if in == nil {
		return nil
	}
	return &dto.IncidenciaResponse{
		ID:               in.ID,
		ClienteID:        in.ClienteID,
		ClienteNombre:    in.ClienteNombre,
		ClienteApellidos: in.ClienteApellidos,
		ClienteEmail:     in.ClienteEmail,
		PedidoID:         in.PedidoID,
		Descripcion:      in.Descripcion,
		Tipo:             in.Tipo,
		Estado:           in.Estado,
		CreatedAt:        in.CreatedAt,
	}
}
