package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ReservaUseCase reservas de producto: alta por el cliente y gestión de estado
// desde administración.
type ReservaUseCase struct {
	repo        repository.ReservaRepository
	productRepo repository.ProductRepository
}

// NewReservaUseCase construye el caso de uso.
func NewReservaUseCase(repo repository.ReservaRepository, productRepo repository.ProductRepository) *ReservaUseCase {
	return &ReservaUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una reserva PENDIENTE con código legible para el mostrador.
func (uc *ReservaUseCase) Create(clienteID string, in dto.CreateReservaRequest) (*dto.ReservaResponse, error) {
	if in.ProductoID == "" || in.Cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if !product.Activo {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	reserva := &entity.Reserva{
		ID:               uuid.New().String(),
		ClienteID:        clienteID,
		ProductoID:       product.ID,
		Codigo:           generarCodigoReserva(),
		FechaHoraReserva: now,
		Cantidad:         in.Cantidad,
		Estado:           entity.ReservaPendiente,
		CreatedAt:        now,
		ProductoNombre:   product.Nombre,
	}
	if err := uc.repo.Create(reserva); err != nil {
		return nil, err
	}
	return toReservaResponse(reserva), nil
}

// ListByCliente lista las reservas del cliente.
func (uc *ReservaUseCase) ListByCliente(clienteID string) ([]dto.ReservaResponse, error) {
	list, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservaResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReservaResponse(r))
	}
	return items, nil
}

// List lista todas las reservas (administración) con filtro de búsqueda sobre
// código, nombre del cliente y nombre del producto.
func (uc *ReservaUseCase) List(search string) ([]dto.ReservaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservaResponse, 0, len(list))
	for _, r := range list {
		nombreCompleto := r.ClienteNombre + " " + r.ClienteApellidos
		if !matchesSearch(search, r.Codigo, nombreCompleto, r.ProductoNombre) {
			continue
		}
		items = append(items, *toReservaResponse(r))
	}
	return items, nil
}

// UpdateEstado cambia el estado de la reserva (administración).
func (uc *ReservaUseCase) UpdateEstado(reservaID, estado string) error {
	if !entity.ValidEstadoReserva(estado) {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateEstado(reservaID, estado)
}

// Delete elimina una reserva (administración).
func (uc *ReservaUseCase) Delete(reservaID string) error {
	return uc.repo.Delete(reservaID)
}

// generarCodigoReserva produce un código corto legible, ej. RES-4F7A21.
func generarCodigoReserva() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "RES-" + id[:6]
}

func toReservaResponse(r *entity.Reserva) *dto.ReservaResponse {
	if r == nil {
		return nil
	}
	return &dto.ReservaResponse{
		ID:               r.ID,
		ClienteID:        r.ClienteID,
		ClienteNombre:    r.ClienteNombre,
		ClienteApellidos: r.ClienteApellidos,
		ProductoID:       r.ProductoID,
		ProductoNombre:   r.ProductoNombre,
		Codigo:           r.Codigo,
		FechaHoraReserva: r.FechaHoraReserva,
		Cantidad:         r.Cantidad,
		Estado:           r.Estado,
	}
}
