package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type fakeReservas struct {
	reservas map[string]*entity.Reserva
}

func (f *fakeReservas) Create(r *entity.Reserva) error { f.reservas[r.ID] = r; return nil }
func (f *fakeReservas) GetByID(id string) (*entity.Reserva, error) {
	r, ok := f.reservas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}
func (f *fakeReservas) ListByCliente(clienteID string) ([]*entity.Reserva, error) {
	var out []*entity.Reserva
	for _, r := range f.reservas {
		if r.ClienteID == clienteID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReservas) List() ([]*entity.Reserva, error) {
	out := make([]*entity.Reserva, 0, len(f.reservas))
	for _, r := range f.reservas {
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeReservas) UpdateEstado(id, estado string) error {
	r, ok := f.reservas[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Estado = estado
	return nil
}
func (f *fakeReservas) Delete(id string) error { delete(f.reservas, id); return nil }

type fakeProducts struct {
	products map[string]*entity.Product
}

func (f *fakeProducts) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (f *fakeProducts) GetByReferencia(string) (*entity.Product, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeProducts) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProducts) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProducts) ListActive() ([]*entity.Product, error) { return f.List() }
func (f *fakeProducts) Delete(id string) error                 { delete(f.products, id); return nil }
func (f *fakeProducts) DecrementStock(id string, cantidad int) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.CantidadEnTienda < cantidad {
		return domain.ErrInsufficientStock
	}
	p.CantidadEnTienda -= cantidad
	return nil
}

func buildReservaUC() (*usecase.ReservaUseCase, *fakeReservas, *fakeProducts) {
	reservas := &fakeReservas{reservas: map[string]*entity.Reserva{}}
	products := &fakeProducts{products: map[string]*entity.Product{
		"prod-a": {ID: "prod-a", Nombre: "Taladro", PrecioVenta: decimal.NewFromInt(10), CantidadEnTienda: 5, Activo: true},
	}}
	return usecase.NewReservaUseCase(reservas, products), reservas, products
}

func TestReservaCreate_NacePendienteConCodigo(t *testing.T) {
	uc, repo, _ := buildReservaUC()

	out, err := uc.Create("ana", dto.CreateReservaRequest{ProductoID: "prod-a", Cantidad: 2})
	require.NoError(t, err)

	assert.Equal(t, entity.ReservaPendiente, out.Estado, "toda reserva nace PENDIENTE")
	assert.True(t, strings.HasPrefix(out.Codigo, "RES-"), "el código debe ser legible para el mostrador")
	assert.Equal(t, "Taladro", out.ProductoNombre)
	assert.Len(t, repo.reservas, 1)
}

func TestReservaCreate_ProductoInactivo_Rechazada(t *testing.T) {
	uc, repo, products := buildReservaUC()
	products.products["prod-a"].Activo = false

	_, err := uc.Create("ana", dto.CreateReservaRequest{ProductoID: "prod-a", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.reservas)
}

func TestReservaCreate_CantidadInvalida_Rechazada(t *testing.T) {
	uc, _, _ := buildReservaUC()

	_, err := uc.Create("ana", dto.CreateReservaRequest{ProductoID: "prod-a", Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReservaUpdateEstado_SoloValoresDelEnumerado(t *testing.T) {
	uc, repo, _ := buildReservaUC()
	repo.reservas["res-1"] = &entity.Reserva{ID: "res-1", ClienteID: "ana", Estado: entity.ReservaPendiente}

	require.NoError(t, uc.UpdateEstado("res-1", entity.ReservaPagada))
	assert.Equal(t, entity.ReservaPagada, repo.reservas["res-1"].Estado)

	err := uc.UpdateEstado("res-1", "ANULADA")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReservaList_FiltraPorCodigoClienteProducto(t *testing.T) {
	uc, repo, _ := buildReservaUC()
	repo.reservas["res-1"] = &entity.Reserva{
		ID: "res-1", ClienteID: "ana", Codigo: "RES-AAAAAA",
		ClienteNombre: "Ana", ClienteApellidos: "García", ProductoNombre: "Taladro",
		Estado: entity.ReservaPendiente,
	}
	repo.reservas["res-2"] = &entity.Reserva{
		ID: "res-2", ClienteID: "luis", Codigo: "RES-BBBBBB",
		ClienteNombre: "Luis", ClienteApellidos: "Pérez", ProductoNombre: "Brocas",
		Estado: entity.ReservaRecogida,
	}

	out, err := uc.List("res-aaaaaa")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "res-1", out[0].ID)

	out, err = uc.List("brocas")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "res-2", out[0].ID)

	out, err = uc.List("")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
