package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type fakeIncidencias struct {
	incidencias map[string]*entity.Incidencia
}

func (f *fakeIncidencias) Create(in *entity.Incidencia) error { f.incidencias[in.ID] = in; return nil }
func (f *fakeIncidencias) GetByID(id string) (*entity.Incidencia, error) {
	in, ok := f.incidencias[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return in, nil
}
func (f *fakeIncidencias) ListByCliente(clienteID string) ([]*entity.Incidencia, error) {
	var out []*entity.Incidencia
	for _, in := range f.incidencias {
		if in.ClienteID == clienteID {
			out = append(out, in)
		}
	}
	return out, nil
}
func (f *fakeIncidencias) List() ([]*entity.Incidencia, error) {
	out := make([]*entity.Incidencia, 0, len(f.incidencias))
	for _, in := range f.incidencias {
		out = append(out, in)
	}
	return out, nil
}
func (f *fakeIncidencias) UpdateEstado(id, estado string) error {
	in, ok := f.incidencias[id]
	if !ok {
		return domain.ErrNotFound
	}
	in.Estado = estado
	return nil
}
func (f *fakeIncidencias) Delete(id string) error { delete(f.incidencias, id); return nil }

type fakePedidos struct {
	pedidos map[string]*entity.Pedido
}

func (f *fakePedidos) Create(p *entity.Pedido) error           { f.pedidos[p.ID] = p; return nil }
func (f *fakePedidos) CreateLinea(*entity.LineaPedido) error   { return nil }
func (f *fakePedidos) GetByID(id string) (*entity.Pedido, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (f *fakePedidos) GetLineas(string) ([]*entity.LineaPedido, error) { return nil, nil }
func (f *fakePedidos) ListByCliente(clienteID string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.ClienteID == clienteID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePedidos) List() ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(f.pedidos))
	for _, p := range f.pedidos {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePedidos) UpdateEstado(id, estado string) error {
	p, ok := f.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Estado = estado
	return nil
}
func (f *fakePedidos) UpdatePagado(id string, pagado bool) error {
	p, ok := f.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Pagado = pagado
	return nil
}
func (f *fakePedidos) Delete(id string) error { delete(f.pedidos, id); return nil }

func buildIncidenciaUC() (*usecase.IncidenciaUseCase, *fakeIncidencias, *fakePedidos) {
	incidencias := &fakeIncidencias{incidencias: map[string]*entity.Incidencia{}}
	pedidos := &fakePedidos{pedidos: map[string]*entity.Pedido{
		"pedido-ana":  {ID: "pedido-ana", ClienteID: "ana", Estado: entity.EstadoEntregado},
		"pedido-luis": {ID: "pedido-luis", ClienteID: "luis", Estado: entity.EstadoEnviado},
	}}
	return usecase.NewIncidenciaUseCase(incidencias, pedidos), incidencias, pedidos
}

func TestIncidenciaCreate_NacePendiente(t *testing.T) {
	uc, repo, _ := buildIncidenciaUC()

	out, err := uc.Create("ana", dto.CreateIncidenciaRequest{
		PedidoID:    "pedido-ana",
		Tipo:        entity.IncidenciaDanado,
		Descripcion: "El paquete llegó golpeado",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.IncidenciaPendiente, out.Estado, "toda incidencia nace PENDIENTE")
	assert.Equal(t, "ana", out.ClienteID)
	assert.Len(t, repo.incidencias, 1)
}

func TestIncidenciaCreate_PedidoAjeno_Prohibido(t *testing.T) {
	uc, repo, _ := buildIncidenciaUC()

	_, err := uc.Create("ana", dto.CreateIncidenciaRequest{
		PedidoID:    "pedido-luis",
		Tipo:        entity.IncidenciaDanado,
		Descripcion: "Intento sobre pedido de otro",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"no se puede abrir incidencia sobre un pedido ajeno")
	assert.Empty(t, repo.incidencias, "el rechazo debe ocurrir antes de escribir nada")
}

func TestIncidenciaCreate_SinDescripcionOPedido_Rechazada(t *testing.T) {
	uc, repo, _ := buildIncidenciaUC()

	_, err := uc.Create("ana", dto.CreateIncidenciaRequest{
		PedidoID: "pedido-ana",
		Tipo:     entity.IncidenciaDanado,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("ana", dto.CreateIncidenciaRequest{
		Tipo:        entity.IncidenciaDanado,
		Descripcion: "sin pedido seleccionado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.incidencias)
}

func TestIncidenciaCreate_TipoDesconocido_Rechazada(t *testing.T) {
	uc, _, _ := buildIncidenciaUC()

	_, err := uc.Create("ana", dto.CreateIncidenciaRequest{
		PedidoID:    "pedido-ana",
		Tipo:        "OTRO",
		Descripcion: "tipo fuera del enumerado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIncidenciaUpdateEstado_SoloValoresDelEnumerado(t *testing.T) {
	uc, repo, _ := buildIncidenciaUC()
	repo.incidencias["inc-1"] = &entity.Incidencia{ID: "inc-1", ClienteID: "ana", Estado: entity.IncidenciaPendiente}

	require.NoError(t, uc.UpdateEstado("inc-1", entity.IncidenciaAceptada))
	assert.Equal(t, entity.IncidenciaAceptada, repo.incidencias["inc-1"].Estado)

	err := uc.UpdateEstado("inc-1", "RESUELTA")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIncidenciaList_FiltraPorBusqueda(t *testing.T) {
	uc, repo, _ := buildIncidenciaUC()
	repo.incidencias["inc-1"] = &entity.Incidencia{
		ID: "inc-1", ClienteID: "ana", ClienteNombre: "Ana", ClienteApellidos: "García",
		Descripcion: "Paquete golpeado", Tipo: entity.IncidenciaDanado, Estado: entity.IncidenciaPendiente,
	}
	repo.incidencias["inc-2"] = &entity.Incidencia{
		ID: "inc-2", ClienteID: "luis", ClienteNombre: "Luis", ClienteApellidos: "Pérez",
		Descripcion: "Nunca llegó", Tipo: entity.IncidenciaPerdido, Estado: entity.IncidenciaAceptada,
	}

	out, err := uc.List("golpeado")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "inc-1", out[0].ID)

	out, err = uc.List("luis pérez")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "inc-2", out[0].ID)

	out, err = uc.List("")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
