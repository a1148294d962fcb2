package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func buildPedidoUC() (*usecase.PedidoUseCase, *fakePedidos) {
	pedidos := &fakePedidos{pedidos: map[string]*entity.Pedido{
		"pedido-1": {ID: "pedido-1", ClienteID: "ana", Estado: entity.EstadoEnPreparacion},
		"pedido-2": {ID: "pedido-2", ClienteID: "ana", Estado: entity.EstadoEnviado},
		"pedido-3": {ID: "pedido-3", ClienteID: "luis", Estado: entity.EstadoEnPreparacion},
	}}
	return usecase.NewPedidoUseCase(pedidos), pedidos
}

func TestPedidoCancel_EnPreparacion_Cancela(t *testing.T) {
	uc, repo := buildPedidoUC()

	require.NoError(t, uc.Cancel("ana", "pedido-1"))
	assert.Equal(t, entity.EstadoCancelado, repo.pedidos["pedido-1"].Estado)
}

func TestPedidoCancel_YaEnviado_Conflicto(t *testing.T) {
	uc, repo := buildPedidoUC()

	err := uc.Cancel("ana", "pedido-2")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un pedido ya enviado no puede cancelarlo el cliente")
	assert.Equal(t, entity.EstadoEnviado, repo.pedidos["pedido-2"].Estado)
}

func TestPedidoCancel_PedidoAjeno_Prohibido(t *testing.T) {
	uc, repo := buildPedidoUC()

	err := uc.Cancel("ana", "pedido-3")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.EstadoEnPreparacion, repo.pedidos["pedido-3"].Estado)
}

func TestPedidoGetForCliente_PedidoAjeno_Prohibido(t *testing.T) {
	uc, _ := buildPedidoUC()

	_, err := uc.GetForCliente("ana", "pedido-3")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.GetForCliente("ana", "pedido-1")
	require.NoError(t, err)
	assert.Equal(t, "pedido-1", out.ID)
}

func TestPedidoUpdateEstado_SoloValoresDelEnumerado(t *testing.T) {
	uc, repo := buildPedidoUC()

	require.NoError(t, uc.UpdateEstado("pedido-1", entity.EstadoEnReparto))
	assert.Equal(t, entity.EstadoEnReparto, repo.pedidos["pedido-1"].Estado)

	err := uc.UpdateEstado("pedido-1", "PERDIDO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPedidoList_FiltraPorIdClienteEstado(t *testing.T) {
	uc, repo := buildPedidoUC()
	repo.pedidos["pedido-1"].ClienteNombre = "Ana"
	repo.pedidos["pedido-1"].ClienteApellidos = "García"

	out, err := uc.List("ana garcía")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pedido-1", out[0].ID)

	out, err = uc.List("ENVIADO")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pedido-2", out[0].ID)
}
