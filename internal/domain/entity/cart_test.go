package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCart_TotalSumaCantidadPorPrecio(t *testing.T) {
	cart := &entity.Cart{Items: []entity.CartItem{
		{ProductoID: "a", PrecioUnitario: dec("10.00"), Cantidad: 2},
		{ProductoID: "b", PrecioUnitario: dec("2.50"), Cantidad: 2},
	}}

	assert.True(t, dec("25.00").Equal(cart.Total()), "2×10.00 + 2×2.50 = 25.00")
}

func TestCart_AddItemAcumula(t *testing.T) {
	cart := &entity.Cart{}
	cart.AddItem(entity.CartItem{ProductoID: "a", PrecioUnitario: dec("10.00"), Cantidad: 1})
	cart.AddItem(entity.CartItem{ProductoID: "a", PrecioUnitario: dec("10.00"), Cantidad: 2})

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Cantidad)
}

func TestCart_SetItemCeroElimina(t *testing.T) {
	cart := &entity.Cart{}
	cart.AddItem(entity.CartItem{ProductoID: "a", PrecioUnitario: dec("10.00"), Cantidad: 2})
	cart.SetItem(entity.CartItem{ProductoID: "a", Cantidad: 0})

	assert.True(t, cart.IsEmpty())
}

func TestCart_RemoveItemInexistenteNoFalla(t *testing.T) {
	cart := &entity.Cart{}
	cart.RemoveItem("no-existe")
	assert.True(t, cart.IsEmpty())
}

func TestPagadoAlInstante(t *testing.T) {
	assert.True(t, entity.PagadoAlInstante(entity.PagoTarjeta))
	assert.True(t, entity.PagadoAlInstante(entity.PagoBizum))
	assert.False(t, entity.PagadoAlInstante(entity.PagoEfectivo))
	assert.False(t, entity.PagadoAlInstante(entity.PagoTransferencia))
	assert.False(t, entity.PagadoAlInstante(entity.PagoContraReembolso))
	assert.False(t, entity.PagadoAlInstante(entity.PagoPaypal))
}

func TestPedido_CancelableSoloEnPreparacion(t *testing.T) {
	p := &entity.Pedido{Estado: entity.EstadoEnPreparacion}
	assert.True(t, p.Cancelable())

	for _, estado := range []string{entity.EstadoEnviado, entity.EstadoEnReparto, entity.EstadoEntregado, entity.EstadoCancelado} {
		p.Estado = estado
		assert.False(t, p.Cancelable(), "estado %s no debe ser cancelable por el cliente", estado)
	}
}
