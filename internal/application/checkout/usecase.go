package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CheckoutUseCase convierte el carrito de sesión en un pedido persistido.
type CheckoutUseCase struct {
	txRunner    TxRunner
	cartStore   CartStore
	productRepo repository.ProductRepository
	pedidoRepo  repository.PedidoRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	txRunner TxRunner,
	cartStore CartStore,
	productRepo repository.ProductRepository,
	pedidoRepo repository.PedidoRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:    txRunner,
		cartStore:   cartStore,
		productRepo: productRepo,
		pedidoRepo:  pedidoRepo,
	}
}

// PlaceOrder crea el pedido, sus líneas y los decrementos de stock en UNA sola
// transacción: o se confirma todo o no queda nada (sin pedidos huérfanos ni
// stock descontado a medias). El carrito solo se vacía tras el commit.
//
// Precondiciones: carrito no vacío; si es a domicilio, dirección de envío no
// vacía; efectivo no se admite a domicilio (regla de la tienda).
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.PedidoResponse, error) {
	cart, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if !entity.ValidMetodoPago(in.MetodoPago) {
		return nil, domain.ErrInvalidInput
	}
	if in.ADomicilio && in.DireccionEnvio == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ADomicilio && in.MetodoPago == entity.PagoEfectivo {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	pedido := &entity.Pedido{
		ID:              uuid.New().String(),
		ClienteID:       userID,
		FechaHoraPedido: now,
		Pagado:          entity.PagadoAlInstante(in.MetodoPago),
		Estado:          entity.EstadoEnPreparacion,
		ADomicilio:      in.ADomicilio,
		MetodoPago:      in.MetodoPago,
		CreatedAt:       now,
	}
	if in.ADomicilio {
		pedido.DireccionEnvio = in.DireccionEnvio
	}

	var lineas []*entity.LineaPedido

	err = uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productRepo repository.ProductRepository,
	) error {
		// Releer cada producto dentro de la tx: el precio capturado en la línea
		// es el vigente en el momento del pedido, no el que vio el carrito.
		total := decimal.Zero
		lineas = lineas[:0]
		for _, item := range cart.Items {
			product, err := productRepo.GetByID(item.ProductoID)
			if err != nil {
				return err
			}
			if !product.Activo {
				return domain.ErrConflict
			}
			linea := &entity.LineaPedido{
				ID:             uuid.New().String(),
				PedidoID:       pedido.ID,
				ProductoID:     product.ID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: product.PrecioVenta,
				ProductoNombre: product.Nombre,
			}
			lineas = append(lineas, linea)
			total = total.Add(linea.Subtotal())
		}
		pedido.Total = total

		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}
		for _, linea := range lineas {
			if err := pedidoRepo.CreateLinea(linea); err != nil {
				return err
			}
		}
		// Decremento atómico con suelo en cero; ErrInsufficientStock aborta
		// y revierte el pedido completo.
		for _, linea := range lineas {
			if err := productRepo.DecrementStock(linea.ProductoID, linea.Cantidad); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Pedido confirmado: vaciar el carrito. Si el borrado falla, el pedido ya
	// existe; el carrito caducará solo por TTL.
	_ = uc.cartStore.Clear(ctx, userID)

	pedido.Lineas = lineas
	return ToPedidoResponse(pedido), nil
}

// ToPedidoResponse mapea la entidad a su proyección.
func ToPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	out := &dto.PedidoResponse{
		ID:               p.ID,
		ClienteID:        p.ClienteID,
		ClienteNombre:    p.ClienteNombre,
		ClienteApellidos: p.ClienteApellidos,
		FechaHoraPedido:  p.FechaHoraPedido,
		Pagado:           p.Pagado,
		Estado:           p.Estado,
		ADomicilio:       p.ADomicilio,
		MetodoPago:       p.MetodoPago,
		DireccionEnvio:   p.DireccionEnvio,
		Total:            p.Total,
	}
	for _, l := range p.Lineas {
		out.Lineas = append(out.Lineas, dto.LineaPedidoResponse{
			ID:             l.ID,
			ProductoID:     l.ProductoID,
			ProductoNombre: l.ProductoNombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
		})
	}
	return out
}
