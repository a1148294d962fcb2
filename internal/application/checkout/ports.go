package checkout

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Pedido, líneas y decrementos de stock se confirman todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CartStore es el puerto del carrito de sesión (implementado sobre Redis).
type CartStore interface {
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, userID string, cart *entity.Cart) error
	Clear(ctx context.Context, userID string) error
}
