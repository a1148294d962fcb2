package checkout

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// GetCart devuelve el carrito del usuario.
func (uc *CheckoutUseCase) GetCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// AddItem añade un producto al carrito, acumulando cantidad si ya estaba.
// Valida que el producto exista y esté activo; el precio mostrado se captura
// del catálogo vigente.
func (uc *CheckoutUseCase) AddItem(ctx context.Context, userID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
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
	cart, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.AddItem(entity.CartItem{
		ProductoID:     product.ID,
		Nombre:         product.Nombre,
		PrecioUnitario: product.PrecioVenta,
		Cantidad:       in.Cantidad,
	})
	if err := uc.cartStore.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// SetItemQuantity fija la cantidad de un producto del carrito. Cantidad 0 lo elimina.
func (uc *CheckoutUseCase) SetItemQuantity(ctx context.Context, userID, productoID string, cantidad int) (*dto.CartResponse, error) {
	if productoID == "" || cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	cart, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cantidad == 0 {
		cart.RemoveItem(productoID)
	} else {
		product, err := uc.productRepo.GetByID(productoID)
		if err != nil {
			return nil, err
		}
		cart.SetItem(entity.CartItem{
			ProductoID:     product.ID,
			Nombre:         product.Nombre,
			PrecioUnitario: product.PrecioVenta,
			Cantidad:       cantidad,
		})
	}
	if err := uc.cartStore.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// RemoveItem elimina un producto del carrito.
func (uc *CheckoutUseCase) RemoveItem(ctx context.Context, userID, productoID string) (*dto.CartResponse, error) {
	cart, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productoID)
	if err := uc.cartStore.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// ClearCart vacía el carrito a petición del usuario.
func (uc *CheckoutUseCase) ClearCart(ctx context.Context, userID string) error {
	return uc.cartStore.Clear(ctx, userID)
}

func toCartResponse(cart *entity.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, dto.CartItemResponse{
			ProductoID:     it.ProductoID,
			Nombre:         it.Nombre,
			PrecioUnitario: it.PrecioUnitario,
			Cantidad:       it.Cantidad,
		})
	}
	return &dto.CartResponse{Items: items, Total: cart.Total()}
}
