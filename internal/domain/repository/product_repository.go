package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByReferencia(referencia string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	Delete(id string) error
	// DecrementStock descuenta cantidad del stock de forma atómica con suelo en cero:
	// retorna domain.ErrInsufficientStock si no hay existencias suficientes.
	DecrementStock(id string, cantidad int) error
}
