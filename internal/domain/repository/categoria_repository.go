package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	List() ([]*entity.Categoria, error)
	Delete(id string) error
}
