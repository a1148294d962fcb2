package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `INSERT INTO categorias (id, nombre, descripcion, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nombre, nullIfEmpty(categoria.Descripcion), categoria.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT id, nombre, descripcion, created_at FROM categorias WHERE id = $1`
	var c entity.Categoria
	var descripcion *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Nombre, &descripcion, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	c.Descripcion = emptyIfNull(descripcion)
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET nombre = $2, descripcion = $3 WHERE id = $1`,
		categoria.ID, categoria.Nombre, nullIfEmpty(categoria.Descripcion),
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las categorías.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, descripcion, created_at FROM categorias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		var descripcion *string
		if err := rows.Scan(&c.ID, &c.Nombre, &descripcion, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		c.Descripcion = emptyIfNull(descripcion)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
