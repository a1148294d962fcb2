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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.referencia, p.nombre, p.descripcion, p.precio_venta, p.precio_por_mayor,
	p.cantidad_en_tienda, p.imagen_url, p.categoria_id, p.activo, p.created_at, p.updated_at,
	COALESCE(c.nombre, '')`

const productFrom = ` FROM productos p LEFT JOIN categorias c ON c.id = p.categoria_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var descripcion, imagenURL, categoriaID *string
	err := row.Scan(
		&p.ID, &p.Referencia, &p.Nombre, &descripcion, &p.PrecioVenta, &p.PrecioPorMayor,
		&p.CantidadEnTienda, &imagenURL, &categoriaID, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoriaNombre,
	)
	if err != nil {
		return nil, err
	}
	p.Descripcion = emptyIfNull(descripcion)
	p.ImagenURL = emptyIfNull(imagenURL)
	p.CategoriaID = emptyIfNull(categoriaID)
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, referencia, nombre, descripcion, precio_venta, precio_por_mayor, cantidad_en_tienda, imagen_url, categoria_id, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Referencia, product.Nombre, nullIfEmpty(product.Descripcion),
		product.PrecioVenta, product.PrecioPorMayor, product.CantidadEnTienda,
		nullIfEmpty(product.ImagenURL), nullIfEmpty(product.CategoriaID), product.Activo,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByReferencia obtiene un producto por su referencia única.
func (r *ProductRepo) GetByReferencia(referencia string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.referencia = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, referencia))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get producto by referencia: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. El stock no se toca aquí: solo DecrementStock
// o la edición explícita de cantidad desde administración pasan por este camino.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET referencia = $2, nombre = $3, descripcion = $4, precio_venta = $5, precio_por_mayor = $6, cantidad_en_tienda = $7, imagen_url = $8, categoria_id = $9, activo = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Referencia, product.Nombre, nullIfEmpty(product.Descripcion),
		product.PrecioVenta, product.PrecioPorMayor, product.CantidadEnTienda,
		nullIfEmpty(product.ImagenURL), nullIfEmpty(product.CategoriaID), product.Activo,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los productos (administración).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + productFrom + ` ORDER BY p.created_at DESC`)
}

// ListActive lista los productos activos (catálogo público).
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + productFrom + ` WHERE p.activo ORDER BY p.created_at DESC`)
}

func (r *ProductRepo) list(query string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// DecrementStock descuenta cantidad del stock en una sola sentencia con suelo en cero.
// El WHERE con la comparación de existencias hace el decremento atómico: dos checkouts
// concurrentes sobre el mismo producto nunca dejan el stock negativo ni pierden escrituras.
func (r *ProductRepo) DecrementStock(id string, cantidad int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad_en_tienda = cantidad_en_tienda - $2, updated_at = now()
		 WHERE id = $1 AND cantidad_en_tienda >= $2`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
