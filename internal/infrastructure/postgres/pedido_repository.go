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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera de un pedido.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos_cliente (id, cliente_id, fecha_hora_pedido, pagado, estado, a_domicilio, metodo_pago, direccion_envio, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.ClienteID, pedido.FechaHoraPedido, pedido.Pagado, pedido.Estado,
		pedido.ADomicilio, pedido.MetodoPago, nullIfEmpty(pedido.DireccionEnvio),
		pedido.Total, pedido.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateLinea persiste una línea de pedido con su precio capturado.
func (r *PedidoRepo) CreateLinea(linea *entity.LineaPedido) error {
	query := `
		INSERT INTO lineas_pedido (id, pedido_cliente_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		linea.ID, linea.PedidoID, linea.ProductoID, linea.Cantidad, linea.PrecioUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert linea pedido: %w", err)
	}
	return nil
}

const pedidoColumns = `p.id, p.cliente_id, p.fecha_hora_pedido, p.pagado, p.estado, p.a_domicilio,
	p.metodo_pago, p.direccion_envio, p.total, p.created_at,
	COALESCE(pr.nombre, ''), COALESCE(pr.apellidos, '')`

const pedidoFrom = ` FROM pedidos_cliente p LEFT JOIN profiles pr ON pr.id = p.cliente_id`

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	var direccion *string
	err := row.Scan(
		&p.ID, &p.ClienteID, &p.FechaHoraPedido, &p.Pagado, &p.Estado, &p.ADomicilio,
		&p.MetodoPago, &direccion, &p.Total, &p.CreatedAt,
		&p.ClienteNombre, &p.ClienteApellidos,
	)
	if err != nil {
		return nil, err
	}
	p.DireccionEnvio = emptyIfNull(direccion)
	return &p, nil
}

// GetByID obtiene un pedido por ID (sin líneas; ver GetLineas).
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + pedidoFrom + ` WHERE p.id = $1`
	p, err := scanPedido(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// GetLineas obtiene las líneas de un pedido con el nombre del producto.
func (r *PedidoRepo) GetLineas(pedidoID string) ([]*entity.LineaPedido, error) {
	query := `
		SELECT l.id, l.pedido_cliente_id, l.producto_id, l.cantidad, l.precio_unitario, COALESCE(pr.nombre, '')
		FROM lineas_pedido l LEFT JOIN productos pr ON pr.id = l.producto_id
		WHERE l.pedido_cliente_id = $1`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list lineas pedido: %w", err)
	}
	defer rows.Close()
	var list []*entity.LineaPedido
	for rows.Next() {
		var l entity.LineaPedido
		if err := rows.Scan(&l.ID, &l.PedidoID, &l.ProductoID, &l.Cantidad, &l.PrecioUnitario, &l.ProductoNombre); err != nil {
			return nil, fmt.Errorf("scan linea pedido: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListByCliente lista los pedidos de un cliente, el más reciente primero.
func (r *PedidoRepo) ListByCliente(clienteID string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + pedidoFrom + ` WHERE p.cliente_id = $1 ORDER BY p.fecha_hora_pedido DESC`
	return r.listQuery(query, clienteID)
}

// List lista todos los pedidos (administración), el más reciente primero.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + pedidoFrom + ` ORDER BY p.fecha_hora_pedido DESC`
	return r.listQuery(query)
}

func (r *PedidoRepo) listQuery(query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado del pedido.
func (r *PedidoRepo) UpdateEstado(id, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pedidos_cliente SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePagado marca o desmarca el pedido como pagado.
func (r *PedidoRepo) UpdatePagado(id string, pagado bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pedidos_cliente SET pagado = $2 WHERE id = $1`, id, pagado)
	if err != nil {
		return fmt.Errorf("update pagado pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por ID (las líneas caen por FK ON DELETE CASCADE).
func (r *PedidoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pedidos_cliente WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}
