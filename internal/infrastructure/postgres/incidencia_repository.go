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

var _ repository.IncidenciaRepository = (*IncidenciaRepo)(nil)

// IncidenciaRepo implementación del puerto IncidenciaRepository sobre PostgreSQL.
type IncidenciaRepo struct {
	q Querier
}

// NewIncidenciaRepository construye el adaptador de persistencia para incidencias.
func NewIncidenciaRepository(q Querier) *IncidenciaRepo {
	return &IncidenciaRepo{q: q}
}

const incidenciaColumns = `i.id, i.cliente_id, i.pedido_cliente_id, i.descripcion, i.tipo_incidencia, i.estado, i.created_at,
	COALESCE(p.nombre, ''), COALESCE(p.apellidos, ''), COALESCE(p.email, '')`

const incidenciaFrom = ` FROM incidencias i LEFT JOIN profiles p ON p.id = i.cliente_id`

func scanIncidencia(row pgx.Row) (*entity.Incidencia, error) {
	var in entity.Incidencia
	err := row.Scan(
		&in.ID, &in.ClienteID, &in.PedidoID, &in.Descripcion, &in.Tipo, &in.Estado, &in.CreatedAt,
		&in.ClienteNombre, &in.ClienteApellidos, &in.ClienteEmail,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// Create persiste una nueva incidencia.
func (r *IncidenciaRepo) Create(incidencia *entity.Incidencia) error {
	query := `
		INSERT INTO incidencias (id, cliente_id, pedido_cliente_id, descripcion, tipo_incidencia, estado, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		incidencia.ID, incidencia.ClienteID, incidencia.PedidoID,
		incidencia.Descripcion, incidencia.Tipo, incidencia.Estado, incidencia.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incidencia: %w", err)
	}
	return nil
}

// GetByID obtiene una incidencia por ID.
func (r *IncidenciaRepo) GetByID(id string) (*entity.Incidencia, error) {
	query := `SELECT ` + incidenciaColumns + incidenciaFrom + ` WHERE i.id = $1`
	in, err := scanIncidencia(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get incidencia: %w", err)
	}
	return in, nil
}

// ListByCliente lista las incidencias de un cliente, la más reciente primero.
func (r *IncidenciaRepo) ListByCliente(clienteID string) ([]*entity.Incidencia, error) {
	query := `SELECT ` + incidenciaColumns + incidenciaFrom + ` WHERE i.cliente_id = $1 ORDER BY i.created_at DESC`
	return r.listQuery(query, clienteID)
}

// List lista todas las incidencias (administración).
func (r *IncidenciaRepo) List() ([]*entity.Incidencia, error) {
	query := `SELECT ` + incidenciaColumns + incidenciaFrom + ` ORDER BY i.created_at DESC`
	return r.listQuery(query)
}

func (r *IncidenciaRepo) listQuery(query string, args ...any) ([]*entity.Incidencia, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list incidencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Incidencia
	for rows.Next() {
		in, err := scanIncidencia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan incidencia: %w", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de la incidencia.
func (r *IncidenciaRepo) UpdateEstado(id, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE incidencias SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado incidencia: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una incidencia por ID.
func (r *IncidenciaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM incidencias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete incidencia: %w", err)
	}
	return nil
}
