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

var _ repository.ReservaRepository = (*ReservaRepo)(nil)

// ReservaRepo implementación del puerto ReservaRepository sobre PostgreSQL.
type ReservaRepo struct {
	q Querier
}

// NewReservaRepository construye el adaptador de persistencia para reservas.
func NewReservaRepository(q Querier) *ReservaRepo {
	return &ReservaRepo{q: q}
}

const reservaColumns = `r.id, r.cliente_id, r.producto_id, r.codigo, r.fecha_hora_reserva, r.cantidad, r.estado, r.created_at,
	COALESCE(p.nombre, ''), COALESCE(p.apellidos, ''), COALESCE(pr.nombre, '')`

const reservaFrom = ` FROM reservas r
	LEFT JOIN profiles p ON p.id = r.cliente_id
	LEFT JOIN productos pr ON pr.id = r.producto_id`

func scanReserva(row pgx.Row) (*entity.Reserva, error) {
	var rv entity.Reserva
	err := row.Scan(
		&rv.ID, &rv.ClienteID, &rv.ProductoID, &rv.Codigo, &rv.FechaHoraReserva,
		&rv.Cantidad, &rv.Estado, &rv.CreatedAt,
		&rv.ClienteNombre, &rv.ClienteApellidos, &rv.ProductoNombre,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create persiste una nueva reserva.
func (r *ReservaRepo) Create(reserva *entity.Reserva) error {
	query := `
		INSERT INTO reservas (id, cliente_id, producto_id, codigo, fecha_hora_reserva, cantidad, estado, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		reserva.ID, reserva.ClienteID, reserva.ProductoID, reserva.Codigo,
		reserva.FechaHoraReserva, reserva.Cantidad, reserva.Estado, reserva.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reserva: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ReservaRepo) GetByID(id string) (*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + reservaFrom + ` WHERE r.id = $1`
	rv, err := scanReserva(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get reserva: %w", err)
	}
	return rv, nil
}

// ListByCliente lista las reservas de un cliente, la más reciente primero.
func (r *ReservaRepo) ListByCliente(clienteID string) ([]*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + reservaFrom + ` WHERE r.cliente_id = $1 ORDER BY r.fecha_hora_reserva DESC`
	return r.listQuery(query, clienteID)
}

// List lista todas las reservas (administración).
func (r *ReservaRepo) List() ([]*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + reservaFrom + ` ORDER BY r.fecha_hora_reserva DESC`
	return r.listQuery(query)
}

func (r *ReservaRepo) listQuery(query string, args ...any) ([]*entity.Reserva, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reserva
	for rows.Next() {
		rv, err := scanReserva(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reserva: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de la reserva.
func (r *ReservaRepo) UpdateEstado(id, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE reservas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado reserva: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una reserva por ID.
func (r *ReservaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reservas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reserva: %w", err)
	}
	return nil
}
