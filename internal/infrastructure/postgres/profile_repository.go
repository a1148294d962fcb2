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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

const profileColumns = `id, email, nombre, apellidos, telefono, direccion, codigo_postal, dni, rol, created_at, updated_at`

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var p entity.Profile
	var telefono, direccion, codigoPostal, dni *string
	err := row.Scan(
		&p.ID, &p.Email, &p.Nombre, &p.Apellidos, &telefono, &direccion,
		&codigoPostal, &dni, &p.Rol, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Telefono = emptyIfNull(telefono)
	p.Direccion = emptyIfNull(direccion)
	p.CodigoPostal = emptyIfNull(codigoPostal)
	p.DNI = emptyIfNull(dni)
	return &p, nil
}

// Create persiste un nuevo perfil. Retorna domain.ErrDuplicate si ya existe uno
// con ese ID (carrera de creación perezosa en el primer inicio de sesión).
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, nombre, apellidos, telefono, direccion, codigo_postal, dni, rol, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Email, profile.Nombre, profile.Apellidos,
		nullIfEmpty(profile.Telefono), nullIfEmpty(profile.Direccion),
		nullIfEmpty(profile.CodigoPostal), nullIfEmpty(profile.DNI),
		profile.Rol, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID. Retorna domain.ErrNotFound si no existe
// (la rama "perfil ausente" de la resolución de sesión).
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Update actualiza los datos editables por el propio usuario. Rol y Email no se tocan aquí.
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `
		UPDATE profiles SET nombre = $2, apellidos = $3, telefono = $4, direccion = $5, codigo_postal = $6, dni = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Nombre, profile.Apellidos,
		nullIfEmpty(profile.Telefono), nullIfEmpty(profile.Direccion),
		nullIfEmpty(profile.CodigoPostal), nullIfEmpty(profile.DNI),
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateRol cambia el rol (solo administración).
func (r *ProfileRepo) UpdateRol(id, rol string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE profiles SET rol = $2, updated_at = now() WHERE id = $1`,
		id, rol,
	)
	if err != nil {
		return fmt.Errorf("update profile rol: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los perfiles (pantalla de usuarios de administración).
func (r *ProfileRepo) List() ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un perfil por ID.
func (r *ProfileRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
