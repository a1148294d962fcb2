package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type fakeProfiles struct {
	profiles map[string]*entity.Profile
}

func (f *fakeProfiles) Create(p *entity.Profile) error { f.profiles[p.ID] = p; return nil }
func (f *fakeProfiles) GetByID(id string) (*entity.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (f *fakeProfiles) Update(p *entity.Profile) error { f.profiles[p.ID] = p; return nil }
func (f *fakeProfiles) UpdateRol(id, rol string) error {
	p, ok := f.profiles[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Rol = rol
	return nil
}
func (f *fakeProfiles) List() ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProfiles) Delete(id string) error { delete(f.profiles, id); return nil }

func buildUserUC() (*usecase.UserUseCase, *fakeProfiles) {
	repo := &fakeProfiles{profiles: map[string]*entity.Profile{
		"admin-1": {ID: "admin-1", Email: "admin@tienda.es", Nombre: "Admin", Rol: entity.RolAdmin},
		"user-1":  {ID: "user-1", Email: "ana@example.com", Nombre: "Ana", Apellidos: "García", DNI: "12345678Z", Rol: entity.RolCliente},
		"user-2":  {ID: "user-2", Email: "luis@example.com", Nombre: "Luis", Telefono: "600111222", Rol: entity.RolEncargado},
	}}
	return usecase.NewUserUseCase(repo), repo
}

func TestUserList_ExcluyeAlActor(t *testing.T) {
	uc, _ := buildUserUC()

	out, err := uc.List("admin-1", "")
	require.NoError(t, err)

	require.Len(t, out, 2, "el administrador que consulta no debe aparecer en su propio listado")
	for _, p := range out {
		assert.NotEqual(t, "admin-1", p.ID)
	}
}

func TestUserList_FiltraPorNombreEmailDniTelefono(t *testing.T) {
	uc, _ := buildUserUC()

	byNombre, err := uc.List("admin-1", "ana garcía")
	require.NoError(t, err)
	require.Len(t, byNombre, 1)
	assert.Equal(t, "user-1", byNombre[0].ID)

	byDNI, err := uc.List("admin-1", "12345678z")
	require.NoError(t, err)
	require.Len(t, byDNI, 1)
	assert.Equal(t, "user-1", byDNI[0].ID)

	byTelefono, err := uc.List("admin-1", "600111")
	require.NoError(t, err)
	require.Len(t, byTelefono, 1)
	assert.Equal(t, "user-2", byTelefono[0].ID)

	nada, err := uc.List("admin-1", "zzz-no-existe")
	require.NoError(t, err)
	assert.Empty(t, nada)
}

func TestUpdateRol_CambiaRolDeOtroUsuario(t *testing.T) {
	uc, repo := buildUserUC()

	err := uc.UpdateRol("admin-1", "user-1", entity.RolEncargado)
	require.NoError(t, err)
	assert.Equal(t, entity.RolEncargado, repo.profiles["user-1"].Rol)
}

func TestUpdateRol_SobreSiMismo_Prohibido(t *testing.T) {
	uc, repo := buildUserUC()

	err := uc.UpdateRol("admin-1", "admin-1", entity.RolCliente)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un administrador no puede cambiarse el rol a sí mismo")
	assert.Equal(t, entity.RolAdmin, repo.profiles["admin-1"].Rol)
}

func TestUpdateRol_RolDesconocido_Rechazado(t *testing.T) {
	uc, _ := buildUserUC()

	err := uc.UpdateRol("admin-1", "user-1", "SUPERADMIN")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserDelete_SobreSiMismo_Prohibido(t *testing.T) {
	uc, repo := buildUserUC()

	err := uc.Delete("admin-1", "admin-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.profiles, "admin-1")

	require.NoError(t, uc.Delete("admin-1", "user-1"))
	assert.NotContains(t, repo.profiles, "user-1")
}
