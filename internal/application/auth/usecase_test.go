package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.Email] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
	// failCreateWithDuplicate simula perder la carrera de creación: el insert
	// choca con la clave única aunque el select previo no vio el perfil.
	failCreateWithDuplicate bool
	// raceProfile es el perfil "del otro login" que aparece tras el conflicto.
	raceProfile *entity.Profile
	creates     int
}

func (f *fakeProfileRepo) Create(p *entity.Profile) error {
	f.creates++
	if f.failCreateWithDuplicate {
		if f.raceProfile != nil {
			f.profiles[f.raceProfile.ID] = f.raceProfile
		}
		return domain.ErrDuplicate
	}
	if _, exists := f.profiles[p.ID]; exists {
		return domain.ErrDuplicate
	}
	f.profiles[p.ID] = p
	return nil
}
func (f *fakeProfileRepo) GetByID(id string) (*entity.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (f *fakeProfileRepo) Update(p *entity.Profile) error { f.profiles[p.ID] = p; return nil }
func (f *fakeProfileRepo) UpdateRol(id, rol string) error {
	p, ok := f.profiles[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Rol = rol
	return nil
}
func (f *fakeProfileRepo) List() ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProfileRepo) Delete(id string) error { delete(f.profiles, id); return nil }

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeProfileRepo) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	profileRepo := &fakeProfileRepo{profiles: map[string]*entity.Profile{}}
	uc := auth.NewAuthUseCase(userRepo, profileRepo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	})
	return uc, userRepo, profileRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register / Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaPerfilCliente(t *testing.T) {
	uc, userRepo, profileRepo := buildAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Email:     "ana@example.com",
		Password:  "password123",
		Nombre:    "Ana",
		Apellidos: "García",
	})
	require.NoError(t, err)

	// Todo registro entra como CLIENTE, sin excepción.
	assert.Equal(t, entity.RolCliente, out.Rol)
	assert.Equal(t, "Ana", out.Nombre)

	user, err := userRepo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash, "el password nunca se guarda en claro")

	profile, err := profileRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RolCliente, profile.Rol)
}

func TestRegister_EmailDuplicado_RetornaError(t *testing.T) {
	uc, _, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "otropassword"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas_DevuelveTokenYPerfil(t *testing.T) {
	uc, _, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "password123", Nombre: "Ana"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RolCliente, out.Profile.Rol)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc, _, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_RetornaUserNotFound(t *testing.T) {
	uc, _, _ := buildAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EnsureProfile — primer login y carrera de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureProfile_CreaPerfilEnPrimerLogin(t *testing.T) {
	uc, userRepo, profileRepo := buildAuthUC()

	// Credencial sin perfil (cuenta creada por otra vía).
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.users["ana@example.com"] = &entity.User{ID: "user-1", Email: "ana@example.com", PasswordHash: string(hash)}

	profile, err := uc.EnsureProfile("user-1", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RolCliente, profile.Rol, "un perfil autoprovisionado nace CLIENTE")
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Empty(t, profile.Nombre, "el nombre queda vacío hasta que el usuario lo edite")

	// Idempotente: una segunda llamada no crea otro perfil.
	again, err := uc.EnsureProfile("user-1", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.Len(t, profileRepo.profiles, 1)
}

func TestEnsureProfile_CarreraDeCreacion_ReleeElExistente(t *testing.T) {
	uc, _, profileRepo := buildAuthUC()

	// El insert choca con la clave única porque otro login ganó la carrera.
	profileRepo.failCreateWithDuplicate = true
	profileRepo.raceProfile = &entity.Profile{ID: "user-1", Email: "ana@example.com", Rol: entity.RolCliente}

	profile, err := uc.EnsureProfile("user-1", "ana@example.com")
	require.NoError(t, err, "el conflicto de clave única no debe aflorar al llamador")
	assert.Equal(t, "user-1", profile.ID)
	assert.Len(t, profileRepo.profiles, 1, "debe quedar exactamente un perfil por identidad")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateProfile
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_SoloCambiaCamposEnviados(t *testing.T) {
	uc, _, profileRepo := buildAuthUC()
	profileRepo.profiles["user-1"] = &entity.Profile{
		ID: "user-1", Email: "ana@example.com", Nombre: "Ana", Telefono: "600111222", Rol: entity.RolCliente,
	}

	nuevoTelefono := "600999888"
	out, err := uc.UpdateProfile("user-1", dto.UpdateProfileRequest{Telefono: &nuevoTelefono})
	require.NoError(t, err)

	assert.Equal(t, "600999888", out.Telefono)
	assert.Equal(t, "Ana", out.Nombre, "los campos no enviados no deben cambiar")
	assert.Equal(t, entity.RolCliente, out.Rol, "el rol nunca se edita desde el perfil propio")
}
