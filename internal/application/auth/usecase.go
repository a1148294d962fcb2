package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y resolución de perfil.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Register crea la credencial y su perfil con rol CLIENTE. Cualquier rol que
// el cliente intente colar en el registro se ignora: la promoción a ADMIN o
// ENCARGADO solo ocurre vía administración o cmd/seedadmin.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	if _, err := uc.userRepo.GetByEmail(in.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	profile := &entity.Profile{
		ID:        user.ID,
		Email:     in.Email,
		Nombre:    in.Nombre,
		Apellidos: in.Apellidos,
		Telefono:  in.Telefono,
		DNI:       in.DNI,
		Rol:       entity.RolCliente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.profileRepo.Create(profile); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// Login verifica email/password, resuelve (o crea) el perfil y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	profile, err := uc.EnsureProfile(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *ToProfileResponse(profile),
	}, nil
}

// EnsureProfile resuelve el perfil de una identidad y lo crea si no existe
// (primer inicio de sesión), con rol CLIENTE y nombre vacío. Ante una carrera
// de creación simultánea la política es "insertar; si hay conflicto de clave
// única, releer": siempre queda exactamente un perfil por identidad.
func (uc *AuthUseCase) EnsureProfile(userID, email string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	now := time.Now()
	profile = &entity.Profile{
		ID:        userID,
		Email:     email,
		Rol:       entity.RolCliente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	createErr := uc.profileRepo.Create(profile)
	if createErr == nil {
		return profile, nil
	}
	if errors.Is(createErr, domain.ErrDuplicate) {
		// Otro login simultáneo ganó la carrera: el perfil ya existe, releer.
		return uc.profileRepo.GetByID(userID)
	}
	return nil, createErr
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// UpdateProfile actualiza los campos editables por el propio usuario.
// Rol y Email quedan fuera: no son auto-editables.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		profile.Nombre = *in.Nombre
	}
	if in.Apellidos != nil {
		profile.Apellidos = *in.Apellidos
	}
	if in.Telefono != nil {
		profile.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		profile.Direccion = *in.Direccion
	}
	if in.CodigoPostal != nil {
		profile.CodigoPostal = *in.CodigoPostal
	}
	if in.DNI != nil {
		profile.DNI = *in.DNI
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// ToProfileResponse mapea la entidad a su proyección pública.
func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:           p.ID,
		Email:        p.Email,
		Nombre:       p.Nombre,
		Apellidos:    p.Apellidos,
		Telefono:     p.Telefono,
		Direccion:    p.Direccion,
		CodigoPostal: p.CodigoPostal,
		DNI:          p.DNI,
		Rol:          p.Rol,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
