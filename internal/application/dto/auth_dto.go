package dto

import "time"

// RegisterRequest datos de registro. El rol NO se acepta del cliente:
// todo registro entra como CLIENTE.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	DNI       string `json:"dni"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el perfil resuelto.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse proyección pública del perfil.
type ProfileResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nombre       string    `json:"nombre"`
	Apellidos    string    `json:"apellidos"`
	Telefono     string    `json:"telefono,omitempty"`
	Direccion    string    `json:"direccion,omitempty"`
	CodigoPostal string    `json:"codigo_postal,omitempty"`
	DNI          string    `json:"dni,omitempty"`
	Rol          string    `json:"rol"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateProfileRequest campos editables por el propio usuario.
// Punteros para distinguir "no enviado" de "vaciar".
type UpdateProfileRequest struct {
	Nombre       *string `json:"nombre"`
	Apellidos    *string `json:"apellidos"`
	Telefono     *string `json:"telefono"`
	Direccion    *string `json:"direccion"`
	CodigoPostal *string `json:"codigo_postal"`
	DNI          *string `json:"dni"`
}

// UpdateRolRequest cambio de rol desde administración.
type UpdateRolRequest struct {
	Rol string `json:"rol"`
}
