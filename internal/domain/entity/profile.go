package entity

import "time"

// Roles válidos para Profile. El rol es el único discriminante de autorización.
const (
	RolCliente   = "CLIENTE"
	RolAdmin     = "ADMIN"
	RolEncargado = "ENCARGADO"
)

// ValidRol indica si s es un rol conocido.
func ValidRol(s string) bool {
	switch s {
	case RolCliente, RolAdmin, RolEncargado:
		return true
	}
	return false
}

// Profile representa los datos de perfil de una identidad autenticada.
// Invariante: exactamente un perfil por identidad (ID == User.ID).
// Se crea de forma perezosa en el primer inicio de sesión con rol CLIENTE.
type Profile struct {
	ID           string
	Email        string
	Nombre       string
	Apellidos    string
	Telefono     string
	Direccion    string
	CodigoPostal string
	DNI          string
	Rol          string // CLIENTE, ADMIN, ENCARGADO
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin y IsEncargado son proyecciones puras del rol, sin estado propio.
func (p *Profile) IsAdmin() bool     { return p != nil && p.Rol == RolAdmin }
func (p *Profile) IsEncargado() bool { return p != nil && p.Rol == RolEncargado }
