package entity

import "time"

// User representa la credencial de autenticación (separada del perfil para que
// la creación perezosa del perfil sea una operación real y no un efecto del registro).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
