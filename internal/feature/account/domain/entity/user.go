// Package entity defines the domain entities for the account feature.
package entity

import "time"

// User represents a registered customer.
// Users are created at registration and never deleted.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"column:id_usuario;primaryKey"`

	// FullName is the display name captured at registration.
	FullName string `gorm:"column:nombre_completo;size:150;not null"`

	// Email is used to log in and must be unique across all users.
	Email string `gorm:"column:email;uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt digest. Plaintext passwords are never stored.
	PasswordHash string `gorm:"column:contrasena_hash;size:255;not null"`

	// Address, Phone and PhotoPath are optional and stored as NULL when unset.
	Address   *string `gorm:"column:direccion;size:255"`
	Phone     *string `gorm:"column:telefono;size:30"`
	PhotoPath *string `gorm:"column:foto_perfil_url;size:500"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `gorm:"column:fecha_registro"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "usuarios"
}
